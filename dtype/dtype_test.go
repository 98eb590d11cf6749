// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"math"
	"testing"

	"cogentcore.org/tabular/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDtypeNames(t *testing.T) {
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "int64", Int64.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "dtype('O')", Object.Repr())
	assert.Equal(t, "dtype('int64')", Int64.Repr())
	assert.True(t, Bool < Int64 && Int64 < Float64 && Float64 < Object)

	dt, err := Parse("str")
	require.NoError(t, err)
	assert.Equal(t, Object, dt)
	_, err = Parse("complex128")
	assert.True(t, errors.Is(err, ErrUnsupported))

	var u Dtype
	require.NoError(t, u.UnmarshalText([]byte("float64")))
	assert.Equal(t, Float64, u)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Bool, Classify(true))
	assert.Equal(t, Int64, Classify(3))
	assert.Equal(t, Int64, Classify(int32(-3)))
	assert.Equal(t, Int64, Classify(uint64(7)))
	assert.Equal(t, Float64, Classify(uint64(math.MaxUint64)))
	assert.Equal(t, Float64, Classify(2.5))
	assert.Equal(t, Float64, Classify(float32(2.5)))
	assert.Equal(t, Float64, Classify(nil))
	assert.Equal(t, Object, Classify("789.112"))
	assert.Equal(t, Object, Classify([]int{1}))
	assert.Equal(t, Int64, Classify(NewInt(1)))
}

func TestLeastCommonSupertype(t *testing.T) {
	tests := []struct {
		values []any
		want   Dtype
	}{
		{[]any{1, 2.3, -4.567, "789.112"}, Object},
		{[]any{1, 2.3, -4.567, 789.112}, Float64},
		{[]any{0, 1, 2, 3, 4}, Int64},
		{[]any{1, 23, true}, Object},
		{[]any{true, 5}, Object},
		{[]any{false, true}, Bool},
		{[]any{"A", "BC", true}, Object},
		{[]any{1, 23, nil}, Float64},
		{[]any{true, nil}, Object},
		{[]any{"Hello, World!", nil}, Object},
		{[]any{2.5, nil}, Float64},
		{[]any{nil, nil}, Object},
		{[]any{}, Object},
		{[]any{math.NaN()}, Float64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeastCommonSupertype(tt.values), "%v", tt.values)
	}
}

func TestIntBoolIsObject(t *testing.T) {
	for n := 1; n < 6; n++ {
		vals := []any{}
		for i := range n {
			vals = append(vals, i*7-3, i%2 == 0)
		}
		assert.Equal(t, Object, LeastCommonSupertype(vals))
	}
}

func TestPromoteGuessed(t *testing.T) {
	set := func(dts ...Dtype) Set {
		var s Set
		for _, dt := range dts {
			s.Add(dt)
		}
		return s
	}
	assert.Equal(t, Int64, PromoteGuessed(set(Int64)))
	assert.Equal(t, Int64, PromoteGuessed(set(Int64, Int64)))
	assert.Equal(t, Float64, PromoteGuessed(set(Int64, Float64)))
	assert.Equal(t, Bool, PromoteGuessed(set(Bool)))
	assert.Equal(t, Object, PromoteGuessed(set(Bool, Int64)))
	assert.Equal(t, Object, PromoteGuessed(set(Bool, Float64)))
	assert.Equal(t, Object, PromoteGuessed(set(Int64, Float64, Object)))
	assert.Equal(t, Object, PromoteGuessed(set()))
}

func TestGuessToken(t *testing.T) {
	assert.Equal(t, Bool, GuessToken("True"))
	assert.Equal(t, Bool, GuessToken("False"))
	assert.Equal(t, Object, GuessToken("true"))
	assert.Equal(t, Int64, GuessToken("42"))
	assert.Equal(t, Int64, GuessToken("-7"))
	assert.Equal(t, Float64, GuessToken("4.5"))
	assert.Equal(t, Float64, GuessToken("1e3"))
	assert.Equal(t, Float64, GuessToken("NaN"))
	assert.Equal(t, Float64, GuessToken("99999999999999999999"))
	assert.Equal(t, Object, GuessToken("50 Days"))
	assert.Equal(t, Object, GuessToken(""))
	assert.Equal(t, Object, GuessToken("None"))
	assert.Equal(t, Int64, GuessToken(" 2"))
	assert.Equal(t, Float64, GuessToken("2.5\r"))
	assert.Equal(t, Object, GuessToken(" "))
	assert.Equal(t, Object, GuessToken(" True"))
}

func TestCoerce(t *testing.T) {
	v, err := Coerce("abc", Object)
	require.NoError(t, err)
	assert.Equal(t, "abc", v.Text())

	v, err = Coerce("None", Float64)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.Float()))
	v, err = Coerce("NaN", Float64)
	require.NoError(t, err)
	assert.True(t, v.IsMissing())
	v, err = Coerce("2.5", Float64)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Float())

	v, err = Coerce("-12", Int64)
	require.NoError(t, err)
	assert.Equal(t, int64(-12), v.Int())
	_, err = Coerce("1.5", Int64)
	assert.True(t, errors.Is(err, ErrParse))
	v, err = Coerce(" 3\t", Int64)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())
	v, err = Coerce(" -0.5", Float64)
	require.NoError(t, err)
	assert.Equal(t, -0.5, v.Float())
	v, _ = Coerce(" abc ", Object)
	assert.Equal(t, " abc ", v.Text())

	v, _ = Coerce("True", Bool)
	assert.True(t, v.Bool())
	v, _ = Coerce("False", Bool)
	assert.False(t, v.Bool())
	v, _ = Coerce("yes", Bool)
	assert.False(t, v.Bool())

	_, err = Coerce("1", Dtype(9))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestConvert(t *testing.T) {
	v, err := Convert(true, Object)
	require.NoError(t, err)
	assert.Equal(t, "True", v.Text())
	v, _ = Convert(2.0, Object)
	assert.Equal(t, "2.0", v.Text())
	v, _ = Convert(nil, Object)
	assert.True(t, v.IsNull())
	assert.Equal(t, "None", v.Text())

	v, _ = Convert(nil, Float64)
	assert.True(t, math.IsNaN(v.Float()))
	v, _ = Convert(3, Float64)
	assert.Equal(t, 3.0, v.Float())
	v, _ = Convert(true, Int64)
	assert.Equal(t, int64(1), v.Int())
	v, _ = Convert(2.9, Int64)
	assert.Equal(t, int64(2), v.Int())
	_, err = Convert(math.NaN(), Int64)
	assert.True(t, errors.Is(err, ErrParse))
	_, err = Convert([]int{1}, Float64)
	assert.True(t, errors.Is(err, ErrParse))

	v, _ = Convert(0, Bool)
	assert.False(t, v.Bool())
	v, _ = Convert("x", Bool)
	assert.True(t, v.Bool())

	vals, err := ConvertAll([]any{1, "2", 3.5}, Float64)
	require.NoError(t, err)
	assert.Equal(t, 2.0, vals[1].Float())
	_, err = ConvertAll([]any{1, "two"}, Int64)
	assert.ErrorContains(t, err, "value 1")
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.0", FormatFloat(1))
	assert.Equal(t, "2.3", FormatFloat(2.3))
	assert.Equal(t, "-4.567", FormatFloat(-4.567))
	assert.Equal(t, "789101112.0", FormatFloat(789101112))
	assert.Equal(t, "1e+16", FormatFloat(1e16))
	assert.Equal(t, "7.89112e+102", FormatFloat(789.112e100))
	assert.Equal(t, "0.0001", FormatFloat(0.0001))
	assert.Equal(t, "1e-05", FormatFloat(0.00001))
	assert.Equal(t, "nan", FormatFloat(math.NaN()))
	assert.Equal(t, "-inf", FormatFloat(math.Inf(-1)))

	assert.Equal(t, 1, FracDigits(1))
	assert.Equal(t, 3, FracDigits(-4.567))
	assert.Equal(t, 6, FracDigits(789.112e100))
	assert.Equal(t, 0, FracDigits(math.NaN()))
}

func TestValueCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(NewInt(2), NewInt(10)))
	assert.Equal(t, 1, Compare(NewFloat(2.5), NewInt(2)))
	assert.Equal(t, 1, Compare(NewBool(true), NewBool(false)))
	assert.Equal(t, 1, Compare(NewText("b"), NewText("a")))
	assert.True(t, Equal(NaN(), NaN()))
	assert.False(t, Equal(NewInt(1), NewFloat(1)))
	assert.Equal(t, nil, Null().Any())
	assert.Equal(t, int64(5), NewInt(5).Any())
}
