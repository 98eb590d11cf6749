// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/tabular/base/errors"
)

// Tokens with special meaning to the token functions.
const (
	TrueToken  = "True"
	FalseToken = "False"

	// NaNToken is the token that an empty delimited-text field is
	// rewritten to before guessing and coercion.
	NaNToken = "NaN"
)

// GuessToken returns the natural dtype of a raw text token.
// "True" and "False" are Bool. Otherwise the token is parsed as a float
// and then as an integer, keeping the last parse that succeeded, so an
// integer token gives Int64, a decimal token gives Float64, and anything
// else gives Object. Integer tokens outside the int64 range give Float64.
// Surrounding white space is ignored by the numeric parses.
// The "None" token is text here, even though [Coerce] reads it as NaN
// in a Float64 column.
func GuessToken(token string) Dtype {
	if token == TrueToken || token == FalseToken {
		return Bool
	}
	num := strings.TrimSpace(token)
	if _, err := strconv.ParseFloat(num, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
		return Object
	}
	if _, err := strconv.ParseInt(num, 10, 64); err != nil {
		return Float64
	}
	return Int64
}

// parsers convert a raw text token to a value of each dtype.
var parsers = [DtypeN]func(s string) (Value, error){
	Bool: func(s string) (Value, error) {
		// only the exact token is true: "False", "", "0" etc are all false.
		return NewBool(s == TrueToken), nil
	},
	Int64: func(s string) (Value, error) {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("dtype.Coerce: %q is not an int64: %w", s, ErrParse)
		}
		return NewInt(i), nil
	},
	Float64: func(s string) (Value, error) {
		if s == NullText {
			return NaN(), nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("dtype.Coerce: %q is not a float64: %w", s, ErrParse)
		}
		return NewFloat(f), nil
	},
	Object: func(s string) (Value, error) {
		return NewText(s), nil
	},
}

// Coerce converts a raw text token into a value of the given dtype.
// Object keeps the token unchanged. The numeric dtypes ignore white space
// around the token. Float64 parses the token, with
// "None" and "NaN" giving NaN. Int64 parses the token strictly, returning
// an error wrapping [ErrParse] for non-integer text. Bool gives true only
// for the exact token "True", and false for everything else.
func Coerce(token string, dt Dtype) (Value, error) {
	if dt < 0 || dt >= DtypeN {
		return Value{}, fmt.Errorf("dtype.Coerce: %v: %w", dt, ErrUnsupported)
	}
	return parsers[dt](token)
}

// converters convert a native Go value to a value of each dtype.
var converters = [DtypeN]func(v any) (Value, error){
	Bool: func(v any) (Value, error) {
		if v == nil {
			return NewBool(false), nil
		}
		if x, ok := v.(string); ok {
			return NewBool(x != ""), nil
		}
		nv, err := numeric(v)
		if err != nil {
			return Value{}, err
		}
		return NewBool(nv.Bool()), nil
	},
	Int64: func(v any) (Value, error) {
		if x, ok := v.(string); ok {
			return parsers[Int64](x)
		}
		nv, err := numeric(v)
		if err != nil {
			return Value{}, err
		}
		if nv.kind == Float64 && (math.IsNaN(nv.f) || math.IsInf(nv.f, 0)) {
			return Value{}, fmt.Errorf("dtype.Convert: cannot convert %v to int64: %w", nv.f, ErrParse)
		}
		return NewInt(nv.Int()), nil
	},
	Float64: func(v any) (Value, error) {
		if v == nil {
			return NaN(), nil
		}
		if x, ok := v.(string); ok {
			return parsers[Float64](x)
		}
		nv, err := numeric(v)
		if err != nil {
			return Value{}, err
		}
		return NewFloat(nv.Float()), nil
	},
	Object: func(v any) (Value, error) {
		if IsMissing(v) {
			return Null(), nil
		}
		return NewText(FormatAny(v)), nil
	},
}

// Convert converts a native Go value (bool, any integer or float kind,
// string, nil or [Value]) into a value of the given dtype. Object holds
// the natural string form of the value (see [FormatAny]), with nil as
// [Null]. Float64 maps nil to NaN. Int64 truncates floats and fails
// with [ErrParse] on NaN, infinities and non-integer text.
// Bool uses truthiness.
func Convert(v any, dt Dtype) (Value, error) {
	if dt < 0 || dt >= DtypeN {
		return Value{}, fmt.Errorf("dtype.Convert: %v: %w", dt, ErrUnsupported)
	}
	if x, ok := v.(Value); ok {
		if x.kind == dt {
			return x, nil
		}
		if x.IsNull() {
			v = nil
		} else {
			v = x.Any()
		}
	}
	return converters[dt](v)
}

// numeric returns the given bool, integer or float value as a Value.
func numeric(v any) (Value, error) {
	switch x := v.(type) {
	case bool:
		return NewBool(x), nil
	case int:
		return NewInt(int64(x)), nil
	case int8:
		return NewInt(int64(x)), nil
	case int16:
		return NewInt(int64(x)), nil
	case int32:
		return NewInt(int64(x)), nil
	case int64:
		return NewInt(x), nil
	case uint8:
		return NewInt(int64(x)), nil
	case uint16:
		return NewInt(int64(x)), nil
	case uint32:
		return NewInt(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return NewFloat(float64(x)), nil
		}
		return NewInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return NewFloat(float64(x)), nil
		}
		return NewInt(int64(x)), nil
	case float32:
		return NewFloat(float64(x)), nil
	case float64:
		return NewFloat(x), nil
	}
	return Value{}, fmt.Errorf("dtype.Convert: %T value %v is not numeric: %w", v, v, ErrParse)
}

// ConvertAll converts all of the values to the given dtype,
// stopping at the first error, which reports the failing index.
func ConvertAll(values []any, dt Dtype) ([]Value, error) {
	out := make([]Value, len(values))
	for i, v := range values {
		cv, err := Convert(v, dt)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = cv
	}
	return out, nil
}
