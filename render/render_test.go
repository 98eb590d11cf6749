// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"cogentcore.org/tabular/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColumn struct {
	dt     dtype.Dtype
	vals   []dtype.Value
	labels []string
	name   string
	named  bool
}

func (tc *testColumn) Dtype() dtype.Dtype    { return tc.dt }
func (tc *testColumn) Values() []dtype.Value { return tc.vals }
func (tc *testColumn) Labels() []string      { return tc.labels }
func (tc *testColumn) Name() (string, bool)  { return tc.name, tc.named }
func (tc *testColumn) withName(nm string) *testColumn {
	tc.name, tc.named = nm, true
	return tc
}

func newTestColumn(vals ...any) *testColumn {
	dt := dtype.LeastCommonSupertype(vals)
	tc := &testColumn{dt: dt}
	for i, v := range vals {
		cv, err := dtype.Convert(v, dt)
		if err != nil {
			panic(err)
		}
		tc.vals = append(tc.vals, cv)
		tc.labels = append(tc.labels, strconv.Itoa(i))
	}
	return tc
}

func rangeColumn(n int) *testColumn {
	vals := make([]any, n)
	for i := range n {
		vals[i] = i
	}
	return newTestColumn(vals...)
}

func noIndex() Options {
	opts := DefaultOptions()
	opts.Index = false
	return opts
}

func TestIntColumn(t *testing.T) {
	c := newTestColumn(1, 23, -456)
	assert.Equal(t, "0      1\n1     23\n2   -456", RenderColumn(c, DefaultOptions()))
	assert.Equal(t, "   1\n  23\n-456", RenderColumn(c, noIndex()))
	assert.Equal(t, "0    0\n1    1\n2    2\n3    3\n4    4\ndtype: int64", Repr(rangeColumn(5)))
}

func TestFloatColumn(t *testing.T) {
	c := newTestColumn(1, 2.3, 4.56)
	assert.Equal(t, "0    1.00\n1    2.30\n2    4.56", RenderColumn(c, DefaultOptions()))
	assert.Equal(t, "1.00\n2.30\n4.56", RenderColumn(c, noIndex()))

	c = newTestColumn(1, 2.3, -4.56)
	assert.Equal(t, " 1.00\n 2.30\n-4.56", RenderColumn(c, noIndex()))

	c = newTestColumn(1, 2.3, -4.567, 789.112)
	assert.Equal(t, "0      1.000\n1      2.300\n2     -4.567\n3    789.112\ndtype: float64", Repr(c))

	c = newTestColumn(1, 23, nil)
	assert.Equal(t, "0     1.0\n1    23.0\n2     NaN", RenderColumn(c, DefaultOptions()))
	opts := DefaultOptions()
	opts.NaRep = "-"
	assert.Equal(t, "0     1.0\n1    23.0\n2       -", RenderColumn(c, opts))
}

func TestScientific(t *testing.T) {
	c := newTestColumn(1, 2.3, -4.567, 789101112)
	assert.Equal(t, "0    1.000000e+00\n1    2.300000e+00\n2   -4.567000e+00\n3    7.891011e+08",
		RenderColumn(c, DefaultOptions()))

	c = newTestColumn(1, 2.3, -4.567, 789.112e100)
	assert.Equal(t, "0     1.000000e+00\n1     2.300000e+00\n2    -4.567000e+00\n3    7.891120e+102",
		RenderColumn(c, DefaultOptions()))
}

func TestIntNotScientific(t *testing.T) {
	c := newTestColumn(int64(123456789012), -5)
	assert.Equal(t, dtype.Int64, c.Dtype())
	assert.Equal(t, "0    123456789012\n1              -5", RenderColumn(c, DefaultOptions()))
	c = newTestColumn(int64(1234567890123), 5)
	assert.Equal(t, "1234567890123\n            5", RenderColumn(c, noIndex()))
}

func TestFloatFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.FloatFormat = func(f float64) string { return fmt.Sprintf("%+.3f", f) }
	c := newTestColumn(1, 2.3, -4.56)
	assert.Equal(t, "0   +1.000\n1   +2.300\n2   -4.560", RenderColumn(c, opts))

	// ints ignore the float format
	c = newTestColumn(1, 23, -456)
	assert.Equal(t, "0      1\n1     23\n2   -456", RenderColumn(c, opts))
}

func TestObjectAndBool(t *testing.T) {
	c := newTestColumn("A", "BC", true)
	assert.Equal(t, "0       A\n1      BC\n2    True", RenderColumn(c, DefaultOptions()))
	assert.Equal(t, "   A\n  BC\nTrue", RenderColumn(c, noIndex()))

	c = newTestColumn(false, true)
	assert.Equal(t, "0    False\n1     True", RenderColumn(c, DefaultOptions()))
	assert.Equal(t, "False\n True", RenderColumn(c, noIndex()))

	c = newTestColumn(1, "23", "-456")
	assert.Equal(t, "0       1\n1      23\n2    -456", RenderColumn(c, DefaultOptions()))

	c = newTestColumn("Hello, World!", nil).withName("θεαρτ")
	assert.Equal(t, "0    Hello, World!\n1             None\nName: θεαρτ, dtype: object", Repr(c))

	c = newTestColumn("abc").withName("")
	assert.Equal(t, "0    abc\nName: , dtype: object", Repr(c))
}

func TestTruncate(t *testing.T) {
	full := strings.Repeat("7", MaxTextWidth)
	assert.Equal(t, full, truncate(full))
	long := strings.Repeat("λ", 60)
	tr := truncate(long)
	assert.Equal(t, ElidedTextWidth+len(Ellipsis), utf8.RuneCountInString(tr))
	assert.True(t, strings.HasSuffix(tr, "λ..."))

	c := newTestColumn(1, 23, long)
	lines := strings.Split(RenderColumn(c, DefaultOptions()), "\n")
	assert.Equal(t, "2    "+tr, lines[2])
}

func TestFooter(t *testing.T) {
	c := newTestColumn(1, 23, true).withName("A?")
	opts := DefaultOptions()
	opts.Name = true
	assert.Equal(t, "0       1\n1      23\n2    True\nName: A?", RenderColumn(c, opts))
	opts.Dtype = true
	assert.Equal(t, "0       1\n1      23\n2    True\nName: A?, dtype: object", RenderColumn(c, opts))
	opts.Name = false
	assert.Equal(t, "0       1\n1      23\n2    True\ndtype: object", RenderColumn(c, opts))
	opts = noIndex()
	opts.Length, opts.Name, opts.Dtype = true, true, true
	assert.Equal(t, "   1\n  23\nTrue\nName: A?, Length: 3, dtype: object", RenderColumn(c, opts))
}

func TestLabels(t *testing.T) {
	c := newTestColumn(3, 2).withName("A?")
	c.labels = []string{"aaa", "bb"}
	assert.Equal(t, "aaa    3\nbb     2\nName: A?, dtype: int64", Repr(c))
}

func TestElision(t *testing.T) {
	c := rangeColumn(10)
	opts := DefaultOptions()
	opts.MaxRows = 4
	opts.Dtype = true
	out := RenderColumn(c, opts)
	assert.Equal(t, "0    0\n1    1\n    ..\n8    8\n9    9\ndtype: int64", out)

	opts.MaxRows = 9
	opts.MinRows = 3
	assert.Equal(t, "0    0\n    ..\n9    9\ndtype: int64", RenderColumn(c, opts))

	// not elided at the limit
	opts.MaxRows = 10
	assert.Len(t, strings.Split(RenderColumn(c, opts), "\n"), 11)

	opts = noIndex()
	opts.MaxRows = 4
	assert.Equal(t, "0\n1\n..\n8\n9", RenderColumn(c, opts))

	big := rangeColumn(61)
	lines := strings.Split(Repr(big), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "4      4", lines[4])
	assert.Equal(t, "      ..", lines[5])
	assert.Equal(t, "56    56", lines[6])
	assert.Equal(t, "Length: 61, dtype: int64", lines[11])
}

func TestElideRange(t *testing.T) {
	s, e := ElideRange(10, 4)
	assert.Equal(t, []int{2, 8}, []int{s, e})
	s, e = ElideRange(10, 5)
	assert.Equal(t, []int{2, 8}, []int{s, e})
	s, e = ElideRange(10, 1)
	assert.Equal(t, []int{0, 0}, []int{s, e})
	s, e = ElideRange(10, 30)
	assert.Equal(t, []int{10, 10}, []int{s, e})
}

func TestEqualWidths(t *testing.T) {
	cols := []*testColumn{
		newTestColumn(1, 2.3, -4.567, 789.112),
		newTestColumn(-1, 100000, 7),
		newTestColumn("x", "longer text", false),
		newTestColumn(1.5, nil, -1e20),
	}
	for _, c := range cols {
		for _, opts := range []Options{DefaultOptions(), noIndex()} {
			lines := strings.Split(RenderColumn(c, opts), "\n")
			for _, ln := range lines {
				assert.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(ln), "%q", ln)
			}
		}
	}
}

func TestEmpty(t *testing.T) {
	c := newTestColumn()
	assert.Equal(t, "Series([], dtype: object)", Repr(c))
	opts := DefaultOptions()
	opts.Dtype = true
	assert.Equal(t, "dtype: object", RenderColumn(c, opts))
	assert.Equal(t, "", RenderColumn(c, DefaultOptions()))
}

func TestTable(t *testing.T) {
	names := []string{"Name", "Age", "Sex"}
	cols := []Column{
		newTestColumn("Braund, Mr. Owen Harris", "Allen, Mr. William Henry", "Bonnell, Miss. Elizabeth"),
		newTestColumn(22, 35, 58),
		newTestColumn("male", "male", "female"),
	}
	sp := strings.Repeat
	want := " " + sp(" ", 22) + "Name" + "  Age" + "     Sex\n" +
		"0   Braund, Mr. Owen Harris   22    male\n" +
		"1  Allen, Mr. William Henry   35    male\n" +
		"2  Bonnell, Miss. Elizabeth   58  female"
	assert.Equal(t, want, RenderTable(names, cols))

	names = []string{"What is love", "oh"}
	cols = []Column{
		newTestColumn(1, 2, -3),
		newTestColumn("ohnteagahoenrt", "nothrea", "aeh"),
	}
	want = "   What is love" + sp(" ", 14) + "oh\n" +
		"0" + sp(" ", 13) + "1  ohnteagahoenrt\n" +
		"1" + sp(" ", 13) + "2" + sp(" ", 9) + "nothrea\n" +
		"2" + sp(" ", 12) + "-3" + sp(" ", 13) + "aeh"
	assert.Equal(t, want, RenderTable(names, cols))
}

func TestTableObjectHeader(t *testing.T) {
	names := []string{"very_long_name_A", "long_E"}
	cols := []Column{
		newTestColumn("Spark", "Pandas"),
		newTestColumn(1.5, -2.25),
	}
	out := RenderTable(names, cols)
	lines := strings.Split(out, "\n")
	// object header counts one less: 15 + 2, float header: 6 + 2
	assert.Equal(t, "  very_long_name_A  long_E", lines[0])
	assert.Equal(t, "0            Spark    1.50", lines[1])
	assert.Equal(t, "1           Pandas   -2.25", lines[2])
}

func TestEmptyTable(t *testing.T) {
	assert.Equal(t, "Empty DataFrame\nColumns: []\nIndex: []", RenderTable(nil, nil))
	assert.Equal(t, "Empty DataFrame\nColumns: [A, B]\nIndex: []",
		RenderTable([]string{"A", "B"}, []Column{newTestColumn(), newTestColumn()}))
}

func TestFromMap(t *testing.T) {
	opts, err := FromMap(map[string]any{"index": false, "max_rows": int64(4), "min_rows": 2.0, "na_rep": "-", "float_format": "%+.1f"})
	require.NoError(t, err)
	assert.False(t, opts.Index)
	assert.Equal(t, 4, opts.MaxRows)
	assert.Equal(t, 2, opts.MinRows)
	assert.Equal(t, "-", opts.NaRep)
	assert.Equal(t, "+1.5", opts.FloatFormat(1.5))

	_, err = FromMap(map[string]any{"index": true, "header": true})
	assert.ErrorIs(t, err, dtype.ErrUnsupported)
	assert.ErrorContains(t, err, "header")

	_, err = FromMap(map[string]any{"max_rows": "four"})
	assert.ErrorIs(t, err, dtype.ErrParse)
}
