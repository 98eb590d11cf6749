// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"cmp"
	"math"
	"strconv"
)

// Value is a single typed value, tagged with the [Dtype] of its kind.
// Float values use NaN to indicate a missing value, and Object values
// use the [Null] text for a value that was not present.
type Value struct {
	kind Dtype
	b    bool
	i    int64
	f    float64
	s    string
	null bool
}

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInt returns an Int64 value.
func NewInt(i int64) Value { return Value{kind: Int64, i: i} }

// NewFloat returns a Float64 value.
func NewFloat(f float64) Value { return Value{kind: Float64, f: f} }

// NewText returns an Object value holding the given text.
func NewText(s string) Value { return Value{kind: Object, s: s} }

// NaN returns a missing Float64 value.
func NaN() Value { return NewFloat(math.NaN()) }

// Null returns a missing Object value, which reads as "None".
func Null() Value { return Value{kind: Object, s: NullText, null: true} }

// NullText is the text of a missing Object value.
const NullText = "None"

// Kind returns the dtype of the value.
func (v Value) Kind() Dtype { return v.kind }

// IsMissing returns true for a NaN Float64 value or a [Null] Object value.
func (v Value) IsMissing() bool {
	switch v.kind {
	case Float64:
		return math.IsNaN(v.f)
	case Object:
		return v.null
	}
	return false
}

// IsNull returns true only for the [Null] Object value, which
// (unlike a NaN float) counts as absent for type inference.
func (v Value) IsNull() bool { return v.kind == Object && v.null }

// Bool returns the value as a bool, using non-zero / non-empty truthiness
// for the non-Bool kinds.
func (v Value) Bool() bool {
	switch v.kind {
	case Bool:
		return v.b
	case Int64:
		return v.i != 0
	case Float64:
		return v.f != 0
	}
	return !v.null && v.s != ""
}

// Int returns the value as an int64, truncating floats.
// Text that does not parse as an integer returns 0.
func (v Value) Int() int64 {
	switch v.kind {
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Int64:
		return v.i
	case Float64:
		return int64(v.f)
	}
	i, _ := strconv.ParseInt(v.s, 10, 64)
	return i
}

// Float returns the value as a float64. Text that
// does not parse as a float returns NaN.
func (v Value) Float() float64 {
	switch v.kind {
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Int64:
		return float64(v.i)
	case Float64:
		return v.f
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Text returns the text of an Object value, and the
// natural string form of any other value.
func (v Value) Text() string {
	if v.kind == Object {
		return v.s
	}
	return v.String()
}

// String returns the natural string form of the value:
// True / False, decimal integers, the shortest float
// representation (see [FormatFloat]), or the text itself.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return FormatBool(v.b)
	case Int64:
		return strconv.FormatInt(v.i, 10)
	case Float64:
		return FormatFloat(v.f)
	}
	return v.s
}

// Any returns the value as a native Go value: bool, int64,
// float64, string, or nil for a [Null] value.
func (v Value) Any() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int64:
		return v.i
	case Float64:
		return v.f
	}
	if v.null {
		return nil
	}
	return v.s
}

// Compare returns -1, 0 or +1 comparing a to b.
// Values of the same numeric kind compare numerically
// (false < true for Bool), Object values compare by text,
// and mixed kinds compare numerically when both are numeric
// and by their string form otherwise. NaN sorts before all numbers.
func Compare(a, b Value) int {
	switch {
	case a.kind == Object || b.kind == Object:
		return cmp.Compare(a.Text(), b.Text())
	case a.kind == Int64 && b.kind == Int64:
		return cmp.Compare(a.i, b.i)
	}
	return cmp.Compare(a.Float(), b.Float())
}

// Equal returns true if the two values have the same kind and
// the same content, with NaN equal to NaN.
func Equal(a, b Value) bool {
	if a.kind != b.kind || a.null != b.null {
		return false
	}
	switch a.kind {
	case Bool:
		return a.b == b.b
	case Int64:
		return a.i == b.i
	case Float64:
		return a.f == b.f || (math.IsNaN(a.f) && math.IsNaN(b.f))
	}
	return a.s == b.s
}
