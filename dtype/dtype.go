// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtype defines the four data types that a column can hold,
// the promotion rules that determine a common type for a mixed
// collection of values, and the coercion of raw tokens and native
// Go values into typed [Value]s.
package dtype

import (
	"fmt"
	"strings"
)

// Dtype is the storage and display type of a column.
// Dtypes are totally ordered by generality:
// Bool < Int64 < Float64 < Object.
type Dtype int32

const (
	// Bool holds true / false values.
	Bool Dtype = iota

	// Int64 holds 64-bit signed integers.
	Int64

	// Float64 holds 64-bit floating point values, with NaN as missing.
	Float64

	// Object is the universal supertype, holding text,
	// including the text form of any other value.
	Object

	// DtypeN is the number of dtypes.
	DtypeN
)

var dtypeNames = [DtypeN]string{"bool", "int64", "float64", "object"}

// String returns the display name of the dtype, as shown
// in the dtype footer of a rendered column.
func (dt Dtype) String() string {
	if dt < 0 || dt >= DtypeN {
		return fmt.Sprintf("Dtype(%d)", int32(dt))
	}
	return dtypeNames[dt]
}

// Code returns the short code of the dtype, which is "O" for Object
// and the display name otherwise.
func (dt Dtype) Code() string {
	if dt == Object {
		return "O"
	}
	return dt.String()
}

// Repr returns the representation of the dtype as shown
// when listing the dtypes of a table, e.g., dtype('int64').
func (dt Dtype) Repr() string {
	return "dtype('" + dt.Code() + "')"
}

// IsNumeric returns true for the dtypes that support
// numeric reductions: Bool, Int64 and Float64.
func (dt Dtype) IsNumeric() bool {
	return dt >= Bool && dt <= Float64
}

// Parse returns the dtype for the given name, accepting display
// names, short codes and the "str" alias for Object.
func Parse(name string) (Dtype, error) {
	switch strings.TrimSpace(name) {
	case "bool":
		return Bool, nil
	case "int64", "int":
		return Int64, nil
	case "float64", "float":
		return Float64, nil
	case "object", "O", "str":
		return Object, nil
	}
	return Object, fmt.Errorf("dtype.Parse: %q: %w", name, ErrUnsupported)
}

// MarshalText implements [encoding.TextMarshaler].
func (dt Dtype) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dt *Dtype) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*dt = d
	return nil
}
