// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"cogentcore.org/tabular/dtype"
)

// Options are the options for rendering a single column.
// Use [DefaultOptions] for the standard settings.
type Options struct {

	// Index shows the row labels to the left of the values.
	Index bool

	// Name adds the column name to the footer.
	Name bool

	// Length adds the number of rows to the footer.
	Length bool

	// Dtype adds the column dtype to the footer.
	Dtype bool

	// MaxRows is the maximum number of rows shown before the middle
	// rows are elided; 0 means no limit.
	MaxRows int

	// MinRows is the number of rows kept visible once elision is
	// triggered by MaxRows; 0 means the same as MaxRows.
	MinRows int

	// FloatFormat, if set, formats each non-missing Float64 value,
	// replacing the default fixed point / exponent formatting.
	FloatFormat func(f float64) string

	// NaRep is the text shown for missing numeric values;
	// empty means [DefaultNaRep].
	NaRep string
}

// DefaultNaRep is the default text for missing numeric values.
const DefaultNaRep = "NaN"

// DefaultOptions returns the default column render options:
// row labels shown, no footer, no elision.
func DefaultOptions() Options {
	return Options{Index: true, NaRep: DefaultNaRep}
}

func (o *Options) naRep() string {
	if o.NaRep == "" {
		return DefaultNaRep
	}
	return o.NaRep
}

// Option keys accepted by [FromMap].
const (
	KeyIndex       = "index"
	KeyName        = "name"
	KeyLength      = "length"
	KeyDtype       = "dtype"
	KeyMaxRows     = "max_rows"
	KeyMinRows     = "min_rows"
	KeyFloatFormat = "float_format"
	KeyNaRep       = "na_rep"
)

// Keys are all of the option keys accepted by [FromMap].
var Keys = []string{KeyIndex, KeyName, KeyLength, KeyDtype, KeyMaxRows, KeyMinRows, KeyFloatFormat, KeyNaRep}

// FromMap returns [DefaultOptions] updated from the given key / value map,
// as read from a config file or assembled by a command line.
// Any key other than those in [Keys] returns an error wrapping
// [dtype.ErrUnsupported], and no options are applied.
// The float_format value can be a func(float64) string or a
// fmt verb string such as "%+.3f".
func FromMap(m map[string]any) (Options, error) {
	opts := DefaultOptions()
	var unknown []string
	for k := range m {
		if !isKey(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return opts, fmt.Errorf("render.FromMap: option(s) %s: %w", strings.Join(unknown, ", "), dtype.ErrUnsupported)
	}
	for k, v := range m {
		var err error
		switch k {
		case KeyIndex:
			opts.Index, err = asBool(k, v)
		case KeyName:
			opts.Name, err = asBool(k, v)
		case KeyLength:
			opts.Length, err = asBool(k, v)
		case KeyDtype:
			opts.Dtype, err = asBool(k, v)
		case KeyMaxRows:
			opts.MaxRows, err = asInt(k, v)
		case KeyMinRows:
			opts.MinRows, err = asInt(k, v)
		case KeyNaRep:
			s, ok := v.(string)
			if !ok {
				err = badValue(k, v)
			}
			opts.NaRep = s
		case KeyFloatFormat:
			opts.FloatFormat, err = asFloatFormat(k, v)
		}
		if err != nil {
			return DefaultOptions(), err
		}
	}
	return opts, nil
}

func isKey(k string) bool {
	for _, key := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func badValue(k string, v any) error {
	return fmt.Errorf("render.FromMap: option %s: invalid value %v of type %T: %w", k, v, v, dtype.ErrParse)
}

func asBool(k string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, badValue(k, v)
	}
	return b, nil
}

func asInt(k string, v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x == math.Trunc(x) {
			return int(x), nil
		}
	}
	return 0, badValue(k, v)
}

func asFloatFormat(k string, v any) (func(float64) string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case func(float64) string:
		return x, nil
	case string:
		if !strings.Contains(x, "%") {
			return nil, badValue(k, v)
		}
		return func(f float64) string { return fmt.Sprintf(x, f) }, nil
	}
	return nil, badValue(k, v)
}
