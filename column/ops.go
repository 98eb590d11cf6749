// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"math"

	"cogentcore.org/tabular/dtype"
	"cogentcore.org/tabular/stats"
)

// Abs returns a new Column with the absolute value of each element,
// and the same dtype, name and labels. Bool values are unchanged.
// Object columns return an error wrapping [dtype.ErrPrecondition].
func (c *Column) Abs() (*Column, error) {
	vals := make([]dtype.Value, len(c.values))
	switch c.dt {
	case dtype.Bool:
		copy(vals, c.values)
	case dtype.Int64:
		for i, v := range c.values {
			x := v.Int()
			if x < 0 {
				x = -x
			}
			vals[i] = dtype.NewInt(x)
		}
	case dtype.Float64:
		for i, v := range c.values {
			vals[i] = dtype.NewFloat(math.Abs(v.Float()))
		}
	default:
		return nil, fmt.Errorf("column.Abs: dtype %v is not numeric: %w", c.dt, dtype.ErrPrecondition)
	}
	return c.derive(c.dt, vals), nil
}

// AsType returns a new Column with each value converted to the given
// dtype with [dtype.Convert], and the same name and labels.
// A value that cannot be converted is an error wrapping [dtype.ErrParse].
func (c *Column) AsType(dt dtype.Dtype) (*Column, error) {
	if dt == c.dt {
		return c, nil
	}
	vals := make([]dtype.Value, len(c.values))
	for i, v := range c.values {
		cv, err := dtype.Convert(v, dt)
		if err != nil {
			return nil, fmt.Errorf("column.AsType: row %s: %w", c.labels[i], err)
		}
		vals[i] = cv
	}
	return c.derive(dt, vals), nil
}

// Max returns the maximum value, of the column dtype, skipping missing
// values. It returns NaN for an empty column, which is not an error.
func (c *Column) Max() dtype.Value {
	return stats.MaxValue(c.values)
}

// Min returns the minimum value, as for [Column.Max].
func (c *Column) Min() dtype.Value {
	return stats.MinValue(c.values)
}

// Stat returns the given standard stat of the column, see
// [stats.ComputeValues]. Stats other than Count, Min and Max
// are NaN for Object columns.
func (c *Column) Stat(st stats.Stats) dtype.Value {
	if !c.dt.IsNumeric() {
		switch st {
		case stats.Count, stats.Min, stats.Max:
		default:
			return dtype.NaN()
		}
	}
	return stats.ComputeValues(st, c.values)
}

// Mean returns the mean of the non-missing values, which is NaN
// for an empty or Object column.
func (c *Column) Mean() float64 {
	return c.Stat(stats.Mean).Float()
}

// Std returns the sample standard deviation of the non-missing values,
// which is NaN for fewer than two values or an Object column.
func (c *Column) Std() float64 {
	return c.Stat(stats.Std).Float()
}

// Sum returns the sum of the non-missing values, which is 0 for an
// empty column and NaN for an Object column.
func (c *Column) Sum() float64 {
	return c.Stat(stats.Sum).Float()
}

// Count returns the number of non-missing values.
func (c *Column) Count() int {
	return int(c.Stat(stats.Count).Int())
}
