// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cogentcore.org/tabular/dtype"
)

// Floats returns the values as float64, with missing values as NaN.
func Floats(vals []dtype.Value) []float64 {
	fv := make([]float64, len(vals))
	for i, v := range vals {
		fv[i] = v.Float()
	}
	return fv
}

// extreme returns the value that compares as greatest (sign = 1)
// or least (sign = -1), skipping missing values.
// It returns NaN when there are no values to compare.
func extreme(vals []dtype.Value, sign int) dtype.Value {
	res := dtype.NaN()
	found := false
	for _, v := range vals {
		if v.IsMissing() {
			continue
		}
		if !found || dtype.Compare(v, res)*sign > 0 {
			res = v
			found = true
		}
	}
	return res
}

// MaxValue returns the maximum of the values, keeping their kind:
// Bool and Int64 values compare numerically, Float64 values skip NaN,
// and Object values compare by text. It returns NaN for no values.
func MaxValue(vals []dtype.Value) dtype.Value {
	return extreme(vals, 1)
}

// MinValue is the minimum counterpart of [MaxValue].
func MinValue(vals []dtype.Value) dtype.Value {
	return extreme(vals, -1)
}

// ComputeValues returns the given stat over the values.
// Min and Max keep the value kind (see [MaxValue]); the others
// are computed on the float form of the values.
func ComputeValues(st Stats, vals []dtype.Value) dtype.Value {
	switch st {
	case Min:
		return MinValue(vals)
	case Max:
		return MaxValue(vals)
	case Count:
		n := 0
		for _, v := range vals {
			if !v.IsMissing() {
				n++
			}
		}
		return dtype.NewInt(int64(n))
	}
	return dtype.NewFloat(Compute(st, Floats(vals)))
}
