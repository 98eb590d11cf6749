// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the standard reductions over the values of
// a column. All of the functions skip over NaN's as missing values,
// and return NaN for an empty (or all missing) input rather than an error.
package stats

import (
	"fmt"
	"math"

	"cogentcore.org/tabular/dtype"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Stats is a list of the standard reductions.
type Stats int32

const (
	// count of number of non-missing elements.
	Count Stats = iota

	// sum of elements.
	Sum

	// minimum value.
	Min

	// maximum value.
	Max

	// mean value = sum / count.
	Mean

	// sample standard deviation (n-1 denominator).
	Std

	StatsN
)

var statsNames = [StatsN]string{"count", "sum", "min", "max", "mean", "std"}

func (st Stats) String() string {
	if st < 0 || st >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(st))
	}
	return statsNames[st]
}

// ParseStats returns the Stats for the given lower case name.
func ParseStats(name string) (Stats, error) {
	for st := Count; st < StatsN; st++ {
		if statsNames[st] == name {
			return st, nil
		}
	}
	return Count, fmt.Errorf("stats.ParseStats: %q is not a known stat: %w", name, dtype.ErrUnsupported)
}

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// AsFloat64 returns the values converted to float64.
func AsFloat64[T Number](vals []T) []float64 {
	fv := make([]float64, len(vals))
	for i, v := range vals {
		fv[i] = float64(v)
	}
	return fv
}

// NumberValues returns the values as Int64 values for an integer type,
// or as Float64 values for a float type. An unsigned value above the
// int64 range makes all of the values Float64.
func NumberValues[T Number](vals []T) (dtype.Dtype, []dtype.Value) {
	half := 0.5
	isFloat := T(half) != 0
	if !isFloat {
		for _, v := range vals {
			if v > 0 && uint64(v) > math.MaxInt64 {
				isFloat = true
				break
			}
		}
	}
	out := make([]dtype.Value, len(vals))
	if isFloat {
		for i, f := range AsFloat64(vals) {
			out[i] = dtype.NewFloat(f)
		}
		return dtype.Float64, out
	}
	for i, v := range vals {
		out[i] = dtype.NewInt(int64(v))
	}
	return dtype.Int64, out
}

// valid returns the non-NaN values.
func valid(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CountFunc returns the number of non-NaN values.
func CountFunc(vals []float64) float64 {
	return float64(len(valid(vals)))
}

// SumFunc returns the sum of the values, which is 0 for no values.
func SumFunc(vals []float64) float64 {
	s := 0.0
	for _, v := range valid(vals) {
		s += v
	}
	return s
}

// MinFunc returns the minimum of the values.
func MinFunc(vals []float64) float64 {
	vv := valid(vals)
	if len(vv) == 0 {
		return math.NaN()
	}
	m := vv[0]
	for _, v := range vv[1:] {
		m = math.Min(m, v)
	}
	return m
}

// MaxFunc returns the maximum of the values.
func MaxFunc(vals []float64) float64 {
	vv := valid(vals)
	if len(vv) == 0 {
		return math.NaN()
	}
	m := vv[0]
	for _, v := range vv[1:] {
		m = math.Max(m, v)
	}
	return m
}

// MeanFunc returns the mean of the values.
func MeanFunc(vals []float64) float64 {
	vv := valid(vals)
	if len(vv) == 0 {
		return math.NaN()
	}
	return stat.Mean(vv, nil)
}

// StdFunc returns the sample standard deviation of the values,
// which is NaN for fewer than two values.
func StdFunc(vals []float64) float64 {
	vv := valid(vals)
	if len(vv) < 2 {
		return math.NaN()
	}
	return stat.StdDev(vv, nil)
}

// Funcs are the functions for each of the standard [Stats].
var Funcs = [StatsN]func(vals []float64) float64{
	Count: CountFunc,
	Sum:   SumFunc,
	Min:   MinFunc,
	Max:   MaxFunc,
	Mean:  MeanFunc,
	Std:   StdFunc,
}

// Compute returns the given stat over the values.
func Compute(st Stats, vals []float64) float64 {
	return Funcs[st](vals)
}
