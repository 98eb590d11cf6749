// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import "math"

// Classify returns the dtype of a single native value.
// The tests are applied in a fixed order: bool first, then the integer
// kinds, then the float kinds, with Object for everything else.
// A nil value classifies as Float64, because an absent value is
// represented as NaN in numeric data. Unsigned values that do not
// fit in an int64 classify as Float64.
func Classify(v any) Dtype {
	if _, ok := v.(bool); ok {
		return Bool
	}
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return Int64
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Float64
		}
		return Int64
	case uint64:
		if x > math.MaxInt64 {
			return Float64
		}
		return Int64
	}
	switch x := v.(type) {
	case float32, float64, nil:
		return Float64
	case Value:
		return x.kind
	}
	return Object
}

// IsMissing returns true if v represents an absent value:
// nil, or a [Null] Value. A NaN float is a float, not an absent value.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if x, ok := v.(Value); ok {
		return x.IsNull()
	}
	return false
}

// LeastCommonSupertype returns the most general dtype needed to
// represent all of the given values. Missing values (see [IsMissing])
// are skipped, and the result is the maximum dtype of the rest, except
// that Bool mixed with any other dtype gives Object.
// When missing values were skipped, an Int64 result becomes Float64
// (to hold NaN) and a Bool result becomes Object (to hold None).
// If there are no non-missing values, the result is Object.
func LeastCommonSupertype(values []any) Dtype {
	seen := [DtypeN]bool{}
	missing := false
	n := 0
	for _, v := range values {
		if IsMissing(v) {
			missing = true
			continue
		}
		seen[Classify(v)] = true
		n++
	}
	if n == 0 {
		return Object
	}
	res := Bool
	for dt := Bool; dt < DtypeN; dt++ {
		if seen[dt] {
			res = dt
		}
	}
	if seen[Bool] && res != Bool {
		return Object
	}
	if missing {
		switch res {
		case Bool:
			return Object
		case Int64:
			return Float64
		}
	}
	return res
}

// Set is a set of dtypes.
type Set [DtypeN]bool

// Add adds the dtype to the set.
func (s *Set) Add(dt Dtype) { s[dt] = true }

// Len returns the number of dtypes in the set.
func (s *Set) Len() int {
	n := 0
	for _, b := range s {
		if b {
			n++
		}
	}
	return n
}

// PromoteGuessed returns the dtype for a column given the set of
// dtypes guessed for its tokens by [GuessToken]. This is stricter than
// [LeastCommonSupertype]: a single dtype is kept, exactly Int64 and
// Float64 give Float64, and any other mix gives Object.
// An empty set gives Object.
func PromoteGuessed(s Set) Dtype {
	switch s.Len() {
	case 1:
		for dt := Bool; dt < DtypeN; dt++ {
			if s[dt] {
				return dt
			}
		}
	case 2:
		if s[Int64] && s[Float64] {
			return Float64
		}
	}
	return Object
}
