// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBool returns "True" or "False".
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// FormatFloat returns the shortest representation of f that
// round-trips, in the reference form: integral values keep a ".0"
// suffix, exponent notation is used only for magnitudes outside
// of [1e-4, 1e16), and the special values are nan, inf and -inf.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	exp := decimalExponent(f)
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the exponent of the shortest
// scientific representation of the finite, non-zero f.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	ei := strings.LastIndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[ei+1:])
	return exp
}

// FracDigits returns the number of fractional digits in
// the [FormatFloat] representation of f, which is at least 1.
// Exponent representations report [MaxFracDigits], and NaN
// and infinite values report 0.
func FracDigits(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	s := FormatFloat(f)
	if strings.ContainsRune(s, 'e') {
		return MaxFracDigits
	}
	return len(s) - strings.IndexByte(s, '.') - 1
}

// MaxFracDigits is the maximum number of fractional digits
// shown in fixed point rendering of a float column.
const MaxFracDigits = 6

// FormatAny returns the natural string form of a native value,
// as used for the text of Object values: None for nil,
// True / False for bools, and [FormatFloat] for floats.
func FormatAny(v any) string {
	switch x := v.(type) {
	case nil:
		return NullText
	case Value:
		return x.String()
	case string:
		return x
	case bool:
		return FormatBool(x)
	case float64:
		return FormatFloat(x)
	case float32:
		return FormatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
