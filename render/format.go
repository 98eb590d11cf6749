// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"strconv"
	"unicode/utf8"

	"cogentcore.org/tabular/base/elide"
	"cogentcore.org/tabular/dtype"
)

const (
	// MaxTextWidth is the longest Object text shown in full.
	MaxTextWidth = 50

	// ElidedTextWidth is the number of runes of a longer text
	// that are kept before the [Ellipsis].
	ElidedTextWidth = 46

	// Ellipsis marks a truncated text.
	Ellipsis = elide.Ellipsis

	// SciWidth is the formatted width of a fixed point float value
	// at which the whole column switches to exponent notation.
	SciWidth = 12

	// SciDigits is the number of mantissa digits in exponent notation.
	SciDigits = 6
)

// cell is a formatted value, with signed indicating that the text
// carries its own sign column (a leading '-'), so that no sign
// padding should be added.
type cell struct {
	text   string
	signed bool
}

// Strings returns the text of each value formatted according to the dtype,
// without any padding, as used in table cells.
func Strings(values []dtype.Value, dt dtype.Dtype, opts *Options) []string {
	cells := formatCells(values, dt, opts)
	strs := make([]string, len(cells))
	for i, c := range cells {
		strs[i] = c.text
	}
	return strs
}

// Padded returns the text of each value as shown in a single column:
// formatted as in [Strings], with a leading space in place of the sign
// for non-negative numbers and before every Bool and Object value,
// all right-aligned to a common width.
func Padded(values []dtype.Value, dt dtype.Dtype, opts *Options) []string {
	cells := formatCells(values, dt, opts)
	strs := make([]string, len(cells))
	for i, c := range cells {
		if c.signed {
			strs[i] = c.text
		} else {
			strs[i] = " " + c.text
		}
	}
	return alignRight(strs)
}

// formatCells formats the values according to the dtype:
//   - Object: the text, truncated to [ElidedTextWidth] runes plus [Ellipsis]
//     when longer than [MaxTextWidth] runes.
//   - Bool: True / False.
//   - Int64: decimal.
//   - Float64: see [formatFloats].
func formatCells(values []dtype.Value, dt dtype.Dtype, opts *Options) []cell {
	cells := make([]cell, len(values))
	switch dt {
	case dtype.Float64:
		return formatFloats(values, opts)
	case dtype.Int64:
		for i, v := range values {
			s := strconv.FormatInt(v.Int(), 10)
			cells[i] = cell{text: s, signed: v.Int() < 0}
		}
	case dtype.Bool:
		for i, v := range values {
			cells[i] = cell{text: dtype.FormatBool(v.Bool())}
		}
	default:
		for i, v := range values {
			cells[i] = cell{text: truncate(v.Text())}
		}
	}
	return cells
}

// truncate shortens text longer than MaxTextWidth runes.
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextWidth {
		return s
	}
	return elide.End(s, ElidedTextWidth+len(Ellipsis))
}

// formatFloats formats Float64 values in fixed point, with the number of
// decimals being the largest number of fractional digits of any value
// (see [dtype.FracDigits]), up to [dtype.MaxFracDigits]. If any of the
// resulting texts is [SciWidth] or more long, all values are formatted in
// exponent notation with [SciDigits] digits instead. Missing values show
// the NaRep text. A custom FloatFormat is used verbatim, with no sign padding.
func formatFloats(values []dtype.Value, opts *Options) []cell {
	cells := make([]cell, len(values))
	na := opts.naRep()
	if opts.FloatFormat != nil {
		for i, v := range values {
			if v.IsMissing() {
				cells[i] = cell{text: na, signed: true}
				continue
			}
			cells[i] = cell{text: opts.FloatFormat(v.Float()), signed: true}
		}
		return cells
	}
	digits := 0
	for _, v := range values {
		if !v.IsMissing() {
			digits = max(digits, dtype.FracDigits(v.Float()))
		}
	}
	digits = min(digits, dtype.MaxFracDigits)
	sci := false
	for i, v := range values {
		if v.IsMissing() {
			cells[i] = cell{text: na}
			continue
		}
		cells[i] = floatCell(v.Float(), 'f', digits)
		if len(cells[i].text) >= SciWidth {
			sci = true
		}
	}
	if !sci {
		return cells
	}
	for i, v := range values {
		if !v.IsMissing() {
			cells[i] = floatCell(v.Float(), 'e', SciDigits)
		}
	}
	return cells
}

func floatCell(f float64, verb byte, digits int) cell {
	switch {
	case math.IsInf(f, 1):
		return cell{text: "inf"}
	case math.IsInf(f, -1):
		return cell{text: "-inf", signed: true}
	}
	return cell{text: strconv.FormatFloat(f, verb, digits, 64), signed: math.Signbit(f)}
}

// width returns the display width of s, in runes.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// maxWidth returns the largest width of the strings.
func maxWidth(strs []string) int {
	w := 0
	for _, s := range strs {
		w = max(w, width(s))
	}
	return w
}

// padLeft right-aligns s in a field of w runes.
func padLeft(s string, w int) string {
	if n := w - width(s); n > 0 {
		return spaces(n) + s
	}
	return s
}

// padRight left-aligns s in a field of w runes.
func padRight(s string, w int) string {
	if n := w - width(s); n > 0 {
		return s + spaces(n)
	}
	return s
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// alignRight right-aligns all of the strings to the widest one.
func alignRight(strs []string) []string {
	w := maxWidth(strs)
	for i, s := range strs {
		strs[i] = padLeft(s, w)
	}
	return strs
}

// alignLeft left-aligns all of the strings to the widest one.
func alignLeft(strs []string) []string {
	w := maxWidth(strs)
	for i, s := range strs {
		strs[i] = padRight(s, w)
	}
	return strs
}
