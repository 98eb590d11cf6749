// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render produces the text representation of columns and
// tables: aligned, with numbers formatted from the data, and with long
// columns elided. The layout reproduces the pandas text output, and
// rendering never modifies the data.
package render

import (
	"strconv"
	"strings"

	"cogentcore.org/tabular/dtype"
)

// Column is the data needed to render a single column.
type Column interface {
	// Dtype returns the dtype of the values.
	Dtype() dtype.Dtype

	// Values returns the values, which must not be modified.
	Values() []dtype.Value

	// Labels returns the row labels, one per value.
	Labels() []string

	// Name returns the name, and false if the column has no name.
	Name() (string, bool)
}

// Dots is the text of the line replacing elided rows.
const Dots = ".."

// Gutter separates row labels from values.
const Gutter = "   "

// RenderColumn returns the text of the given column:
//  1. Each value is formatted and padded (see [Padded]).
//  2. With [Options.Index], each line is prefixed by its left-aligned
//     row label and the [Gutter]. Without it, one leading space is removed
//     from every line if they all have one.
//  3. If there are more than [Options.MaxRows] rows, the middle rows
//     are replaced by a [Dots] line (see [ElideRange]).
//  4. The requested footer segments are added on a final line.
func RenderColumn(c Column, opts Options) string {
	vals := c.Values()
	lines := Padded(vals, c.Dtype(), &opts)
	if opts.Index {
		labels := alignLeft(append([]string(nil), c.Labels()...))
		for i := range lines {
			lines[i] = labels[i] + Gutter + lines[i]
		}
	} else if allIndented(lines) {
		for i := range lines {
			lines[i] = lines[i][1:]
		}
	}
	n := len(lines)
	if opts.MaxRows > 0 && n > opts.MaxRows {
		minRows := opts.MinRows
		if minRows <= 0 {
			minRows = opts.MaxRows
		}
		start, end := ElideRange(n, minRows)
		dots := padLeft(Dots, maxWidth(lines))
		lines = append(lines[:start:start], append([]string{dots}, lines[end:]...)...)
	}
	if ft := footer(c, &opts); ft != "" {
		lines = append(lines, ft)
	}
	return strings.Join(lines, "\n")
}

// ElideRange returns the range [start, end) of n rows that is replaced
// by a single [Dots] line when eliding to minRows. Each end keeps
// minRows / 2 rows, so an odd minRows shows one row fewer than requested.
// The range follows slice semantics for a negative end of -(minRows/2),
// so that a minRows of 0 or 1 removes nothing and puts the [Dots] first.
func ElideRange(n, minRows int) (start, end int) {
	k := minRows / 2
	start = min(k, n)
	end = n - k
	if k == 0 {
		end = 0
	}
	end = max(end, start)
	return start, end
}

// allIndented returns true if every line starts with a space.
func allIndented(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, " ") {
			return false
		}
	}
	return true
}

// footer returns the Name, Length and dtype segments requested by opts.
func footer(c Column, opts *Options) string {
	var segs []string
	if opts.Name {
		if nm, ok := c.Name(); ok {
			segs = append(segs, "Name: "+nm)
		}
	}
	if opts.Length {
		segs = append(segs, "Length: "+strconv.Itoa(len(c.Values())))
	}
	if opts.Dtype {
		segs = append(segs, "dtype: "+c.Dtype().String())
	}
	return strings.Join(segs, ", ")
}

// Repr settings for [Repr].
const (
	ReprMaxRows = 60
	ReprMinRows = 10
)

// Repr returns the default text of a column: row labels, a footer with
// the name (if any) and dtype, and the middle rows elided when there are
// more than [ReprMaxRows], in which case the footer also has the length.
// An empty column is shown on one line, as Series([], dtype: ...).
func Repr(c Column) string {
	n := len(c.Values())
	opts := DefaultOptions()
	opts.Name = true
	opts.Dtype = true
	if n == 0 {
		return "Series([], " + footer(c, &opts) + ")"
	}
	opts.MaxRows = ReprMaxRows
	opts.MinRows = ReprMinRows
	opts.Length = n > ReprMaxRows
	return RenderColumn(c, opts)
}

// RenderTable returns the text of a table of the given named columns,
// which must all have the same length. Each column is formatted with
// [Strings] (without elision) and given a width of two more than the
// larger of its content and its header, where the header counts one
// less for an Object column. Headers and cells are right-aligned and
// concatenated. Rows are labeled by their index, right-aligned to the
// number of digits in the row count.
func RenderTable(names []string, cols []Column) string {
	if len(cols) == 0 {
		return "Empty DataFrame\nColumns: []\nIndex: []"
	}
	rows := len(cols[0].Values())
	if rows == 0 {
		return "Empty DataFrame\nColumns: [" + strings.Join(names, ", ") + "]\nIndex: []"
	}
	opts := DefaultOptions()
	content := make([][]string, len(cols))
	widths := make([]int, len(cols))
	for ci, c := range cols {
		content[ci] = Strings(c.Values(), c.Dtype(), &opts)
		hw := width(names[ci])
		if c.Dtype() == dtype.Object {
			hw--
		}
		widths[ci] = max(maxWidth(content[ci]), hw) + 2
	}
	iw := len(strconv.Itoa(rows))
	var b strings.Builder
	b.WriteString(spaces(iw))
	for ci, nm := range names {
		b.WriteString(padLeft(nm, widths[ci]))
	}
	for ri := range rows {
		b.WriteByte('\n')
		b.WriteString(padLeft(strconv.Itoa(ri), iw))
		for ci := range cols {
			b.WriteString(padLeft(content[ci][ri], widths[ci]))
		}
	}
	return b.String()
}
