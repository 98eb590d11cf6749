// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tabular/base/errors"
	"cogentcore.org/tabular/column"
	"cogentcore.org/tabular/dtype"
)

// Delims are the supported delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space
)

// Rune returns the delimiter character.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Space:
		return ' '
	}
	return ','
}

// DelimsForFile returns [Tab] for a .tsv or .tab file, and [Comma] otherwise.
func DelimsForFile(filename string) Delims {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsv", ".tab":
		return Tab
	}
	return Comma
}

// OpenCSV reads a table from a comma-separated-values (CSV) file,
// or a tab-separated one for a .tsv file name, see [ReadDelim].
// The file name is recorded in the table metadata.
func OpenCSV(filename string) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	dt, err := ReadDelim(bufio.NewReader(fp), DelimsForFile(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	dt.Meta.SetFilename(filename)
	return dt, nil
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	dt, err := ReadDelim(bufio.NewReader(fp), DelimsForFile(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	dt.Meta.SetFilename(filename)
	return dt, nil
}

// ReadCSV reads a table from comma-separated-values text,
// see [ReadDelim].
func ReadCSV(r io.Reader) (*Table, error) {
	return ReadDelim(r, Comma)
}

// ReadDelim reads a table from delimited text. The whole input is read,
// line endings are converted to "\n", and leading and trailing white
// space is removed. The first line has the column names, and every
// following line is a row, which must have the same number of fields.
// Fields are split on the delimiter with no quoting, and an empty field
// (including an empty column name) is read as NaN. The dtype of each column
// is the promotion (see [dtype.PromoteGuessed]) of the guessed dtypes
// of its fields (see [dtype.GuessToken]), and every field is then
// coerced to it with [dtype.Coerce].
func ReadDelim(r io.Reader, delim Delims) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(lineEnds.Replace(string(b)))
	if text == "" {
		return nil, fmt.Errorf("table.ReadCSV: no header line: %w", dtype.ErrParse)
	}
	sep := string(delim.Rune())
	lines := strings.Split(text, "\n")
	hdrs := strings.Split(lines[0], sep)
	for ci, hd := range hdrs {
		if hd == "" {
			hdrs[ci] = dtype.NaNToken
		}
	}
	nrow := len(lines) - 1
	fields := make([][]string, len(hdrs))
	for ci := range fields {
		fields[ci] = make([]string, nrow)
	}
	for ri, ln := range lines[1:] {
		rec := strings.Split(ln, sep)
		if len(rec) != len(hdrs) {
			return nil, fmt.Errorf("table.ReadCSV: line %d has %d fields, not %d: %w", ri+2, len(rec), len(hdrs), dtype.ErrParse)
		}
		for ci, f := range rec {
			if f == "" {
				f = dtype.NaNToken
			}
			fields[ci][ri] = f
		}
	}
	dt := &Table{rows: nrow}
	dt.columns = newColumns()
	for ci, hd := range hdrs {
		c, err := columnFromTokens(hd, fields[ci])
		if err != nil {
			return nil, fmt.Errorf("table.ReadCSV: column %q: %w", hd, err)
		}
		dt.columns.Append(hd, c)
	}
	return dt, nil
}

// lineEnds converts CRLF and CR line endings to LF.
var lineEnds = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// columnFromTokens returns a column of the given tokens,
// with the dtype promoted from their guessed dtypes.
func columnFromTokens(name string, tokens []string) (*column.Column, error) {
	var guessed dtype.Set
	for _, tok := range tokens {
		guessed.Add(dtype.GuessToken(tok))
	}
	dt := dtype.PromoteGuessed(guessed)
	vals := make([]dtype.Value, len(tokens))
	for i, tok := range tokens {
		v, err := dtype.Coerce(tok, dt)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		vals[i] = v
	}
	c, err := column.FromValues("", dt, vals)
	if err != nil {
		return nil, err
	}
	return c.WithName(name), nil
}

// SaveCSV writes the table to a delimited file, see [Table.WriteCSV].
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the table as delimited text: a header line, then one
// line per row. [ReadDelim] reads it back into an equal table, except
// for Object columns whose text all reads as numbers or booleans.
// NaN is written as an empty field, and floats use their shortest
// round-trip form. There is no quoting, so a name or text value that
// contains the delimiter or a line break is an error wrapping
// [dtype.ErrUnsupported].
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	sep := string(delim.Rune())
	check := func(s string) error {
		if strings.Contains(s, sep) || strings.ContainsAny(s, "\r\n") {
			return fmt.Errorf("table.WriteCSV: %q cannot be written without quoting: %w", s, dtype.ErrUnsupported)
		}
		return nil
	}
	for _, nm := range dt.columns.Keys {
		if err := check(nm); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, strings.Join(dt.columns.Keys, sep)+"\n"); err != nil {
		return err
	}
	rec := make([]string, dt.NumColumns())
	for ri := range dt.rows {
		for ci, c := range dt.columns.Values {
			s := csvToken(c.At(ri))
			if err := check(s); err != nil {
				return err
			}
			rec[ci] = s
		}
		if _, err := io.WriteString(w, strings.Join(rec, sep)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// csvToken returns the field text of the given value.
func csvToken(v dtype.Value) string {
	if v.Kind() == dtype.Float64 && math.IsNaN(v.Float()) {
		return ""
	}
	return v.String()
}
