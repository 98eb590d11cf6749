// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides [Table], an ordered list of named [column.Column]s
// of the same length, and the reading of tables from delimited text.
package table

import (
	"fmt"

	"cogentcore.org/tabular/base/keylist"
	"cogentcore.org/tabular/base/metadata"
	"cogentcore.org/tabular/column"
	"cogentcore.org/tabular/dtype"
	"cogentcore.org/tabular/render"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Table is an ordered list of named columns that all have the same
// number of rows. Column names do not need to be unique: lookup by
// name returns the first column with that name. A Table is never
// modified after construction.
type Table struct {
	// columns has the columns in order, keyed by name.
	columns *keylist.List[string, *column.Column]

	// rows is the common number of rows.
	rows int

	// Meta is misc metadata for the table, such as the
	// filename it was read from.
	Meta metadata.Data
}

// Pair is a column name with the values of the column,
// given to [New] in column order.
type Pair struct {
	Name   string
	Values []any
}

// Option configures the construction of a [Table].
// None of the options are supported: row labels, a forced
// dtype and copy semantics all fail with [dtype.ErrUnsupported].
type Option func(c *config) error

type config struct{}

// Index would set the row labels of the table.
func Index(labels ...string) Option {
	return func(c *config) error {
		return fmt.Errorf("table.Index: %w", dtype.ErrUnsupported)
	}
}

// Dtype would force the dtype of every column.
func Dtype(dt dtype.Dtype) Option {
	return func(c *config) error {
		return fmt.Errorf("table.Dtype: %v: %w", dt, dtype.ErrUnsupported)
	}
}

// Copy would set whether the input values are copied.
func Copy(on bool) Option {
	return func(c *config) error {
		return fmt.Errorf("table.Copy: %w", dtype.ErrUnsupported)
	}
}

// New returns a new Table with the given columns, in order.
// The dtype of each column is resolved from its values, see [column.New].
// All of the columns must have the same number of values.
func New(cols []Pair, opts ...Option) (*Table, error) {
	cfg := &config{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	dt := &Table{columns: newColumns()}
	for i, p := range cols {
		if i > 0 && len(p.Values) != dt.rows {
			return nil, fmt.Errorf("table.New: column %q has %d values, not %d: %w", p.Name, len(p.Values), dt.rows, dtype.ErrUnsupported)
		}
		c, err := column.New(p.Values, column.Name(p.Name))
		if err != nil {
			return nil, fmt.Errorf("table.New: column %q: %w", p.Name, err)
		}
		dt.rows = len(p.Values)
		dt.columns.Append(p.Name, c)
	}
	return dt, nil
}

// FromColumns returns a new Table of already built columns, which are
// named by their own names (or "" if unnamed) and must all have the
// same length.
func FromColumns(cols ...*column.Column) (*Table, error) {
	dt := &Table{columns: newColumns()}
	for i, c := range cols {
		name, _ := c.Name()
		if i > 0 && c.Len() != dt.rows {
			return nil, fmt.Errorf("table.FromColumns: column %q has %d values, not %d: %w", name, c.Len(), dt.rows, dtype.ErrUnsupported)
		}
		dt.rows = c.Len()
		dt.columns.Append(name, c)
	}
	return dt, nil
}

func newColumns() *keylist.List[string, *column.Column] {
	return keylist.New[string, *column.Column]()
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.columns.Len() }

// Shape returns the number of columns and the number of rows.
func (dt *Table) Shape() (columns, rows int) {
	return dt.NumColumns(), dt.rows
}

// Column returns the first column with the given name. If there is
// none, the error wraps [dtype.ErrKeyNotFound] and names the closest
// column name, if any is similar.
func (dt *Table) Column(name string) (*column.Column, error) {
	c, ok := dt.columns.AtTry(name)
	if ok {
		return c, nil
	}
	if best := dt.closestName(name); best != "" {
		return nil, fmt.Errorf("table.Column: %q not found, did you mean %q?: %w", name, best, dtype.ErrKeyNotFound)
	}
	return nil, fmt.Errorf("table.Column: %q not found: %w", name, dtype.ErrKeyNotFound)
}

// closestName returns the column name most similar to the given one,
// by Levenshtein similarity, or "" if none is at least half similar.
func (dt *Table) closestName(name string) string {
	best, score := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, k := range dt.columns.Keys {
		if s := strutil.Similarity(name, k, lev); s >= score {
			best, score = k, s
		}
	}
	return best
}

// ColumnIndex returns the column at the given index.
func (dt *Table) ColumnIndex(idx int) *column.Column {
	return dt.columns.Values[idx]
}

// ColumnName returns the name of the given column.
func (dt *Table) ColumnName(i int) string {
	return dt.columns.Keys[i]
}

// Names returns the column names, in order.
func (dt *Table) Names() []string {
	return append([]string(nil), dt.columns.Keys...)
}

// Dtypes returns the dtype of each column, in order.
func (dt *Table) Dtypes() []dtype.Dtype {
	dts := make([]dtype.Dtype, dt.NumColumns())
	for i, c := range dt.columns.Values {
		dts[i] = c.Dtype()
	}
	return dts
}

// Max returns a column of the maximum of each column, labeled by
// the column names. The dtype of the result is inferred from the
// maxima, so it is Object when the columns have mixed dtypes.
func (dt *Table) Max() (*column.Column, error) {
	vals := make([]any, dt.NumColumns())
	for i, c := range dt.columns.Values {
		vals[i] = c.Max()
	}
	return column.New(vals, column.Labels(dt.columns.Keys...))
}

// Render returns the text of the table, see [render.RenderTable].
func (dt *Table) Render() string {
	cols := make([]render.Column, dt.NumColumns())
	for i, c := range dt.columns.Values {
		cols[i] = c
	}
	return render.RenderTable(dt.columns.Keys, cols)
}

// String returns the text of the table, as [Table.Render].
func (dt *Table) String() string {
	return dt.Render()
}
