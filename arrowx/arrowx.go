// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrowx converts tables to and from Apache Arrow records
// and tables, so that tabular data can be exchanged with other
// Arrow based tools.
package arrowx

import (
	"fmt"
	"slices"

	"cogentcore.org/tabular/column"
	"cogentcore.org/tabular/dtype"
	"cogentcore.org/tabular/table"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// DataType returns the Arrow data type of the given dtype:
// boolean, int64, float64, or utf8 for Object.
func DataType(dt dtype.Dtype) arrow.DataType {
	switch dt {
	case dtype.Bool:
		return arrow.FixedWidthTypes.Boolean
	case dtype.Int64:
		return arrow.PrimitiveTypes.Int64
	case dtype.Float64:
		return arrow.PrimitiveTypes.Float64
	}
	return arrow.BinaryTypes.String
}

// Schema returns the Arrow schema of the given table,
// with one nullable field per column.
func Schema(dt *table.Table) *arrow.Schema {
	fields := make([]arrow.Field, dt.NumColumns())
	for i, t := range dt.Dtypes() {
		fields[i] = arrow.Field{Name: dt.ColumnName(i), Type: DataType(t), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ToRecord returns the table as an Arrow record, allocated with the
// given allocator, or a Go allocator if it is nil. NaN floats are kept
// as values, and missing Object values are nulls. The caller must
// Release the record.
func ToRecord(dt *table.Table, mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	b := array.NewRecordBuilder(mem, Schema(dt))
	defer b.Release()
	for ci := range dt.NumColumns() {
		appendColumn(b.Field(ci), dt.ColumnIndex(ci))
	}
	return b.NewRecord()
}

// appendColumn appends the values of the column to the builder,
// which is of the type given by [DataType] for the column dtype.
func appendColumn(fb array.Builder, c *column.Column) {
	fb.Reserve(c.Len())
	switch b := fb.(type) {
	case *array.BooleanBuilder:
		for _, v := range c.Values() {
			b.Append(v.Bool())
		}
	case *array.Int64Builder:
		for _, v := range c.Values() {
			b.Append(v.Int())
		}
	case *array.Float64Builder:
		for _, v := range c.Values() {
			b.Append(v.Float())
		}
	case *array.StringBuilder:
		for _, v := range c.Values() {
			if v.IsNull() {
				b.AppendNull()
				continue
			}
			b.Append(v.Text())
		}
	}
}

// ToTable returns the table as an Arrow table of one record.
// The caller must Release the table.
func ToTable(dt *table.Table, mem memory.Allocator) arrow.Table {
	rec := ToRecord(dt, mem)
	defer rec.Release()
	return array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
}

// FromRecord returns a table of the columns of the given record.
// Boolean, integer, float and string columns are supported, and any
// other Arrow type is an error wrapping [dtype.ErrUnsupported].
// Nulls are missing values: an integer column with nulls becomes
// Float64 with NaN, and a boolean one becomes Object with None.
func FromRecord(rec arrow.Record) (*table.Table, error) {
	cols := make([]*column.Column, rec.NumCols())
	for ci := range cols {
		name := rec.ColumnName(ci)
		c, err := fromArray(name, rec.Column(ci))
		if err != nil {
			return nil, fmt.Errorf("arrowx.FromRecord: column %q: %w", name, err)
		}
		cols[ci] = c
	}
	return table.FromColumns(cols...)
}

// FromTable returns a table of the columns of the given Arrow table,
// reading its records in order, see [FromRecord].
func FromTable(at arrow.Table) (*table.Table, error) {
	tr := array.NewTableReader(at, at.NumRows())
	defer tr.Release()
	var vals [][]any
	var dts []dtype.Dtype
	for tr.Next() {
		rec := tr.Record()
		if vals == nil {
			vals = make([][]any, rec.NumCols())
			dts = make([]dtype.Dtype, rec.NumCols())
		}
		for ci := range vals {
			dt, v, err := arrayValues(rec.Column(ci))
			if err != nil {
				return nil, fmt.Errorf("arrowx.FromTable: column %q: %w", rec.ColumnName(ci), err)
			}
			dts[ci] = max(dts[ci], dt)
			vals[ci] = append(vals[ci], v...)
		}
	}
	if vals == nil {
		return emptyTable(at.Schema())
	}
	cols := make([]*column.Column, len(vals))
	for ci, v := range vals {
		c, err := newColumn(at.Schema().Field(ci).Name, dts[ci], v)
		if err != nil {
			return nil, fmt.Errorf("arrowx.FromTable: %w", err)
		}
		cols[ci] = c
	}
	return table.FromColumns(cols...)
}

// emptyTable returns a table with no rows for the given schema.
func emptyTable(sc *arrow.Schema) (*table.Table, error) {
	cols := make([]*column.Column, sc.NumFields())
	for ci, f := range sc.Fields() {
		dt, err := fromDataType(f.Type)
		if err != nil {
			return nil, err
		}
		cols[ci], err = newColumn(f.Name, dt, nil)
		if err != nil {
			return nil, err
		}
	}
	return table.FromColumns(cols...)
}

func fromArray(name string, arr arrow.Array) (*column.Column, error) {
	if arr.NullN() == 0 {
		if c, ok, err := fromNumbers(name, arr); ok {
			return c, err
		}
	}
	dt, vals, err := arrayValues(arr)
	if err != nil {
		return nil, err
	}
	return newColumn(name, dt, vals)
}

// fromNumbers returns a column of the values of a numeric array
// that has no nulls, and false for any other array.
func fromNumbers(name string, arr arrow.Array) (*column.Column, bool, error) {
	var c *column.Column
	var err error
	switch a := arr.(type) {
	case *array.Int8:
		c, err = column.NewNumbers(a.Int8Values(), column.Name(name))
	case *array.Int16:
		c, err = column.NewNumbers(a.Int16Values(), column.Name(name))
	case *array.Int32:
		c, err = column.NewNumbers(a.Int32Values(), column.Name(name))
	case *array.Int64:
		c, err = column.NewNumbers(a.Int64Values(), column.Name(name))
	case *array.Uint8:
		c, err = column.NewNumbers(a.Uint8Values(), column.Name(name))
	case *array.Uint16:
		c, err = column.NewNumbers(a.Uint16Values(), column.Name(name))
	case *array.Uint32:
		c, err = column.NewNumbers(a.Uint32Values(), column.Name(name))
	case *array.Uint64:
		c, err = column.NewNumbers(a.Uint64Values(), column.Name(name), column.Dtype(dtype.Float64))
	case *array.Float32:
		c, err = column.NewNumbers(a.Float32Values(), column.Name(name))
	case *array.Float64:
		c, err = column.NewNumbers(a.Float64Values(), column.Name(name))
	default:
		return nil, false, nil
	}
	return c, true, err
}

// newColumn returns a named column of the given values, with the
// given dtype promoted to hold any missing (nil) values.
func newColumn(name string, dt dtype.Dtype, vals []any) (*column.Column, error) {
	if slices.Contains(vals, nil) {
		switch dt {
		case dtype.Bool:
			dt = dtype.Object
		case dtype.Int64:
			dt = dtype.Float64
		}
	}
	if vals == nil {
		vals = []any{}
	}
	return column.New(vals, column.Name(name), column.Dtype(dt))
}

// fromDataType returns the dtype that holds values of the Arrow type.
func fromDataType(t arrow.DataType) (dtype.Dtype, error) {
	switch t.ID() {
	case arrow.BOOL:
		return dtype.Bool, nil
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64, arrow.UINT8, arrow.UINT16, arrow.UINT32:
		return dtype.Int64, nil
	case arrow.UINT64, arrow.FLOAT32, arrow.FLOAT64:
		return dtype.Float64, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return dtype.Object, nil
	}
	return 0, fmt.Errorf("arrow type %v: %w", t, dtype.ErrUnsupported)
}

// arrayValues returns the dtype of the array and its values as
// native Go values, with nil for nulls.
func arrayValues(arr arrow.Array) (dtype.Dtype, []any, error) {
	dt, err := fromDataType(arr.DataType())
	if err != nil {
		return dt, nil, err
	}
	n := arr.Len()
	vals := make([]any, n)
	for i := range n {
		if arr.IsNull(i) {
			continue
		}
		switch a := arr.(type) {
		case *array.Boolean:
			vals[i] = a.Value(i)
		case *array.Int8:
			vals[i] = a.Value(i)
		case *array.Int16:
			vals[i] = a.Value(i)
		case *array.Int32:
			vals[i] = a.Value(i)
		case *array.Int64:
			vals[i] = a.Value(i)
		case *array.Uint8:
			vals[i] = a.Value(i)
		case *array.Uint16:
			vals[i] = a.Value(i)
		case *array.Uint32:
			vals[i] = a.Value(i)
		case *array.Uint64:
			vals[i] = float64(a.Value(i))
		case *array.Float32:
			vals[i] = a.Value(i)
		case *array.Float64:
			vals[i] = a.Value(i)
		case *array.String:
			vals[i] = a.Value(i)
		case *array.LargeString:
			vals[i] = a.Value(i)
		}
	}
	return dt, vals, nil
}
