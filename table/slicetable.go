// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"

	"cogentcore.org/tabular/base/reflectx"
	"cogentcore.org/tabular/dtype"
)

// NewSliceTable returns a new Table with data from the given slice
// of structs (or pointers to structs). There is one column for each
// exported field of a basic kind (bool, integer, float or string),
// or a pointer to one, named by the field. A nil pointer field is a
// missing value.
func NewSliceTable(st any) (*Table, error) {
	npv := reflectx.NonPointerValue(reflect.ValueOf(st))
	if npv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("table.NewSliceTable: %T is not a slice: %w", st, dtype.ErrUnsupported)
	}
	eltyp := reflectx.NonPointerType(npv.Type().Elem())
	if eltyp.Kind() != reflect.Struct {
		return nil, fmt.Errorf("table.NewSliceTable: element type %v is not a struct: %w", eltyp, dtype.ErrUnsupported)
	}
	var fields []int
	for i := range eltyp.NumField() {
		f := eltyp.Field(i)
		if f.IsExported() && reflectx.KindIsBasic(reflectx.NonPointerType(f.Type).Kind()) {
			fields = append(fields, i)
		}
	}
	nr := npv.Len()
	cols := make([]Pair, len(fields))
	for ci, fi := range fields {
		cols[ci] = Pair{Name: eltyp.Field(fi).Name, Values: make([]any, nr)}
	}
	for ri := range nr {
		ev := reflectx.NonPointerValue(npv.Index(ri))
		if !ev.IsValid() {
			return nil, fmt.Errorf("table.NewSliceTable: element %d is nil: %w", ri, dtype.ErrUnsupported)
		}
		for ci, fi := range fields {
			cols[ci].Values[ri] = reflectx.BasicValue(ev.Field(fi))
		}
	}
	return New(cols)
}
