// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a few helpers for navigating pointer
// types and values, and for reading basic kinds of values,
// within the reflect system.
package reflectx

import (
	"reflect"
)

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
// The result is invalid if a nil pointer is reached.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// KindIsBasic returns whether the given [reflect.Kind] is a bool,
// integer, float or string kind.
func KindIsBasic(kind reflect.Kind) bool {
	switch {
	case kind == reflect.Bool, kind == reflect.String:
		return true
	case kind >= reflect.Int && kind <= reflect.Uint64:
		return true
	case kind == reflect.Float32, kind == reflect.Float64:
		return true
	}
	return false
}

// BasicValue returns the given value of a basic kind (see [KindIsBasic])
// as the plain Go value of its kind: bool, int64, uint64, float64 or
// string, so that named types are reduced to their underlying kind.
// Pointers are followed, and nil is returned for a nil pointer,
// an invalid value, or a value that is not of a basic kind.
func BasicValue(v reflect.Value) any {
	v = NonPointerValue(v)
	if !v.IsValid() {
		return nil
	}
	switch k := v.Kind(); {
	case k == reflect.Bool:
		return v.Bool()
	case k == reflect.String:
		return v.String()
	case k >= reflect.Int && k <= reflect.Int64:
		return v.Int()
	case k >= reflect.Uint && k <= reflect.Uint64:
		return v.Uint()
	case k == reflect.Float32, k == reflect.Float64:
		return v.Float()
	}
	return nil
}
