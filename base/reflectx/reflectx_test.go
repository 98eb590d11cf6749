// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))

	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[any]()))
	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))

	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.Equal(t, v, NonPointerValue(rv).Interface())
	p := &v
	assert.Equal(t, v, NonPointerValue(reflect.ValueOf(p)).Interface())
	pp := &p
	assert.Equal(t, v, NonPointerValue(reflect.ValueOf(pp)).Interface())

	var np *int
	assert.False(t, NonPointerValue(reflect.ValueOf(np)).IsValid())
}

func TestKindIsBasic(t *testing.T) {
	for _, k := range []reflect.Kind{reflect.Bool, reflect.Int, reflect.Int8, reflect.Uint64, reflect.Float32, reflect.String} {
		assert.True(t, KindIsBasic(k), k.String())
	}
	for _, k := range []reflect.Kind{reflect.Uintptr, reflect.Complex64, reflect.Slice, reflect.Struct, reflect.Pointer} {
		assert.False(t, KindIsBasic(k), k.String())
	}
}

type celsius float32

func TestBasicValue(t *testing.T) {
	assert.Equal(t, true, BasicValue(reflect.ValueOf(true)))
	assert.Equal(t, int64(-3), BasicValue(reflect.ValueOf(int8(-3))))
	assert.Equal(t, uint64(7), BasicValue(reflect.ValueOf(uint16(7))))
	assert.Equal(t, 1.5, BasicValue(reflect.ValueOf(celsius(1.5))))
	assert.Equal(t, "x", BasicValue(reflect.ValueOf("x")))

	n := 4
	assert.Equal(t, int64(4), BasicValue(reflect.ValueOf(&n)))
	var np *int
	assert.Nil(t, BasicValue(reflect.ValueOf(np)))
	assert.Nil(t, BasicValue(reflect.ValueOf([]int{1})))
}
