// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("bad thing")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
	assert.Equal(t, 12, Ignore1(strconv.Atoi("12")))
	assert.True(t, Is(fmt.Errorf("wrapped: %w", err), err))
}

func TestCallerInfo(t *testing.T) {
	ci := func() string { return CallerInfo() }()
	assert.Contains(t, ci, "errors_test.go")
}
