// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOptions struct {
	MaxRows int    `yaml:"max_rows"`
	NaRep   string `yaml:"na_rep"`
	Dtype   bool   `yaml:"dtype"`
}

func TestOpenMap(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("max_rows: 4\nna_rep: \"-\"\ndtype: true\n"), 0666))
	m := map[string]any{}
	require.NoError(t, Open(&m, fn))
	assert.Equal(t, 4, m["max_rows"])
	assert.Equal(t, "-", m["na_rep"])
	assert.Equal(t, true, m["dtype"])

	assert.Error(t, Open(&m, filepath.Join(t.TempDir(), "none.yaml")))
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&testOptions{MaxRows: 3, NaRep: "x"}, &b))
	assert.Equal(t, "max_rows: 3\nna_rep: x\ndtype: false\n", b.String())

	dst := &testOptions{}
	require.NoError(t, ReadStrict(dst, &b))
	assert.Equal(t, 3, dst.MaxRows)
	assert.Equal(t, "x", dst.NaRep)
}

func TestReadStrict(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("max_rows: 2\nwidth: 3\n"), 0666))
	dst := &testOptions{}
	assert.NoError(t, Open(dst, fn))
	assert.Equal(t, 2, dst.MaxRows)
	assert.Error(t, ReadStrict(dst, strings.NewReader("max_rows: 2\nwidth: 3\n")))
}
