// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes TOML files, using
// github.com/pelletier/go-toml/v2 through the iox helpers.
package tomlx

import (
	"io"

	"cogentcore.org/tabular/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return toml.NewDecoder(r) }

// NewStrictDecoder returns a new [iox.Decoder] that fails on
// keys that do not match a field of the destination struct.
func NewStrictDecoder(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// Open reads the given object from the given filename using TOML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadStrict reads the given object from the given reader using
// TOML encoding, with a strict decoder (see [NewStrictDecoder]).
func ReadStrict(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewStrictDecoder)
}

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w).SetIndentTables(true).SetArraysMultiline(true)
}

// Write writes the given object using TOML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}
