// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes YAML files, using
// gopkg.in/yaml.v3 through the iox helpers.
package yamlx

import (
	"io"

	"cogentcore.org/tabular/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// NewStrictDecoder returns a new [iox.Decoder] that fails on
// keys that do not match a field of the destination struct.
func NewStrictDecoder(r io.Reader) iox.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// ReadStrict reads the given object from the given reader using
// YAML encoding, with a strict decoder (see [NewStrictDecoder]).
func ReadStrict(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewStrictDecoder)
}

// NewEncoder returns a new [iox.Encoder]. Each call to Encode
// writes one complete document.
func NewEncoder(w io.Writer) iox.Encoder { return &encoder{w: w} }

type encoder struct {
	w io.Writer
}

func (e *encoder) Encode(v any) error {
	ye := yaml.NewEncoder(e.w)
	ye.SetIndent(2)
	if err := ye.Encode(v); err != nil {
		return err
	}
	return ye.Close()
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}
