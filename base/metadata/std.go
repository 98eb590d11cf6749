// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "cogentcore.org/tabular/base/errors"

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// GetName returns the "Name" standard key value (empty if not set).
func (md *Data) GetName() string {
	return errors.Ignore1(Get[string](*md, "Name"))
}

// HasName returns true if the "Name" standard key has been set,
// which distinguishes an empty name from no name.
func (md *Data) HasName() bool {
	return md.Has("Name")
}

// SetFilename sets the "Filename" standard key, for data read from a file.
func (md *Data) SetFilename(file string) {
	md.Set("Filename", file)
}

// GetFilename returns the "Filename" standard key value (empty if not set).
func (md *Data) GetFilename() string {
	return errors.Ignore1(Get[string](*md, "Filename"))
}
