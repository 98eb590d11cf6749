// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtype

import "cogentcore.org/tabular/base/errors"

// These are the error kinds shared by all tabular packages.
// Errors returned by the packages wrap one of these,
// so they can be tested with [errors.Is].
var (
	// ErrUnsupported is returned when an option outside of
	// the documented set is supplied.
	ErrUnsupported = errors.New("unsupported configuration")

	// ErrKeyNotFound is returned when a column lookup by name fails.
	ErrKeyNotFound = errors.New("key not found")

	// ErrParse is returned when a token or value cannot be
	// coerced to its resolved dtype.
	ErrParse = errors.New("parse failure")

	// ErrPrecondition is returned when an operation is applied
	// to a column whose dtype does not support it.
	ErrPrecondition = errors.New("precondition violated")
)
