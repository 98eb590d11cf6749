// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elide provides basic text eliding functions.
package elide

import "unicode/utf8"

// Ellipsis is the text that marks an elided part.
const Ellipsis = "..."

// End elides from the end of the string if it is longer than n runes,
// keeping the first n-3 runes followed by [Ellipsis], so that the
// result is n runes long.
func End(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	keep := max(n-len(Ellipsis), 0)
	r := 0
	for i := range s {
		if r == keep {
			return s[:i] + Ellipsis
		}
		r++
	}
	return s
}
