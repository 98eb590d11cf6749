// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name.
Keys do not need to be unique: lookup by key
returns the first item with that key, in list order.
*/
package keylist

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to the index of
// the first item with that key, to support fast lookup by name.
type List[K comparable, V any] struct {
	// List is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-first-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

// Append adds an item to the end of the list with given key,
// whether or not the key is already on the list. Lookup by
// the key continues to return the first item with that key.
func (kl *List[K, V]) Append(key K, val V) {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; !ok {
		kl.indexes[key] = len(kl.Values)
	}
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// AtTry returns the first value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}
