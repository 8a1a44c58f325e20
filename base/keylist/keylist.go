// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list (slice) of values,
// with a map from a key (e.g., a pick id) to indexes,
// to support fast lookup by key while keeping insertion order.
package keylist

import (
	"slices"

	"cogentcore.org/xyzedit/base/errors"
)

// List is an ordered slice of Values with a parallel slice of Keys,
// and a key-to-index map. The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered slice of keys, in the same order as Values.
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Reset removes all elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Add appends the given value with the given key. It is an error
// if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	if _, ok := kl.indexes[key]; ok {
		return errors.Errorf(errors.ErrInvalidArgument, "keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value for the given key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key and whether it is present.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is on the list.
func (kl *List[K, V]) Has(key K) bool {
	_, ok := kl.indexes[key]
	return ok
}

// IndexByKey returns the index of the given key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	if idx, ok := kl.indexes[key]; ok {
		return idx
	}
	return -1
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey deletes the item with the given key, keeping the order
// of the rest, and returns false if it is not on the list.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	delete(kl.indexes, key)
	for i := idx; i < len(kl.Keys); i++ {
		kl.indexes[kl.Keys[i]] = i
	}
	return true
}
