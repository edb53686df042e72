// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"fmt"
	"strings"
)

// A reasonably simple hashset implementation which permits collisions.
// Hashcodes identify buckets rather than items, hence two distinct items
// whose hashcodes collide are both retained.  This matters here because
// structural hashes of expression trees are not perfect.

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  Implementations must ensure that equal items always
// produce the same hashcode.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// HashSet defines a generic set implementation backed by a map of buckets.
type HashSet[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64]bucket[T]
	// count of unique items across all buckets.
	count uint
}

// NewHashSet creates a new HashSet with a given underlying capacity.
func NewHashSet[T Hasher[T]](size uint) *HashSet[T] {
	items := make(map[uint64]bucket[T], size)
	return &HashSet[T]{items, 0}
}

// Size returns the number of unique items stored in this HashSet.
func (p *HashSet[T]) Size() uint {
	return p.count
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *HashSet[T]) Insert(item T) bool {
	hash := item.Hash()
	// Lookup existing bucket
	b := p.items[hash]
	// Insert new item
	contained := b.insert(item)
	// Update map
	p.items[hash] = b
	//
	if !contained {
		p.count++
	}
	//
	return contained
}

// Contains checks whether the given item is contained within this set.
func (p *HashSet[T]) Contains(item T) bool {
	if b, ok := p.items[item.Hash()]; ok {
		return b.contains(item)
	}
	//
	return false
}

// Items returns the contents of this set as a slice.  Observe that, since
// buckets are held in a map, the order of the returned slice is not
// deterministic.
func (p *HashSet[T]) Items() []T {
	contents := make([]T, 0, p.count)
	//
	for _, b := range p.items {
		contents = append(contents, b.items...)
	}
	//
	return contents
}

func (p *HashSet[T]) String() string {
	var r strings.Builder
	//
	r.WriteString("{")
	//
	for i, item := range p.Items() {
		if i != 0 {
			r.WriteString(",")
		}
		//
		r.WriteString(fmt.Sprintf("%s", any(item)))
	}
	//
	r.WriteString("}")
	//
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type bucket[T Hasher[T]] struct {
	items []T
}

// Insert a new item into this bucket, returning true if it was already
// present.
//
//nolint:revive
func (b *bucket[T]) insert(item T) bool {
	if b.contains(item) {
		// Item already present, so nothing to do.
		return true
	}
	// Append item
	b.items = append(b.items, item)
	// Item not present
	return false
}

// Check whether this bucket contains a given item, or not.
//
//nolint:revive
func (b *bucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}
	//
	return false
}
