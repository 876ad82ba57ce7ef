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
package iter

// sliceIterator is a cursor directly over a slice of items.  It does not copy
// the slice, hence writes to the underlying storage are visible through it.
// The cursor is unchecked: it relies solely on the bounds of the slice it was
// constructed from.
type sliceIterator[T any] struct {
	items []T
	// Number of items already visited.
	index uint
	// Visit items back-to-front
	reverse bool
}

// NewSliceIterator constructs an iterator visiting the given items in order.
func NewSliceIterator[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items, 0, false}
}

// NewReverseSliceIterator constructs an iterator visiting the given items in
// reverse order, starting from the last.
func NewReverseSliceIterator[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items, 0, true}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *sliceIterator[T]) HasNext() bool {
	return p.index < uint(len(p.items))
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *sliceIterator[T]) Next() T {
	next := p.items[p.offset(p.index)]
	p.index++

	return next
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *sliceIterator[T]) Clone() Iterator[T] {
	return &sliceIterator[T]{p.items, p.index, p.reverse}
}

// Collect allocates a new array containing all remaining items of this
// iterator.  This drains the iterator.
//
//nolint:revive
func (p *sliceIterator[T]) Collect() []T {
	items := make([]T, 0, p.Count())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *sliceIterator[T]) Count() uint {
	return uint(len(p.items)) - p.index
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *sliceIterator[T]) Find(predicate Predicate[T]) (uint, bool) {
	return Find(p, predicate)
}

// Nth returns the nth remaining item in this iterator, and positions the cursor
// immediately after it.
//
//nolint:revive
func (p *sliceIterator[T]) Nth(n uint) T {
	p.index += n
	//
	return p.Next()
}

// Map a visit count to a position in the underlying slice.
func (p *sliceIterator[T]) offset(index uint) uint {
	if p.reverse {
		return uint(len(p.items)) - 1 - index
	}
	//
	return index
}
