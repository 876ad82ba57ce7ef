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

// Package enumarray provides a fixed-size array whose positions correspond
// one-to-one with the constants of a sequential enumeration.  A typical use is
// a table of names for debug printing:
//
//	var fooNames = enumarray.MustNew[Foo]("Bar", "Baz", "Fooz")
//
//	fmt.Println(fooNames.At(Baz))
package enumarray

import (
	stditer "iter"

	"github.com/consensys/go-enum/pkg/enum"
	"github.com/consensys/go-enum/pkg/util/collection/iter"
	"github.com/consensys/go-enum/pkg/util/contract"
)

// Array holds exactly one element for each constant of an enumeration E, with
// the element for the ith constant at position i.  Its size is fixed at
// construction and never changes.  Indexed access is checked (a violation
// being a programmer error), whilst traversal is unchecked.
//
// Copying an Array value shares the underlying storage, as for a slice.  Use
// Clone to obtain an independent copy.
type Array[E enum.Sequential[E], T any] struct {
	elements []T
}

// New constructs an array from one element per enumeration constant, given in
// ascending order of the constants.  An error is returned if the number of
// elements does not match the enumeration's terminal constant.  The elements
// are copied.
func New[E enum.Sequential[E], T any](elements ...T) (Array[E, T], error) {
	return NewWithTerminal[E](enum.Terminal[E](), elements...)
}

// NewWithTerminal constructs an array whose size is determined by a given
// terminal constant, rather than the enumeration's own.
func NewWithTerminal[E enum.Sequential[E], T any](last E, elements ...T) (Array[E, T], error) {
	if last < 0 || uint64(len(elements)) != uint64(last) {
		return Array[E, T]{}, sizeMismatch(uint64(last), len(elements))
	}
	//
	items := make([]T, len(elements))
	copy(items, elements)
	//
	return Array[E, T]{items}, nil
}

// MustNew constructs an array as for New, but panics if the number of elements
// is incorrect.  This is intended for package-level tables.
func MustNew[E enum.Sequential[E], T any](elements ...T) Array[E, T] {
	arr, err := New[E](elements...)
	if err != nil {
		panic(err)
	}
	//
	return arr
}

// Make constructs an array sized for the given enumeration, where every
// element is the zero value of T.
func Make[E enum.Sequential[E], T any]() Array[E, T] {
	return Array[E, T]{make([]T, uint(enum.Terminal[E]()))}
}

// Size returns the number of elements in this array, which equals the
// enumeration's terminal constant.
func (p Array[E, T]) Size() uint {
	return uint(len(p.elements))
}

// Get returns the element at a given position.
func (p Array[E, T]) Get(index uint) T {
	p.check(index)
	return p.elements[index]
}

// Set the element at a given position.
func (p Array[E, T]) Set(index uint, value T) {
	p.check(index)
	p.elements[index] = value
}

// Ref returns a pointer to the element at a given position, allowing it to be
// modified in place.
func (p Array[E, T]) Ref(index uint) *T {
	p.check(index)
	return &p.elements[index]
}

// At returns the element for a given enumeration constant.
func (p Array[E, T]) At(key E) T {
	return p.Get(p.position(key))
}

// Put sets the element for a given enumeration constant.
func (p Array[E, T]) Put(key E, value T) {
	p.Set(p.position(key), value)
}

// RefAt returns a pointer to the element for a given enumeration constant.
func (p Array[E, T]) RefAt(key E) *T {
	return p.Ref(p.position(key))
}

// Keys returns an iterator over the keys of this array, in the same order as
// its elements.  Pairing the ith key with the ith element recovers the key
// each element belongs to.  Keys always advance by one, even when the
// enumeration itself is stepped, since every slot of the array has a key.
func (p Array[E, T]) Keys() enum.Iterator[E] {
	return enum.Begin[E]().WithTerminal(E(len(p.elements))).WithStep(1)
}

// Elements returns the underlying storage of this array.  This is not a copy,
// so writes through it modify the array.
func (p Array[E, T]) Elements() []T {
	return p.elements
}

// Iter returns a cursor over the elements of this array, in position order.
func (p Array[E, T]) Iter() iter.Iterator[T] {
	return iter.NewSliceIterator(p.elements)
}

// ReverseIter returns a cursor over the elements of this array, in reverse
// position order.
func (p Array[E, T]) ReverseIter() iter.Iterator[T] {
	return iter.NewReverseSliceIterator(p.elements)
}

// Values returns the elements of this array in position order, for use in a
// range statement.
func (p Array[E, T]) Values() stditer.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.elements {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns each enumeration constant paired with its element, in position
// order, for use in a range statement.
func (p Array[E, T]) All() stditer.Seq2[E, T] {
	return func(yield func(E, T) bool) {
		for i, v := range p.elements {
			if !yield(E(i), v) {
				return
			}
		}
	}
}

// Backward returns each enumeration constant paired with its element, in
// reverse position order, for use in a range statement.
func (p Array[E, T]) Backward() stditer.Seq2[E, T] {
	return func(yield func(E, T) bool) {
		for i := len(p.elements) - 1; i >= 0; i-- {
			if !yield(E(i), p.elements[i]) {
				return
			}
		}
	}
}

// IndexFunc returns the first enumeration constant whose element satisfies a
// given predicate, or false if there is none.
func (p Array[E, T]) IndexFunc(predicate iter.Predicate[T]) (E, bool) {
	index, ok := p.Iter().Find(predicate)
	//
	return E(index), ok
}

// Fill assigns a given value to every element.
func (p Array[E, T]) Fill(value T) {
	for i := range p.elements {
		p.elements[i] = value
	}
}

// Clone returns an independent copy of this array.
func (p Array[E, T]) Clone() Array[E, T] {
	items := make([]T, len(p.elements))
	copy(items, p.elements)
	//
	return Array[E, T]{items}
}

func (p Array[E, T]) check(index uint) {
	if contract.Enabled && index >= uint(len(p.elements)) {
		contract.Fail("enumeration array index out-of-bounds (%d >= %d)", index, len(p.elements))
	}
}

// Convert a key into a position.  Negative keys wrap to large positions, and
// are therefore rejected by the bounds check.
func (p Array[E, T]) position(key E) uint {
	return uint(key)
}
