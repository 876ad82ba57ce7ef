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
package enum

import (
	stditer "iter"

	"github.com/consensys/go-enum/pkg/util/collection/iter"
	"github.com/consensys/go-enum/pkg/util/contract"
)

// Iterator walks the constants of a sequential enumeration in ascending order.
// It is a plain value: copies are independent, and two iterators are equal
// exactly when their positions are.  The zero value is positioned at the first
// constant, bounded by the enumeration's terminal constant and advancing by its
// step.  An iterator can be advanced to (or past) its terminal, but
// dereferencing it there is a contract violation.
//
// The terminal and step are assumed to agree with the enumeration's actual
// constants.  This is not checked.
type Iterator[E Sequential[E]] struct {
	current E
	// Overrides the enumeration's terminal, when bounded is set.
	last    E
	bounded bool
	// Overrides the enumeration's step, when non-zero.
	step E
}

// Begin returns an iterator positioned at the first constant of a given
// enumeration.
func Begin[E Sequential[E]]() Iterator[E] {
	return Iterator[E]{}
}

// At returns an iterator positioned at a given constant.
func At[E Sequential[E]](value E) Iterator[E] {
	return Iterator[E]{current: value}
}

// End returns an iterator positioned at the terminal constant of a given
// enumeration.  This is a sentinel which must not be dereferenced.
func End[E Sequential[E]]() Iterator[E] {
	return Iterator[E]{current: Terminal[E]()}
}

// Values returns every constant of a given enumeration, in ascending order,
// for use in a range statement.
func Values[E Sequential[E]]() stditer.Seq[E] {
	return Begin[E]().All()
}

// WithTerminal returns a copy of this iterator bounded by a different terminal
// constant.
func (p Iterator[E]) WithTerminal(last E) Iterator[E] {
	p.last, p.bounded = last, true
	return p
}

// WithStep returns a copy of this iterator advancing by a different step, which
// must be positive.
func (p Iterator[E]) WithStep(step E) Iterator[E] {
	contract.Require(step > 0, "enumeration step must be positive")
	//
	p.step = step
	//
	return p
}

// Position returns the raw position of this iterator, which may be at or past
// its terminal.
func (p Iterator[E]) Position() E {
	return p.current
}

// Terminal returns the terminal constant bounding this iterator.
func (p Iterator[E]) Terminal() E {
	if p.bounded {
		return p.last
	}
	//
	return Terminal[E]()
}

// Stride returns the amount by which this iterator advances.
func (p Iterator[E]) Stride() E {
	if p.step != 0 {
		return p.step
	}
	//
	return Step[E]()
}

// Value returns the constant at the current position.  It is a contract
// violation to call this at or beyond the terminal constant.
func (p Iterator[E]) Value() E {
	if contract.Enabled && p.current >= p.Terminal() {
		contract.Fail("enumeration iterator out-of-bounds (%d >= %d)", p.current, p.Terminal())
	}
	//
	return p.current
}

// Inc advances this iterator by one step, returning the updated iterator.
func (p *Iterator[E]) Inc() Iterator[E] {
	p.current += p.Stride()
	return *p
}

// PostInc advances this iterator by one step, returning a copy of the
// iterator as it was before.
func (p *Iterator[E]) PostInc() Iterator[E] {
	old := *p
	p.current += p.Stride()
	//
	return old
}

// Begin returns a fresh iterator positioned at the first constant, with the
// same terminal and step as this one.
func (p Iterator[E]) Begin() Iterator[E] {
	p.current = 0
	return p
}

// End returns an iterator positioned exactly at the terminal constant, with the
// same terminal and step as this one.  This is a loop boundary only and must
// not be dereferenced.
func (p Iterator[E]) End() Iterator[E] {
	p.current = p.Terminal()
	return p
}

// Equal checks whether two iterators are at the same position.
func (p Iterator[E]) Equal(other Iterator[E]) bool {
	return p.current == other.current
}

// Less checks whether this iterator is positioned before another.
func (p Iterator[E]) Less(other Iterator[E]) bool {
	return p.current < other.current
}

// Compare the positions of two iterators, returning -1, 0 or +1 (following
// cmp.Compare).
func (p Iterator[E]) Compare(other Iterator[E]) int {
	switch {
	case p.current < other.current:
		return -1
	case p.current > other.current:
		return 1
	default:
		return 0
	}
}

// ===================================================================
// iter.Iterator
// ===================================================================

// HasNext checks whether or not there are any constants remaining to visit.
//
//nolint:revive
func (p *Iterator[E]) HasNext() bool {
	return p.current < p.Terminal()
}

// Next returns the constant at the current position, and advances the
// iterator.
//
//nolint:revive
func (p *Iterator[E]) Next() E {
	return p.PostInc().Value()
}

// Clone creates a copy of this iterator at the given position.
//
//nolint:revive
func (p *Iterator[E]) Clone() iter.Iterator[E] {
	clone := *p
	return &clone
}

// Collect allocates a new array containing all remaining constants.  This
// drains the iterator.
//
//nolint:revive
func (p *Iterator[E]) Collect() []E {
	items := make([]E, 0, p.Count())
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// Count returns the number of constants left to visit.
//
//nolint:revive
func (p *Iterator[E]) Count() uint {
	return count(p.current, p.Terminal(), p.Stride())
}

// Find returns the index of the first remaining constant matching a given
// predicate, or false if no match is found.
//
//nolint:revive
func (p *Iterator[E]) Find(predicate iter.Predicate[E]) (uint, bool) {
	return iter.Find(p, predicate)
}

// Nth returns the nth remaining constant, leaving the iterator positioned
// immediately after it.
//
//nolint:revive
func (p *Iterator[E]) Nth(n uint) E {
	p.current += E(n) * p.Stride()
	//
	return p.Next()
}

// All returns the constants from this iterator's position up to its terminal,
// for use in a range statement.  This iterator itself is not advanced.
func (p Iterator[E]) All() stditer.Seq[E] {
	return func(yield func(E) bool) {
		cursor := p
		//
		iter.Seq[E](&cursor)(yield)
	}
}
