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
	"testing"

	"github.com/consensys/go-enum/pkg/util/assert"
	"github.com/consensys/go-enum/pkg/util/collection/iter"
)

type foo uint8

const (
	bar foo = iota
	baz
	fooz
	fooCount
)

func (foo) Count() foo { return fooCount }

// Constants spaced four apart, with a terminal one step past the last.
type spaced int16

const (
	spacedA spaced = 4 * iota
	spacedB
	spacedC
	spacedCount
)

func (spaced) Count() spaced { return spacedCount }
func (spaced) Step() spaced  { return 4 }

type empty int

func (empty) Count() empty { return 0 }

func Test_Iterator_01(t *testing.T) {
	checkValues(t, Begin[foo](), []foo{bar, baz, fooz})
}

func Test_Iterator_02(t *testing.T) {
	var it Iterator[foo]
	// Zero value is a default iterator
	assert.True(t, it.Equal(Begin[foo]()))
	checkValues(t, it, []foo{bar, baz, fooz})
}

func Test_Iterator_03(t *testing.T) {
	checkValues(t, Begin[spaced](), []spaced{spacedA, spacedB, spacedC})
	assert.Equal(t, uint(3), Len[spaced]())
}

func Test_Iterator_04(t *testing.T) {
	checkValues(t, Begin[empty](), []empty{})
	assert.Equal(t, uint(0), Len[empty]())
}

func Test_Iterator_05(t *testing.T) {
	// Explicit step on a unit enumeration
	checkValues(t, Begin[foo]().WithStep(2), []foo{bar, fooz})
	checkValues(t, Begin[foo]().WithStep(3), []foo{bar})
}

func Test_Iterator_06(t *testing.T) {
	// Explicit terminal
	checkValues(t, Begin[foo]().WithTerminal(fooz), []foo{bar, baz})
	checkValues(t, Begin[foo]().WithTerminal(bar), []foo{})
}

func Test_Iterator_07(t *testing.T) {
	checkValues(t, At(baz), []foo{baz, fooz})
	checkValues(t, At(fooCount), []foo{})
}

func Test_Iterator_08(t *testing.T) {
	it := Begin[foo]()
	// Pre-increment reflects the new position
	next := it.Inc()
	assert.Equal(t, baz, next.Value())
	assert.Equal(t, baz, it.Value())
	// Post-increment reflects the old position
	prev := it.PostInc()
	assert.Equal(t, baz, prev.Value())
	assert.Equal(t, fooz, it.Value())
}

func Test_Iterator_09(t *testing.T) {
	it := Begin[spaced]()
	prev := it.PostInc()
	//
	assert.Equal(t, spaced(0), prev.Position())
	assert.Equal(t, spaced(4), it.Position())
	assert.Equal(t, spaced(8), it.Inc().Position())
}

func Test_Iterator_10(t *testing.T) {
	// Equality is positional only
	assert.True(t, Begin[foo]().Equal(Begin[foo]()))
	assert.True(t, Begin[foo]() == Begin[foo]())
	assert.True(t, Begin[foo]().WithStep(2).Equal(Begin[foo]()))
	assert.False(t, Begin[foo]().Equal(End[foo]()))
}

func Test_Iterator_11(t *testing.T) {
	lhs, rhs := At(bar), At(fooz)
	//
	assert.True(t, lhs.Less(rhs))
	assert.False(t, rhs.Less(lhs))
	assert.False(t, lhs.Less(lhs))
	assert.Equal(t, -1, lhs.Compare(rhs))
	assert.Equal(t, 1, rhs.Compare(lhs))
	assert.Equal(t, 0, rhs.Compare(At(fooz)))
}

func Test_Iterator_12(t *testing.T) {
	// End is positioned exactly at the terminal
	assert.Equal(t, fooCount, End[foo]().Position())
	assert.Equal(t, fooz, Begin[foo]().WithTerminal(fooz).End().Position())
	assert.Equal(t, bar, At(fooz).Begin().Position())
}

func Test_Iterator_13(t *testing.T) {
	var visited []foo
	// Classic loop from begin to end
	for it := Begin[foo](); !it.Equal(it.End()); it.Inc() {
		visited = append(visited, it.Value())
	}
	//
	assert.Equal(t, []foo{bar, baz, fooz}, visited)
}

func Test_Iterator_14(t *testing.T) {
	it := Begin[foo]()
	// Exhaust then compare with end
	for it.HasNext() {
		it.Next()
	}
	//
	assert.True(t, it.Equal(End[foo]()))
}

func Test_Iterator_15(t *testing.T) {
	assert.Violates(t, func() { End[foo]().Value() })
	assert.Violates(t, func() { At(spacedCount + 4).Value() })
	assert.Violates(t, func() { Begin[foo]().WithTerminal(baz).End().Value() })
}

func Test_Iterator_16(t *testing.T) {
	it := Begin[foo]()
	assert.Equal(t, fooz, it.Nth(2))
	assert.False(t, it.HasNext())
	//
	it = Begin[foo]()
	index, ok := it.Find(func(f foo) bool { return f == baz })
	assert.True(t, ok)
	assert.Equal(t, uint(1), index)
	assert.Equal(t, fooz, it.Value())
}

func Test_Iterator_17(t *testing.T) {
	it := Begin[foo]()
	clone := it.Clone()
	clone.Next()
	// Original untouched
	assert.Equal(t, uint(3), it.Count())
	assert.Equal(t, uint(2), clone.Count())
}

func Test_Iterator_18(t *testing.T) {
	var (
		it       = Begin[foo]()
		visited  []foo
		iterator iter.Iterator[foo] = &it
	)
	// Usable through the generic iterator interface
	for x := range iter.Seq(iterator) {
		visited = append(visited, x)
	}
	//
	assert.Equal(t, []foo{bar, baz, fooz}, visited)
	assert.True(t, it.Equal(it.End()))
}

func Test_Values_01(t *testing.T) {
	var visited []foo
	//
	seq := Values[foo]()
	// Sequence can be reused
	for range 2 {
		visited = visited[:0]
		for x := range seq {
			visited = append(visited, x)
		}
	}
	//
	assert.Equal(t, []foo{bar, baz, fooz}, visited)
}

func Test_Values_02(t *testing.T) {
	var visited []spaced
	//
	for x := range Values[spaced]() {
		if x == spacedC {
			break
		}

		visited = append(visited, x)
	}
	//
	assert.Equal(t, []spaced{spacedA, spacedB}, visited)
}

func Test_Valid_01(t *testing.T) {
	assert.True(t, Valid(bar))
	assert.True(t, Valid(fooz))
	assert.False(t, Valid(fooCount))
	assert.True(t, Valid(spacedB))
	assert.False(t, Valid(spaced(5)))
	assert.False(t, Valid(spaced(-4)))
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check an iterator yields exactly the expected constants, in several
// different ways.
func checkValues[E Sequential[E]](t *testing.T, it Iterator[E], expected []E) {
	t.Helper()
	// Count does not modify
	assert.Equal(t, uint(len(expected)), it.Count())
	// Collect from a copy
	clone := it
	assert.Equal(t, expected, clone.Collect())
	// Range over all
	visited := make([]E, 0)
	for x := range it.All() {
		visited = append(visited, x)
	}
	//
	assert.Equal(t, expected, visited)
	// Explicit loop, never yielding the terminal
	for i := 0; i < len(expected); i++ {
		assert.True(t, it.HasNext())
		assert.Equal(t, expected[i], it.Next())
	}
	//
	assert.False(t, it.HasNext())
	assert.False(t, it.Position() < it.Terminal())
}
