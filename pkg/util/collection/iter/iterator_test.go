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

import (
	"testing"
)

func Test_SliceIterator_01(t *testing.T) {
	checkIterator(t, NewSliceIterator([]uint{}), []uint{})
}

func Test_SliceIterator_02(t *testing.T) {
	checkIterator(t, NewSliceIterator([]uint{7}), []uint{7})
}

func Test_SliceIterator_03(t *testing.T) {
	checkIterator(t, NewSliceIterator([]uint{1, 2, 3}), []uint{1, 2, 3})
}

func Test_SliceIterator_04(t *testing.T) {
	checkIterator(t, NewReverseSliceIterator([]uint{}), []uint{})
}

func Test_SliceIterator_05(t *testing.T) {
	checkIterator(t, NewReverseSliceIterator([]uint{1, 2, 3}), []uint{3, 2, 1})
}

func Test_SliceIterator_06(t *testing.T) {
	items := []string{"a", "b", "c"}
	it := NewSliceIterator(items)
	// Cursor aliases the slice
	items[2] = "z"
	//
	checkIterator(t, it, []string{"a", "b", "z"})
}

func Test_SliceIterator_07(t *testing.T) {
	it := NewSliceIterator([]uint{1, 2, 3, 4})
	it.Next()
	// Clone is independent of the original
	clone := it.Clone()
	clone.Next()
	//
	if it.Count() != 3 || clone.Count() != 2 {
		t.Errorf("expected counts 3 and 2, got %d and %d", it.Count(), clone.Count())
	}
}

func Test_SliceIterator_08(t *testing.T) {
	it := NewReverseSliceIterator([]uint{1, 2, 3, 4})
	//
	if n := it.Nth(1); n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	//
	checkIterator(t, it, []uint{2, 1})
}

func Test_SliceIterator_09(t *testing.T) {
	it := NewSliceIterator([]uint{5, 6, 7})
	//
	if index, ok := it.Find(func(x uint) bool { return x == 6 }); !ok || index != 1 {
		t.Errorf("expected index 1, got %d (%t)", index, ok)
	}
	//
	if _, ok := it.Find(func(x uint) bool { return x == 5 }); ok {
		t.Errorf("unexpected match after cursor")
	}
}

func Test_Seq_01(t *testing.T) {
	var items []uint
	//
	it := NewSliceIterator([]uint{1, 2, 3, 4})
	for x := range Seq[uint](it) {
		if x == 3 {
			break
		}

		items = append(items, x)
	}
	//
	if !arrayEquals(items, []uint{1, 2}) {
		t.Errorf("expected [1 2], got %v", items)
	}
	// Remaining items left in place
	checkIterator(t, it, []uint{4})
}

func Test_Nth_01(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	//
	Nth[uint](NewSliceIterator([]uint{1}), 1)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkIterator[T comparable](t *testing.T, iter Iterator[T], expected []T) {
	if iter.Count() != uint(len(expected)) {
		t.Errorf("expected %d elements, got %d", len(expected), iter.Count())
	}
	// Collect from clone leaving original untouched
	if items := iter.Clone().Collect(); !arrayEquals(items, expected) {
		t.Errorf("expected %v, got %v", expected, items)
	}
	//
	for i := 0; i < len(expected); i++ {
		if ith := iter.Next(); ith != expected[i] {
			t.Errorf("expected %v, got %v", expected[i], ith)
		}
	}
	// Sanity check lengths match
	if iter.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}

func arrayEquals[T comparable](lhs []T, rhs []T) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	//
	return true
}
