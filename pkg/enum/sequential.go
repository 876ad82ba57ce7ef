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

// Package enum provides iteration over sequential enumerations.  A sequential
// enumeration is a defined integer type whose named constants start at 0 and
// are equally spaced (by default one apart), followed by a terminal constant
// (conventionally Count) which is one step past the last named constant.  For
// example:
//
//	type Foo uint8
//
//	const (
//		Bar Foo = iota
//		Baz
//		Fooz
//		FooCount
//	)
//
//	func (Foo) Count() Foo { return FooCount }
//
// Then, enum.Values[Foo]() visits Bar, Baz and Fooz (but never FooCount).
// None of this is checked: it is a convention the enumeration must follow.
package enum

import "golang.org/x/exp/constraints"

// Sequential is satisfied by integer enumerations which identify their own
// terminal constant.  The Count method must ignore its receiver, since it is
// invoked on the zero value.
type Sequential[E any] interface {
	constraints.Integer
	// Count returns the terminal constant of the enumeration.
	Count() E
}

// Stepped can be implemented by an enumeration whose constants are spaced
// more than one apart.  Like Count, Step is invoked on the zero value.
type Stepped[E any] interface {
	// Step returns the distance between consecutive constants.
	Step() E
}

// Terminal returns the terminal constant of a given enumeration.
func Terminal[E Sequential[E]]() E {
	var e E
	return e.Count()
}

// Step returns the distance between consecutive constants of a given
// enumeration, which is one unless it implements Stepped.
func Step[E Sequential[E]]() E {
	var e E
	//
	if s, ok := any(e).(Stepped[E]); ok {
		return s.Step()
	}
	//
	return 1
}

// Len returns the number of constants in a given enumeration, excluding the
// terminal constant.
func Len[E Sequential[E]]() uint {
	return count(0, Terminal[E](), Step[E]())
}

// Valid checks whether a given value is a constant of its enumeration.  That
// is, it lies below the terminal constant and is aligned to the step.  This is
// never checked implicitly, but is useful for validating external input.
func Valid[E Sequential[E]](value E) bool {
	return value >= 0 && value < Terminal[E]() && value%Step[E]() == 0
}

// Number of positions reached when stepping from start up to (but excluding)
// last.
func count[E constraints.Integer](start, last, step E) uint {
	if start >= last || step <= 0 {
		return 0
	}
	//
	return uint((last-start-1)/step) + 1
}
