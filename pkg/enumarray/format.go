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

//go:build !enum_nostd

package enumarray

import (
	"fmt"
	"strings"
)

// String renders this array for debugging.  Elements are labelled with their
// constants when the enumeration implements fmt.Stringer.
func (p Array[E, T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for key, value := range p.All() {
		if key != 0 {
			builder.WriteString(" ")
		}
		//
		if s, ok := any(key).(fmt.Stringer); ok {
			builder.WriteString(fmt.Sprintf("%s:%v", s.String(), value))
		} else {
			builder.WriteString(fmt.Sprintf("%v", value))
		}
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

func sizeMismatch(expected uint64, actual int) error {
	return fmt.Errorf("%w (expected %d, got %d)", ErrSizeMismatch, expected, actual)
}
