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
	"strings"
	"testing"

	"github.com/consensys/go-enum/pkg/util/assert"
)

func Test_Format_01(t *testing.T) {
	assert.Equal(t, "[Bar:Bar Baz:Baz Fooz:Fooz]", fooNames.String())
	assert.Equal(t, "[-1 1]", MustNew[signed](-1, 1).String())
}

func Test_Format_02(t *testing.T) {
	_, err := New[foo]("Bar", "Baz")
	// Counts are reported alongside the sentinel
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.True(t, strings.Contains(err.Error(), "(expected 3, got 2)"), err.Error())
}
