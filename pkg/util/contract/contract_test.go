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
package contract_test

import (
	"strings"
	"testing"

	"github.com/consensys/go-enum/pkg/util/assert"
	"github.com/consensys/go-enum/pkg/util/contract"
)

func Test_Contract_01(t *testing.T) {
	// Holding precondition does nothing
	contract.Require(true, "never reported")
}

func Test_Contract_02(t *testing.T) {
	v := assert.Violates(t, func() { contract.Require(false, "index %d out-of-bounds", 3) })
	assert.True(t, strings.Contains(v.Message, "out-of-bounds"))
	assert.True(t, strings.HasPrefix(v.Error(), "contract violation: "))
}

func Test_Contract_03(t *testing.T) {
	var seen []string
	// Handler which records, then panics with its own value.
	prev := contract.SetHandler(func(v *contract.Violation) {
		seen = append(seen, v.Message)
		panic("handled")
	})
	defer contract.SetHandler(prev)
	//
	r := assert.Panics(t, func() { contract.Fail("broken") })
	assert.Equal(t, "handled", r)
	assert.Equal(t, []string{"broken"}, seen)
}

func Test_Contract_04(t *testing.T) {
	// A handler which returns still cannot continue execution
	prev := contract.SetHandler(func(v *contract.Violation) {})
	defer contract.SetHandler(prev)
	//
	assert.Violates(t, func() { contract.Require(false, "returned") })
}

func Test_Contract_05(t *testing.T) {
	// Nil restores default handling
	contract.SetHandler(func(v *contract.Violation) { panic("custom") })
	contract.SetHandler(nil)
	//
	assert.Violates(t, func() { contract.Fail("default") })
}
