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

//go:build enum_nostd

package contract_test

import (
	"testing"

	"github.com/consensys/go-enum/pkg/util/assert"
	"github.com/consensys/go-enum/pkg/util/contract"
)

func Test_Report_01(t *testing.T) {
	// Arguments are never formatted
	v := assert.Violates(t, func() { contract.Fail("index %d out-of-bounds", 3) })
	assert.Equal(t, "index %d out-of-bounds", v.Message)
}
