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

package contract

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

func describe(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	//
	return fmt.Sprintf(format, args...)
}

// Default handling: record the violation, then fail fast.
func report(violation *Violation) {
	log.WithField("violation", violation.Message).Debug("contract violated")
	panic(violation)
}
