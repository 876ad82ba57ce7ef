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

// Package contract provides the fail-fast precondition checks used by the
// enumeration helpers.  A failed check is a programmer error, never a
// recoverable condition.  Checks are enabled by default and are removed by
// the compiler when building with the "enum_noassert" tag.  Building with
// the "enum_nostd" tag keeps violation reporting free of fmt and logging, for
// embedding in restricted builds.
package contract

import "sync/atomic"

// Violation describes a failed precondition.  Default handling panics with a
// *Violation, so it can be recovered and inspected with errors.As.
type Violation struct {
	// Message describes which precondition failed.
	Message string
}

// Error implements the error interface.
func (p *Violation) Error() string {
	return "contract violation: " + p.Message
}

// Handler is invoked whenever a precondition fails.  A handler is expected not
// to return (e.g. panic, or exit the process).  Should it return anyway, the
// violation is raised as a panic regardless.
type Handler func(*Violation)

var handler atomic.Pointer[Handler]

// SetHandler installs a custom handler for contract violations, returning the
// previously installed one.  Passing nil restores the default handler.
func SetHandler(h Handler) Handler {
	var prev *Handler
	//
	if h == nil {
		prev = handler.Swap(nil)
	} else {
		prev = handler.Swap(&h)
	}
	//
	if prev == nil {
		return nil
	}
	//
	return *prev
}

// Require checks a precondition.  When checks are enabled and cond does not
// hold, a violation is built from the format string and arguments and passed
// to the installed handler.
func Require(cond bool, format string, args ...any) {
	if Enabled && !cond {
		Fail(format, args...)
	}
}

// Fail unconditionally reports a contract violation.
func Fail(format string, args ...any) {
	violation := &Violation{describe(format, args...)}
	//
	if h := handler.Load(); h != nil {
		(*h)(violation)
	} else {
		report(violation)
	}
	// Handler returned
	panic(violation)
}
