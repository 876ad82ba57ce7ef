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
package termio

import (
	"strconv"
	"strings"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint8

// Standard terminal colours, in escape code order.
const (
	TermBlack Colour = iota
	TermRed
	TermGreen
	TermYellow
	TermBlue
	TermMagenta
	TermCyan
	TermWhite
)

// AnsiEscape represents an ANSI "select graphic rendition" escape, built up from
// one or more parameters.
type AnsiEscape struct {
	params []string
}

// ResetAnsiEscape constructs an escape which resets all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// BoldAnsiEscape constructs an escape which emboldens text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// FgColour adds a foreground colour to this escape.
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(30 + uint(col))
}

// BgColour adds a background colour to this escape.
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(40 + uint(col))
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return "\033[" + strings.Join(p.params, ";") + "m"
}

func (p AnsiEscape) with(param uint) AnsiEscape {
	params := append(append([]string(nil), p.params...), strconv.FormatUint(uint64(param), 10))
	return AnsiEscape{params}
}
