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
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-enum/pkg/enum"
	"github.com/consensys/go-enum/pkg/enumarray"
)

// TablePrinter is useful for printing tables to the terminal.  Columns are
// identified by a sequential enumeration C, such that every row holds exactly
// one cell per column.
type TablePrinter[C enum.Sequential[C]] struct {
	widths  enumarray.Array[C, uint]
	limits  enumarray.Array[C, uint]
	rows    []enumarray.Array[C, string]
	escapes []string
	// Separator written between adjacent columns.
	separator string
	// Determines whether or not row escapes are emitted.
	ansiEscapes bool
}

// NewTablePrinter constructs a new (empty) table.
func NewTablePrinter[C enum.Sequential[C]]() *TablePrinter[C] {
	return &TablePrinter[C]{
		widths:    enumarray.Make[C, uint](),
		limits:    enumarray.Make[C, uint](),
		separator: "  ",
	}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter[C]) AddRow(row enumarray.Array[C, string]) uint {
	for col, cell := range row.All() {
		*p.widths.RefAt(col) = max(p.widths.At(col), uint(len(cell)))
	}
	//
	p.rows = append(p.rows, row)
	p.escapes = append(p.escapes, "")
	//
	return uint(len(p.rows) - 1)
}

// Height returns the number of rows in this table.
func (p *TablePrinter[C]) Height() uint {
	return uint(len(p.rows))
}

// Get the contents of a given cell.
func (p *TablePrinter[C]) Get(col C, row uint) string {
	return p.rows[row].At(col)
}

// SetRowEscape sets the escape wrapping a given row when printed.
func (p *TablePrinter[C]) SetRowEscape(row uint, escape AnsiEscape) {
	p.escapes[row] = escape.Build()
}

// SetMaxWidth limits the width of a given column, such that longer cells are
// truncated.  A limit of zero means the column is unlimited.
func (p *TablePrinter[C]) SetMaxWidth(col C, width uint) {
	p.limits.Put(col, width)
}

// SetSeparator sets the string written between adjacent columns.
func (p *TablePrinter[C]) SetSeparator(separator string) {
	p.separator = separator
}

// AnsiEscapes enables or disables the use of ANSI escapes.
func (p *TablePrinter[C]) AnsiEscapes(enable bool) {
	p.ansiEscapes = enable
}

// Print the table to a given writer.
func (p *TablePrinter[C]) Print(out io.Writer) {
	for i, row := range p.rows {
		line := p.format(row)
		//
		if p.ansiEscapes && p.escapes[i] != "" {
			line = p.escapes[i] + line + ResetAnsiEscape().Build()
		}
		//
		fmt.Fprintln(out, line)
	}
}

func (p *TablePrinter[C]) format(row enumarray.Array[C, string]) string {
	var builder strings.Builder
	//
	for col, cell := range row.All() {
		width := p.width(col)
		//
		if col != 0 {
			builder.WriteString(p.separator)
		}
		//
		if limit := p.limits.At(col); limit != 0 && uint(len(cell)) > limit {
			cell = truncate(cell, limit)
		}
		//
		builder.WriteString(fmt.Sprintf("%-*s", width, cell))
	}
	//
	return strings.TrimRight(builder.String(), " ")
}

// Width of a given column, after any limit is applied.
func (p *TablePrinter[C]) width(col C) int {
	if limit := p.limits.At(col); limit != 0 {
		return int(min(limit, p.widths.At(col)))
	}
	//
	return int(p.widths.At(col))
}

func truncate(cell string, width uint) string {
	if width <= 2 {
		return cell[:width]
	}
	//
	return cell[:width-2] + ".."
}
