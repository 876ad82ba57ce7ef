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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-enum/pkg/enumarray"
	"github.com/consensys/go-enum/pkg/gen"
	"github.com/consensys/go-enum/pkg/util/termio"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] definition_file",
	Short: "show the constants of each enumeration in a definition file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		styled := termio.IsTerminal(os.Stdout) && !GetFlag(cmd, "plain")
		//
		if err := showDefinition(os.Stdout, args[0], styled); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

// Columns of the table printed for an enumeration.
type column uint8

const (
	positionColumn column = iota
	constantColumn
	valueColumn
	columnCount
)

func (column) Count() column { return columnCount }

var columnTitles = enumarray.MustNew[column]("#", "CONSTANT", "VALUE")

func showDefinition(out io.Writer, filename string, styled bool) error {
	def, err := gen.Load(filename)
	if err != nil {
		return err
	} else if err = def.Validate(); err != nil {
		return err
	}
	//
	for i, e := range def.Enums {
		if i != 0 {
			fmt.Fprintln(out)
		}
		//
		fmt.Fprintf(out, "%s (%s, terminal %s = %d)\n", e.Name, e.UnderlyingType(), e.TerminalName(),
			e.TerminalValue())
		//
		enumTable(&e, styled).Print(out)
	}
	//
	return nil
}

func enumTable(e *gen.Enum, styled bool) *termio.TablePrinter[column] {
	table := termio.NewTablePrinter[column]()
	header := table.AddRow(columnTitles)
	//
	table.SetRowEscape(header, termio.BoldAnsiEscape())
	table.AnsiEscapes(styled)
	//
	for i, c := range e.Constants() {
		row := enumarray.Make[column, string]()
		row.Put(positionColumn, fmt.Sprintf("%d", i))
		row.Put(constantColumn, c.Name)
		row.Put(valueColumn, fmt.Sprintf("%d", c.Value))
		table.AddRow(row)
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("plain", false, "disable terminal styling.")
}
