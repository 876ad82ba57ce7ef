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
	"os"

	"github.com/consensys/go-enum/pkg/gen"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] definition_file(s)",
	Short: "check enumeration definition files are well-formed.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		failed := false
		//
		for _, filename := range args {
			if err := checkDefinition(filename); err != nil {
				fmt.Printf("%s: %s\n", filename, err)
				failed = true
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func checkDefinition(filename string) error {
	def, err := gen.Load(filename)
	if err != nil {
		return err
	}
	//
	return def.Validate()
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
