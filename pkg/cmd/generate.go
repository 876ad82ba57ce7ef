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
	"path/filepath"

	"github.com/consensys/go-enum/pkg/gen"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] definition_file",
	Short: "generate Go source for a set of sequential enumerations.",
	Long: `Generate Go source for the enumerations described in a YAML definition file.
	Unless an output file is given, this is written alongside the definition file
	as <package>_enum.go.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		output, err := generateEnums(args[0], GetString(cmd, "output"), generateOptions())
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		//
		log.Info(fmt.Sprintf("wrote %s", output))
	},
}

// Generate the enumerations of a given definition file, returning the name of
// the file written.
func generateEnums(filename string, output string, options gen.Options) (string, error) {
	def, err := gen.Load(filename)
	if err != nil {
		return "", err
	}
	// Determine output file
	if output == "" {
		output = filepath.Join(filepath.Dir(filename), def.Package+"_enum.go")
	}
	//
	log.Debug(fmt.Sprintf("read %d enumeration(s) from %s", len(def.Enums), filename))
	//
	return output, gen.Generate(def, output, options)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "specify output file.")
}
