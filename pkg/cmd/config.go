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
	"strings"

	"github.com/consensys/go-enum/pkg/gen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables which configure the tool.
// For example, ENUMGEN_COPYRIGHT overrides the default of --copyright.
const EnvPrefix = "ENUMGEN"

// Settings shared by all commands.  An explicitly given flag takes precedence
// over the environment, which takes precedence over the flag's default.
var config = viper.New()

func bindConfig(flags *pflag.FlagSet) {
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	//
	if err := config.BindPFlags(flags); err != nil {
		panic(err.Error())
	}
}

// Options for generated files, as configured.
func generateOptions() gen.Options {
	options := gen.DefaultOptions()
	options.CopyrightHolder = config.GetString("copyright")
	options.CopyrightYear = config.GetInt("year")
	//
	return options
}

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
