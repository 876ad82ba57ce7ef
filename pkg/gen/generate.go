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
package gen

import (
	"fmt"
	"strings"

	"github.com/consensys/bavard"
	log "github.com/sirupsen/logrus"
)

// Options controls the boilerplate of generated files.
type Options struct {
	// Holder named in the license header.
	CopyrightHolder string
	// Year named in the license header.
	CopyrightYear int
	// Tool named in the "generated by" banner.
	GeneratedBy string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{"Consensys Software Inc.", 2025, "enumgen"}
}

// Generate writes the Go source for every enumeration in a given definition
// into a single file.  The definition is validated first.
func Generate(def *Definition, output string, options Options) error {
	if err := def.Validate(); err != nil {
		return err
	}
	//
	data := newFileData(def)
	//
	log.Debug(fmt.Sprintf("generating %d enumeration(s) into %s", len(data.Enums), output))
	//
	err := bavard.GenerateFromString(output, []string{enumTemplate}, data,
		bavard.Apache2(options.CopyrightHolder, options.CopyrightYear),
		bavard.Package(def.Package),
		bavard.GeneratedBy(options.GeneratedBy),
		bavard.Format(true),
	)
	//
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", output, err)
	}
	//
	return nil
}

// Template input for a whole file.
type fileData struct {
	Enums []enumData
	// Whether any enumeration has a name table.
	NeedArray bool
}

// Template input for a single enumeration.
type enumData struct {
	Name          string
	Type          string
	Doc           string
	Step          uint64
	Terminal      string
	TerminalValue uint64
	Constants     []Constant
	// Name tables are only possible when positions coincide with values.
	Unit bool
	// Whether out-of-range values print as unsigned integers.
	Unsigned bool
	// Identifier of the name table.
	Names string
}

func newFileData(def *Definition) fileData {
	var data fileData
	//
	for _, e := range def.Enums {
		doc := e.Doc
		if doc == "" {
			doc = fmt.Sprintf("%s is a sequential enumeration.", e.Name)
		}
		//
		ed := enumData{
			Name:          e.Name,
			Type:          e.UnderlyingType(),
			Doc:           doc,
			Step:          e.Stride(),
			Terminal:      e.TerminalName(),
			TerminalValue: e.TerminalValue(),
			Constants:     e.Constants(),
			Unit:          e.Stride() == 1,
			Unsigned:      strings.HasPrefix(e.UnderlyingType(), "uint"),
			Names:         fmt.Sprintf("_%s_names", e.Name),
		}
		//
		data.NeedArray = data.NeedArray || ed.Unit
		data.Enums = append(data.Enums, ed)
	}
	//
	return data
}

const enumTemplate = `
{{- define "format"}}
{{- if .Unsigned}}strconv.FormatUint(uint64(c), 10){{else}}strconv.FormatInt(int64(c), 10){{end}}
{{- end}}
{{- if .NeedArray}}
import (
	"strconv"

	"github.com/consensys/go-enum/pkg/enumarray"
)
{{- else}}
import "strconv"
{{- end}}
{{range $e := .Enums}}
// {{$e.Doc}}
type {{$e.Name}} {{$e.Type}}

const (
{{- range $c := $e.Constants}}
	{{$c.Name}} {{$e.Name}} = {{$c.Value}}
{{- end}}
	{{$e.Terminal}} {{$e.Name}} = {{$e.TerminalValue}}
)

// Count returns the terminal constant of {{$e.Name}}.
func ({{$e.Name}}) Count() {{$e.Name}} { return {{$e.Terminal}} }
{{if not $e.Unit}}
// Step returns the distance between consecutive constants of {{$e.Name}}.
func ({{$e.Name}}) Step() {{$e.Name}} { return {{$e.Step}} }
{{end}}
{{- if $e.Unit}}
var {{$e.Names}} = enumarray.MustNew[{{$e.Name}}]({{range $i, $c := $e.Constants}}{{if $i}}, {{end}}"{{$c.Label}}"{{end}})

// String returns the name of this constant.
func (c {{$e.Name}}) String() string {
	if uint64(c) < uint64({{$e.Terminal}}) {
		return {{$e.Names}}.At(c)
	}
	//
	return "{{$e.Name}}(" + {{template "format" $e}} + ")"
}
{{- else}}
// String returns the name of this constant.
func (c {{$e.Name}}) String() string {
	switch c {
{{- range $c := $e.Constants}}
	case {{$c.Name}}:
		return "{{$c.Label}}"
{{- end}}
	}
	//
	return "{{$e.Name}}(" + {{template "format" $e}} + ")"
}
{{- end}}
{{end}}
`
