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
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"math"
	"math/bits"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultType is the underlying type of an enumeration which does not specify
// one.
const DefaultType = "int"

// DefaultTerminal is the suffix of the terminal constant of an enumeration
// which does not specify one.
const DefaultTerminal = "Count"

// Definition describes a set of enumerations to be generated into a single Go
// source file.
type Definition struct {
	// Package clause of the generated file.
	Package string `yaml:"package" validate:"required,goident"`
	// Enumerations to generate, in order.
	Enums []Enum `yaml:"enums" validate:"required,min=1,dive"`
}

// Enum describes a single sequential enumeration.
type Enum struct {
	// Name of the enumeration type.
	Name string `yaml:"name" validate:"required,goident"`
	// Underlying integer type.
	Type string `yaml:"type" validate:"omitempty,oneof=int int8 int16 int32 int64 uint uint8 uint16 uint32 uint64"`
	// Distance between consecutive constants.  Zero means one.
	Step uint64 `yaml:"step"`
	// Suffix of the terminal constant's name.
	Terminal string `yaml:"terminal" validate:"omitempty,goident"`
	// Whether constant names are prefixed with the enumeration name.
	Prefix bool `yaml:"prefix"`
	// Names of the constants, in declaration order.
	Values []string `yaml:"values" validate:"required,min=1,unique,dive,goident"`
	// Optional documentation for the type.
	Doc string `yaml:"doc"`
}

// Constant is a single named constant of a generated enumeration.
type Constant struct {
	// Identifier of the constant in the generated source.
	Name string
	// Label returned by its String method.
	Label string
	// Value of the constant.
	Value uint64
}

// Load reads a definition from a YAML file.
func Load(filename string) (*Definition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	//
	return Parse(data)
}

// Parse a definition from YAML.  Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	//
	return &def, nil
}

// Validate checks this definition is well-formed, reporting every problem
// found rather than just the first.
func (p *Definition) Validate() error {
	var errs []error
	//
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		//
		if !errors.As(err, &verrs) {
			return err
		}
		//
		for _, e := range verrs {
			errs = append(errs, fmt.Errorf("%s: failed %q check (value %v)", e.Namespace(), e.Tag(), e.Value()))
		}
		//
		return errors.Join(errs...)
	}
	// Identifiers must be unique across the whole file.
	declared := make(map[string]string)
	//
	for _, e := range p.Enums {
		errs = append(errs, declare(declared, e.Name, e.Name))
		errs = append(errs, declare(declared, e.TerminalName(), e.Name))
		//
		for _, c := range e.Constants() {
			errs = append(errs, declare(declared, c.Name, e.Name))
		}
		//
		limit := maxValue(e.UnderlyingType())
		//
		if terminal, ok := e.terminalValue(); !ok || e.Stride() > limit || terminal > limit {
			errs = append(errs, fmt.Errorf("%s: values exceed range of %s", e.Name, e.UnderlyingType()))
		}
	}
	//
	return errors.Join(errs...)
}

// UnderlyingType returns the underlying integer type of this enumeration.
func (p *Enum) UnderlyingType() string {
	if p.Type == "" {
		return DefaultType
	}
	//
	return p.Type
}

// Stride returns the distance between consecutive constants.
func (p *Enum) Stride() uint64 {
	if p.Step == 0 {
		return 1
	}
	//
	return p.Step
}

// TerminalName returns the identifier of the terminal constant.
func (p *Enum) TerminalName() string {
	if p.Terminal == "" {
		return p.Name + DefaultTerminal
	}
	//
	return p.Name + p.Terminal
}

// TerminalValue returns the value of the terminal constant, which is one step
// past the last named constant.  This is only meaningful for a valid
// enumeration, whose terminal value cannot overflow.
func (p *Enum) TerminalValue() uint64 {
	value, _ := p.terminalValue()
	//
	return value
}

// Determine the terminal value, or false if it does not fit in 64 bits.
func (p *Enum) terminalValue() (uint64, bool) {
	hi, lo := bits.Mul64(uint64(len(p.Values)), p.Stride())
	//
	return lo, hi == 0
}

// Constants returns the named constants of this enumeration, in declaration
// order.
func (p *Enum) Constants() []Constant {
	constants := make([]Constant, len(p.Values))
	//
	for i, v := range p.Values {
		name := v
		if p.Prefix {
			name = p.Name + v
		}
		//
		constants[i] = Constant{name, v, uint64(i) * p.Stride()}
	}
	//
	return constants
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Go identifiers, excluding keywords.
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	}); err != nil {
		panic(err.Error())
	}
	//
	return v
}

func declare(declared map[string]string, name string, owner string) error {
	if prev, ok := declared[name]; ok {
		return fmt.Errorf("%s: identifier %s already declared by %s", owner, name, prev)
	}
	//
	declared[name] = owner
	//
	return nil
}

// Largest value representable by an underlying type, assuming int and uint
// may be only 32 bits wide.
func maxValue(typename string) uint64 {
	switch typename {
	case "int8":
		return math.MaxInt8
	case "uint8":
		return math.MaxUint8
	case "int16":
		return math.MaxInt16
	case "uint16":
		return math.MaxUint16
	case "int", "int32":
		return math.MaxInt32
	case "uint", "uint32":
		return math.MaxUint32
	case "int64":
		return math.MaxInt64
	default:
		return math.MaxUint64
	}
}
