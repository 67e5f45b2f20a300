// Copyright 2025 The Tern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adt

import "strings"

// Kind reports the type of value represented by a Value, as a bitset so
// that unions of kinds can be expressed.
type Kind uint16

const (
	NullKind Kind = 1 << iota
	BoolKind
	NaturalKind
	IntegerKind
	DoubleKind
	StringKind
	ListKind
	RecordKind
	AltKind
	FuncKind

	// NeutralKind marks stuck terms: free variables and applications,
	// selections, merges, conditionals, and operators that could not
	// reduce.
	NeutralKind

	NumberKind = NaturalKind | IntegerKind | DoubleKind

	// ConcreteKind is the set of kinds that have a data representation.
	ConcreteKind = NullKind | BoolKind | NumberKind | StringKind |
		ListKind | RecordKind
)

var kindStrings = map[Kind]string{
	NullKind:    "null",
	BoolKind:    "bool",
	NaturalKind: "natural",
	IntegerKind: "integer",
	DoubleKind:  "double",
	StringKind:  "string",
	ListKind:    "list",
	RecordKind:  "record",
	AltKind:     "alternative",
	FuncKind:    "function",
	NeutralKind: "neutral",
}

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for bit := Kind(1); bit <= NeutralKind; bit <<= 1 {
		if k&bit != 0 {
			parts = append(parts, kindStrings[bit])
		}
	}
	return strings.Join(parts, "|")
}

func (x *Null) Kind() Kind        { return NullKind }
func (x *Bool) Kind() Kind        { return BoolKind }
func (x *Natural) Kind() Kind     { return NaturalKind }
func (x *Integer) Kind() Kind     { return IntegerKind }
func (x *Double) Kind() Kind      { return DoubleKind }
func (x *String) Kind() Kind      { return StringKind }
func (x *Builtin) Kind() Kind     { return FuncKind }
func (x *Alternative) Kind() Kind { return AltKind }
func (x *Var) Kind() Kind         { return NeutralKind }
func (x *Closure) Kind() Kind     { return FuncKind }
func (x *App) Kind() Kind         { return NeutralKind }
func (x *List) Kind() Kind        { return ListKind }
func (x *Record) Kind() Kind      { return RecordKind }
func (x *Sel) Kind() Kind         { return NeutralKind }
func (x *Merge) Kind() Kind       { return FuncKind }
func (x *If) Kind() Kind          { return NeutralKind }
func (x *BinOp) Kind() Kind       { return NeutralKind }

// IsConcrete reports whether v reduced to plain data: scalars, and lists
// and records thereof. Functions, alternatives, and stuck terms are not
// concrete.
func IsConcrete(v Value) bool {
	switch v := v.(type) {
	case *List:
		for _, e := range v.Elems {
			if !IsConcrete(e) {
				return false
			}
		}
		return true
	case *Record:
		for _, a := range v.Arcs {
			if !IsConcrete(a.Value) {
				return false
			}
		}
		return true
	}
	return v.Kind()&ConcreteKind != 0
}
