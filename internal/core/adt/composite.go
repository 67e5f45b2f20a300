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

import "ternlang.org/go/tern/token"

// An Environment is an ordered stack of name-to-value bindings, newest
// first, linked through Up. A nil *Environment is the empty environment.
//
// Environments are immutable snapshots: Bind allocates a new head and
// shares the tail, so closures capturing an environment are unaffected by
// later extensions.
type Environment struct {
	Up    *Environment
	Label string
	Value Value
}

// Bind returns e extended with a binding of label to v. The new binding
// shadows any existing binding of the same label.
func (e *Environment) Bind(label string, v Value) *Environment {
	return &Environment{Up: e, Label: label, Value: v}
}

// NewEnvironment builds an environment from ordered (label, value) pairs,
// binding left to right, so the last pair is the innermost binding.
func NewEnvironment(pairs ...Binding) *Environment {
	var e *Environment
	for _, p := range pairs {
		e = e.Bind(p.Label, p.Value)
	}
	return e
}

// A Binding is a single (label, value) pair for NewEnvironment.
type Binding struct {
	Label string
	Value Value
}

// Scalars. These nodes are both Expr and Value: evaluation maps them to
// themselves, and readback re-emits them with a unit location.

// Null represents the null scalar.
type Null struct {
	Src token.Pos
}

// Bool is a boolean scalar.
type Bool struct {
	Src token.Pos
	B   bool
}

// Natural is an unsigned 64-bit numeric scalar.
type Natural struct {
	Src token.Pos
	N   uint64
}

// Integer is a signed 64-bit numeric scalar.
type Integer struct {
	Src token.Pos
	I   int64
}

// Double is a 64-bit floating point scalar.
type Double struct {
	Src token.Pos
	F   float64
}

// String is a text scalar.
type String struct {
	Src token.Pos
	Str string
}

// A Builtin names one of the builtin functions. It reduces only when its
// application spine is saturated with operands of the right shape.
type Builtin struct {
	Src token.Pos
	ID  BuiltinID
}

// An Alternative is a tag in an anonymous sum type. Applied to a payload it
// forms a tagged value, consumed by an applied Merge.
type Alternative struct {
	Src  token.Pos
	Name string
}

func (x *Null) Source() token.Pos        { return x.Src }
func (x *Bool) Source() token.Pos        { return x.Src }
func (x *Natural) Source() token.Pos     { return x.Src }
func (x *Integer) Source() token.Pos     { return x.Src }
func (x *Double) Source() token.Pos      { return x.Src }
func (x *String) Source() token.Pos      { return x.Src }
func (x *Builtin) Source() token.Pos     { return x.Src }
func (x *Alternative) Source() token.Pos { return x.Src }

// Value composites.

// A Closure is a Lambda bundled with the environment captured at its
// definition site. The body is evaluated only upon instantiation.
type Closure struct {
	Label string
	Env   *Environment
	Body  Expr
}

func (x *Closure) Source() token.Pos { return token.NoPos }

// An App is a stuck application: neither β- nor δ-reduction applied.
type App struct {
	Fun Value
	Arg Value
}

func (x *App) Source() token.Pos { return token.NoPos }

// A List is an evaluated list.
type List struct {
	Elems []Value
}

func (x *List) Source() token.Pos { return token.NoPos }

// An Arc is a single labeled value of a Record.
type Arc struct {
	Label string
	Value Value
}

// A Record is an evaluated record. Arcs preserve insertion order and may
// contain duplicate labels; selection returns the first match.
type Record struct {
	Arcs []Arc
}

func (x *Record) Source() token.Pos { return token.NoPos }

// Lookup returns the value of the first arc with the given label.
func (x *Record) Lookup(label string) (Value, bool) {
	for _, a := range x.Arcs {
		if a.Label == label {
			return a.Value, true
		}
	}
	return nil, false
}

// A Sel is a stuck field selection: the operand is not a record containing
// the field.
type Sel struct {
	X   Value
	Sel string
}

func (x *Sel) Source() token.Pos { return token.NoPos }

// A Merge is an evaluated sum eliminator waiting to be applied to a tagged
// value.
type Merge struct {
	X Value
}

func (x *Merge) Source() token.Pos { return token.NoPos }

// An If is a stuck conditional: the condition did not reduce to a boolean.
type If struct {
	Cond Value
	Then Value
	Else Value
}

func (x *If) Source() token.Pos { return token.NoPos }

// A BinOp is a stuck operator application: no rewrite rule fired.
type BinOp struct {
	Op Op
	X  Value
	Y  Value
}

func (x *BinOp) Source() token.Pos { return token.NoPos }
