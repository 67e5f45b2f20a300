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

import (
	"ternlang.org/go/internal/core/types"
	"ternlang.org/go/tern/token"
)

// A Var represents a variable occurrence.
//
// Two index conventions share this node. In surface expressions (input to
// Eval) the index is the non-negative occurrence selector: 0 refers to the
// innermost binding of Name, 1 to the next enclosing one, and so on. In
// values, free variables carry negative indices: a variable whose lookup
// escaped the environment with k bindings of the name still to skip is
// encoded as index -k-1. Quote converts the value convention back to the
// surface one arithmetically.
type Var struct {
	Src   token.Pos
	Name  string
	Index int
}

func (x *Var) Source() token.Pos { return x.Src }

// A Lambda represents an unevaluated function literal. Evaluation captures
// the current environment into a Closure without entering the body.
type Lambda struct {
	Src   token.Pos
	Label string // parameter name
	Body  Expr
}

func (x *Lambda) Source() token.Pos { return x.Src }

// An Apply represents an unevaluated application of Fun to Arg.
type Apply struct {
	Src token.Pos
	Fun Expr
	Arg Expr
}

func (x *Apply) Source() token.Pos { return x.Src }

// An Annotation ascribes a type to an expression. The type is erased during
// evaluation; it is inspected only by the type checker.
type Annotation struct {
	Src  token.Pos
	X    Expr
	Type types.Type
}

func (x *Annotation) Source() token.Pos { return x.Src }

// A LetBinding is a single binding of a Let. Type is nil when the binding
// carries no annotation.
type LetBinding struct {
	Label string
	Type  types.Type
	X     Expr
}

// A Let represents one or more sequential bindings followed by a body. A
// binding may refer to earlier bindings of the same Let, but not to later
// ones.
type Let struct {
	Src      token.Pos
	Bindings []LetBinding // len(Bindings) > 0
	Body     Expr
}

func (x *Let) Source() token.Pos { return x.Src }

// A ListLit represents an unevaluated list literal.
type ListLit struct {
	Src   token.Pos
	Elems []Expr
}

func (x *ListLit) Source() token.Pos { return x.Src }

// A FieldLit is a single field of a RecordLit.
type FieldLit struct {
	Label string
	X     Expr
}

// A RecordLit represents an unevaluated record literal. Duplicate labels
// are preserved in order; selection returns the first match.
type RecordLit struct {
	Src    token.Pos
	Fields []FieldLit
}

func (x *RecordLit) Source() token.Pos { return x.Src }

// A SelectorExpr represents a field selection X.Sel.
type SelectorExpr struct {
	Src token.Pos
	X   Expr
	Sel string
}

func (x *SelectorExpr) Source() token.Pos { return x.Src }

// A MergeExpr represents the sum eliminator "merge handlers". It reduces
// only when the resulting Merge value is applied to a tagged value.
type MergeExpr struct {
	Src token.Pos
	X   Expr
}

func (x *MergeExpr) Source() token.Pos { return x.Src }

// An IfExpr represents a conditional expression.
type IfExpr struct {
	Src  token.Pos
	Cond Expr
	Then Expr
	Else Expr
}

func (x *IfExpr) Source() token.Pos { return x.Src }

// A BinaryExpr represents X op Y for the operators of the language.
type BinaryExpr struct {
	Src token.Pos
	Op  Op
	X   Expr
	Y   Expr
}

func (x *BinaryExpr) Source() token.Pos { return x.Src }

// An Embed carries an externally produced value, such as the result of an
// import, into the surface expression. Import names the external source;
// Value is the pre-evaluated payload, which evaluation returns unchanged.
// Readback never produces an Embed.
type Embed struct {
	Src    token.Pos
	Import string
	Value  Value
}

func (x *Embed) Source() token.Pos { return x.Src }

// An Op identifies a binary operator.
type Op int

const (
	NoOp Op = iota
	AndOp
	OrOp
	PlusOp
	TimesOp
	AppendOp
)

var opStrings = [...]string{
	NoOp:     "??",
	AndOp:    "&&",
	OrOp:     "||",
	PlusOp:   "+",
	TimesOp:  "*",
	AppendOp: "++",
}

func (op Op) String() string { return opStrings[op] }

// A BuiltinID identifies one of the builtin functions.
type BuiltinID int

const (
	NoBuiltin BuiltinID = iota
	DoubleShow
	ListFold
	ListLength
	ListMap
	IntegerEven
	IntegerOdd
	NaturalFold
)

var builtinStrings = [...]string{
	NoBuiltin:   "??",
	DoubleShow:  "Double/show",
	ListFold:    "List/fold",
	ListLength:  "List/length",
	ListMap:     "List/map",
	IntegerEven: "Integer/even",
	IntegerOdd:  "Integer/odd",
	NaturalFold: "Natural/fold",
}

func (id BuiltinID) String() string { return builtinStrings[id] }

// ParseBuiltin returns the BuiltinID for a builtin name, or NoBuiltin if
// the name is not known.
func ParseBuiltin(name string) BuiltinID {
	for id, s := range builtinStrings {
		if s == name {
			return BuiltinID(id)
		}
	}
	return NoBuiltin
}

// node marker methods

func (*Var) node()          {}
func (*Lambda) node()       {}
func (*Apply) node()        {}
func (*Annotation) node()   {}
func (*Let) node()          {}
func (*ListLit) node()      {}
func (*RecordLit) node()    {}
func (*SelectorExpr) node() {}
func (*MergeExpr) node()    {}
func (*IfExpr) node()       {}
func (*BinaryExpr) node()   {}
func (*Embed) node()        {}
func (*Null) node()         {}
func (*Bool) node()         {}
func (*Natural) node()      {}
func (*Integer) node()      {}
func (*Double) node()       {}
func (*String) node()       {}
func (*Builtin) node()      {}
func (*Alternative) node()  {}
func (*Closure) node()      {}
func (*App) node()          {}
func (*List) node()         {}
func (*Record) node()       {}
func (*Sel) node()          {}
func (*Merge) node()        {}
func (*If) node()           {}
func (*BinOp) node()        {}
