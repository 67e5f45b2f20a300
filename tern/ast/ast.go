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

// Package ast declares the types used to represent parsed Tern syntax trees.
package ast

import (
	"ternlang.org/go/tern/token"
)

// A Node represents any node in the syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// An Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// A Type is implemented by all type nodes. Types appear only in annotation
// positions and in let-binding annotations; they are erased by evaluation.
type Type interface {
	Node
	typeNode()
}

// Expressions

// An Ident node represents a variable occurrence, with an optional
// occurrence selector written x@n. Selector 0 refers to the innermost
// binding of the name.
type Ident struct {
	NamePos  token.Pos
	Name     string
	Selector int       // 0 unless written explicitly
	At       token.Pos // position of "@", if any
}

// An Alternative node represents a tag in an anonymous sum type. In source,
// alternatives are identifiers beginning with an uppercase letter.
type Alternative struct {
	NamePos token.Pos
	Name    string
}

// A Builtin node represents a slash-named builtin such as List/fold.
type Builtin struct {
	NamePos token.Pos
	Name    string
}

// A BasicLit node represents a literal of basic type. Kind is one of
// token.NATURAL, token.INTEGER, token.DOUBLE, token.STRING, token.TRUE,
// token.FALSE, or token.NULL. Value holds the literal text as it appeared
// in the source.
type BasicLit struct {
	ValuePos token.Pos
	Kind     token.Token
	Value    string
}

// A LambdaExpr node represents a function literal \x -> body.
type LambdaExpr struct {
	Lambda token.Pos // position of "\"
	Param  *Ident
	Body   Expr
}

// A CallExpr node represents an application of Fun to a single argument by
// juxtaposition.
type CallExpr struct {
	Fun Expr
	Arg Expr
}

// A LetBinding is a single name = expr binding within a LetExpr, with an
// optional type annotation.
type LetBinding struct {
	Let  token.Pos // position of "let"
	Name *Ident
	Type Type // or nil
	Expr Expr
}

// A LetExpr node represents one or more let bindings followed by "in" and a
// body. Each binding may refer to earlier bindings in the same LetExpr.
type LetExpr struct {
	Bindings []*LetBinding // len(Bindings) > 0
	In       token.Pos
	Body     Expr
}

// An IfExpr node represents if cond then e1 else e2.
type IfExpr struct {
	If   token.Pos
	Cond Expr
	Then Expr
	Else Expr
}

// A ListLit node represents a list literal.
type ListLit struct {
	Lbrack token.Pos
	Elts   []Expr
	Rbrack token.Pos
}

// A FieldLit is a single field of a RecordLit. Duplicate labels are
// permitted; selection returns the first match.
type FieldLit struct {
	Label *Ident
	Value Expr
}

// A RecordLit node represents a record literal.
type RecordLit struct {
	Lbrace token.Pos
	Fields []*FieldLit
	Rbrace token.Pos
}

// A SelectorExpr node represents a field selection X.Sel.
type SelectorExpr struct {
	X   Expr
	Sel *Ident
}

// A MergeExpr node represents the sum eliminator "merge handlers". The
// record of handlers becomes active when the merge is applied to a tagged
// value.
type MergeExpr struct {
	Merge token.Pos
	X     Expr
}

// A BinaryExpr node represents X op Y, where Op is one of token.LAND,
// token.LOR, token.ADD, token.MUL, or token.APPEND.
type BinaryExpr struct {
	X     Expr
	OpPos token.Pos
	Op    token.Token
	Y     Expr
}

// An Annotation node represents a type ascription X : T. The type is erased
// during evaluation.
type Annotation struct {
	X    Expr
	Type Type
}

// An ImportExpr node represents an external import ?name. Imports are
// resolved to pre-evaluated values by a compile-time resolver; they have no
// meaning to the evaluator itself.
type ImportExpr struct {
	Quest token.Pos
	Name  *Ident
}

// A ParenExpr node represents a parenthesized expression.
type ParenExpr struct {
	Lparen token.Pos
	X      Expr
	Rparen token.Pos
}

// Types

// A TypeIdent node names a scalar type (Bool, Natural, Integer, Double,
// Text) or, when it begins with a lowercase letter, a type variable.
type TypeIdent struct {
	NamePos token.Pos
	Name    string
}

// A ListType node represents List T.
type ListType struct {
	List token.Pos
	Elem Type
}

// A FuncType node represents T -> U. The arrow is right associative.
type FuncType struct {
	Arg   Type
	Arrow token.Pos
	Ret   Type
}

// A TypeField is a single field of a RecordType.
type TypeField struct {
	Name *Ident
	Type Type
}

// A RecordType node represents { a: T, b: U }.
type RecordType struct {
	Lbrace token.Pos
	Fields []*TypeField
	Rbrace token.Pos
}

// An AltType is a single alternative of a UnionType. The payload type may
// be omitted for nullary alternatives.
type AltType struct {
	Name    *Alternative
	Payload Type // or nil
}

// A UnionType node represents < A : T | B >.
type UnionType struct {
	Lss  token.Pos
	Alts []*AltType
	Gtr  token.Pos
}

// Pos and End implementations

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return x.NamePos }

func (x *Alternative) Pos() token.Pos { return x.NamePos }
func (x *Alternative) End() token.Pos { return x.NamePos }

func (x *Builtin) Pos() token.Pos { return x.NamePos }
func (x *Builtin) End() token.Pos { return x.NamePos }

func (x *BasicLit) Pos() token.Pos { return x.ValuePos }
func (x *BasicLit) End() token.Pos { return x.ValuePos }

func (x *LambdaExpr) Pos() token.Pos { return x.Lambda }
func (x *LambdaExpr) End() token.Pos { return x.Body.End() }

func (x *CallExpr) Pos() token.Pos { return x.Fun.Pos() }
func (x *CallExpr) End() token.Pos { return x.Arg.End() }

func (x *LetExpr) Pos() token.Pos { return x.Bindings[0].Let }
func (x *LetExpr) End() token.Pos { return x.Body.End() }

func (x *IfExpr) Pos() token.Pos { return x.If }
func (x *IfExpr) End() token.Pos { return x.Else.End() }

func (x *ListLit) Pos() token.Pos { return x.Lbrack }
func (x *ListLit) End() token.Pos { return x.Rbrack }

func (x *RecordLit) Pos() token.Pos { return x.Lbrace }
func (x *RecordLit) End() token.Pos { return x.Rbrace }

func (x *SelectorExpr) Pos() token.Pos { return x.X.Pos() }
func (x *SelectorExpr) End() token.Pos { return x.Sel.End() }

func (x *MergeExpr) Pos() token.Pos { return x.Merge }
func (x *MergeExpr) End() token.Pos { return x.X.End() }

func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }

func (x *Annotation) Pos() token.Pos { return x.X.Pos() }
func (x *Annotation) End() token.Pos { return x.Type.End() }

func (x *ImportExpr) Pos() token.Pos { return x.Quest }
func (x *ImportExpr) End() token.Pos { return x.Name.End() }

func (x *ParenExpr) Pos() token.Pos { return x.Lparen }
func (x *ParenExpr) End() token.Pos { return x.Rparen }

func (x *TypeIdent) Pos() token.Pos { return x.NamePos }
func (x *TypeIdent) End() token.Pos { return x.NamePos }

func (x *ListType) Pos() token.Pos { return x.List }
func (x *ListType) End() token.Pos { return x.Elem.End() }

func (x *FuncType) Pos() token.Pos { return x.Arg.Pos() }
func (x *FuncType) End() token.Pos { return x.Ret.End() }

func (x *RecordType) Pos() token.Pos { return x.Lbrace }
func (x *RecordType) End() token.Pos { return x.Rbrace }

func (x *UnionType) Pos() token.Pos { return x.Lss }
func (x *UnionType) End() token.Pos { return x.Gtr }

// exprNode ensures that only expression nodes can be assigned to an Expr.

func (*Ident) exprNode()        {}
func (*Alternative) exprNode()  {}
func (*Builtin) exprNode()      {}
func (*BasicLit) exprNode()     {}
func (*LambdaExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*LetExpr) exprNode()      {}
func (*IfExpr) exprNode()       {}
func (*ListLit) exprNode()      {}
func (*RecordLit) exprNode()    {}
func (*SelectorExpr) exprNode() {}
func (*MergeExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*Annotation) exprNode()   {}
func (*ImportExpr) exprNode()   {}
func (*ParenExpr) exprNode()    {}

// typeNode ensures that only type nodes can be assigned to a Type.

func (*TypeIdent) typeNode()  {}
func (*ListType) typeNode()   {}
func (*FuncType) typeNode()   {}
func (*RecordType) typeNode() {}
func (*UnionType) typeNode()  {}
