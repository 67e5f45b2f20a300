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

// Package adt implements the normalization core of the Tern language: the
// abstract data types for surface expressions and residual values, and the
// operations that connect them.
//
// Evaluation (Eval) reduces a surface expression under an environment to a
// β- and δ-normal Value. Readback (Quote) converts a Value back to a
// surface expression with correct occurrence selectors. Both are total:
// ill-typed input normalizes to stuck (neutral) terms, never to an error.
package adt

import "ternlang.org/go/tern/token"

// A Node is any abstract data type representing a value or expression.
type Node interface {
	// Source returns the source location of the node. Nodes produced by
	// readback carry token.NoPos.
	Source() token.Pos
	node() // enforce internal
}

// An Expr is a surface expression, the input to Eval. Every Value can also
// be used as an Expr. A Var is looked up in the environment; every other
// Value evaluates to itself, which is how pre-evaluated scalars and
// embedded values flow through the evaluator unchanged.
type Expr interface {
	Node
	expr()
}

// A Value is a node in the reduced data graph: either a concrete result or
// a neutral (stuck) term that cannot be reduced further.
//
// All Values can also be used as an Expr.
type Value interface {
	Expr
	Kind() Kind
}

// Shared nodes: these are both Expr and Value.

func (*Null) expr()        {}
func (*Bool) expr()        {}
func (*Natural) expr()     {}
func (*Integer) expr()     {}
func (*Double) expr()      {}
func (*String) expr()      {}
func (*Builtin) expr()     {}
func (*Alternative) expr() {}
func (*Var) expr()         {}

// Expr only.

func (*Lambda) expr()       {}
func (*Apply) expr()        {}
func (*Annotation) expr()   {}
func (*Let) expr()          {}
func (*ListLit) expr()      {}
func (*RecordLit) expr()    {}
func (*SelectorExpr) expr() {}
func (*MergeExpr) expr()    {}
func (*IfExpr) expr()       {}
func (*BinaryExpr) expr()   {}
func (*Embed) expr()        {}

// Value only. Values evaluate to themselves, so they are Exprs as well.

func (*Closure) expr() {}
func (*App) expr()     {}
func (*List) expr()    {}
func (*Record) expr()  {}
func (*Sel) expr()     {}
func (*Merge) expr()   {}
func (*If) expr()      {}
func (*BinOp) expr()   {}
