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

// Package compile lowers parsed Tern syntax to the adt representation
// consumed by the evaluator.
//
// Lowering is data shuffling: literals are converted through tern/literal,
// annotation types are converted to their existential-aware internal form,
// and imports are resolved to pre-evaluated embedded values through the
// configured Resolver.
package compile

import (
	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/types"
	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/errors"
	"ternlang.org/go/tern/literal"
	"ternlang.org/go/tern/token"
)

// A Resolver maps an import name to a pre-evaluated value. It is the hook
// through which externally computed results enter evaluation.
type Resolver func(name string) (adt.Value, error)

// Config configures compilation.
type Config struct {
	// Resolver resolves ?name imports. If nil, any import is an error.
	Resolver Resolver

	// Types receives the existentials allocated for annotation types. If
	// nil, a Context private to this compilation is used.
	Types *types.Context
}

// Expr lowers a parsed expression. The returned errors carry source
// positions.
func Expr(cfg *Config, x ast.Expr) (adt.Expr, errors.List) {
	if cfg == nil {
		cfg = &Config{}
	}
	c := &compiler{cfg: *cfg}
	if c.cfg.Types == nil {
		c.cfg.Types = &types.Context{}
	}
	out := c.expr(x)
	return out, c.errs
}

type compiler struct {
	cfg  Config
	errs errors.List
}

func (c *compiler) errf(pos token.Pos, format string, args ...interface{}) {
	c.errs.AddNewf(pos.Position(), format, args...)
}

func (c *compiler) expr(x ast.Expr) adt.Expr {
	switch x := x.(type) {
	case *ast.Ident:
		return &adt.Var{Src: x.NamePos, Name: x.Name, Index: x.Selector}

	case *ast.Alternative:
		return &adt.Alternative{Src: x.NamePos, Name: x.Name}

	case *ast.Builtin:
		id := adt.ParseBuiltin(x.Name)
		if id == adt.NoBuiltin {
			c.errf(x.NamePos, "unknown builtin %q", x.Name)
		}
		return &adt.Builtin{Src: x.NamePos, ID: id}

	case *ast.BasicLit:
		return c.basicLit(x)

	case *ast.LambdaExpr:
		return &adt.Lambda{Src: x.Lambda, Label: x.Param.Name, Body: c.expr(x.Body)}

	case *ast.CallExpr:
		return &adt.Apply{Src: x.Fun.Pos(), Fun: c.expr(x.Fun), Arg: c.expr(x.Arg)}

	case *ast.LetExpr:
		bindings := make([]adt.LetBinding, len(x.Bindings))
		for i, b := range x.Bindings {
			bindings[i] = adt.LetBinding{Label: b.Name.Name, X: c.expr(b.Expr)}
			if b.Type != nil {
				bindings[i].Type = c.typ(b.Type)
			}
		}
		return &adt.Let{Src: x.Pos(), Bindings: bindings, Body: c.expr(x.Body)}

	case *ast.IfExpr:
		return &adt.IfExpr{
			Src:  x.If,
			Cond: c.expr(x.Cond),
			Then: c.expr(x.Then),
			Else: c.expr(x.Else),
		}

	case *ast.ListLit:
		elems := make([]adt.Expr, len(x.Elts))
		for i, e := range x.Elts {
			elems[i] = c.expr(e)
		}
		return &adt.ListLit{Src: x.Lbrack, Elems: elems}

	case *ast.RecordLit:
		fields := make([]adt.FieldLit, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = adt.FieldLit{Label: f.Label.Name, X: c.expr(f.Value)}
		}
		return &adt.RecordLit{Src: x.Lbrace, Fields: fields}

	case *ast.SelectorExpr:
		return &adt.SelectorExpr{Src: x.X.Pos(), X: c.expr(x.X), Sel: x.Sel.Name}

	case *ast.MergeExpr:
		return &adt.MergeExpr{Src: x.Merge, X: c.expr(x.X)}

	case *ast.BinaryExpr:
		return &adt.BinaryExpr{
			Src: x.OpPos,
			Op:  binOp(x.Op),
			X:   c.expr(x.X),
			Y:   c.expr(x.Y),
		}

	case *ast.Annotation:
		return &adt.Annotation{Src: x.X.Pos(), X: c.expr(x.X), Type: c.typ(x.Type)}

	case *ast.ImportExpr:
		if c.cfg.Resolver == nil {
			c.errf(x.Quest, "no resolver for import %q", x.Name.Name)
			return &adt.Null{Src: x.Quest}
		}
		v, err := c.cfg.Resolver(x.Name.Name)
		if err != nil {
			c.errf(x.Quest, "cannot resolve import %q: %v", x.Name.Name, err)
			return &adt.Null{Src: x.Quest}
		}
		return &adt.Embed{Src: x.Quest, Import: x.Name.Name, Value: v}

	case *ast.ParenExpr:
		return c.expr(x.X)
	}
	c.errf(x.Pos(), "unsupported expression %T", x)
	return &adt.Null{Src: x.Pos()}
}

func (c *compiler) basicLit(x *ast.BasicLit) adt.Expr {
	switch x.Kind {
	case token.NATURAL, token.INTEGER, token.DOUBLE:
		num, err := literal.ParseNum(x.Value)
		if err != nil {
			c.errf(x.ValuePos, "%v", err)
			return &adt.Null{Src: x.ValuePos}
		}
		switch {
		case num.IsNatural():
			n, err := num.Natural()
			if err != nil {
				c.errf(x.ValuePos, "%v", err)
				break
			}
			return &adt.Natural{Src: x.ValuePos, N: n}
		case num.IsInteger():
			i, err := num.Integer()
			if err != nil {
				c.errf(x.ValuePos, "%v", err)
				break
			}
			return &adt.Integer{Src: x.ValuePos, I: i}
		default:
			f, err := num.Double()
			if err != nil {
				c.errf(x.ValuePos, "%v", err)
				break
			}
			return &adt.Double{Src: x.ValuePos, F: f}
		}
		return &adt.Null{Src: x.ValuePos}

	case token.STRING:
		s, err := literal.Unquote(x.Value)
		if err != nil {
			c.errf(x.ValuePos, "%v", err)
			return &adt.Null{Src: x.ValuePos}
		}
		return &adt.String{Src: x.ValuePos, Str: s}

	case token.TRUE:
		return &adt.Bool{Src: x.ValuePos, B: true}
	case token.FALSE:
		return &adt.Bool{Src: x.ValuePos, B: false}
	case token.NULL:
		return &adt.Null{Src: x.ValuePos}
	}
	c.errf(x.ValuePos, "unsupported literal %q", x.Value)
	return &adt.Null{Src: x.ValuePos}
}

func (c *compiler) typ(t ast.Type) types.Type {
	out, err := c.cfg.Types.FromAST(t)
	if err != nil {
		c.errf(t.Pos(), "%v", err)
		return nil
	}
	return out
}

func binOp(tok token.Token) adt.Op {
	switch tok {
	case token.LAND:
		return adt.AndOp
	case token.LOR:
		return adt.OrOp
	case token.ADD:
		return adt.PlusOp
	case token.MUL:
		return adt.TimesOp
	case token.APPEND:
		return adt.AppendOp
	}
	return adt.NoOp
}
