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

// Package format implements canonical formatting of Tern syntax trees as
// source text.
//
// The formatter is precedence aware: it inserts the minimal parentheses
// needed to reparse to the same tree, and discards parentheses that the
// parser recorded but precedence does not require.
package format

import (
	"fmt"
	"strings"

	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/token"
)

// Binding strengths, loosest to tightest. Operators occupy the range
// between exprPrec and appPrec according to token.Precedence.
const (
	exprPrec = 0 // lambda, let, if, annotation
	appPrec  = 6 // application, merge
	selPrec  = 7 // selection, atoms
)

// Node formats a syntax node as source text.
func Node(node ast.Node) ([]byte, error) {
	var p printer
	switch n := node.(type) {
	case ast.Expr:
		p.expr(n, exprPrec)
	case ast.Type:
		p.typ(n, false)
	default:
		return nil, fmt.Errorf("format: unsupported node type %T", node)
	}
	return []byte(p.buf.String()), nil
}

type printer struct {
	buf strings.Builder
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(&p.buf, format, args...)
}

// expr prints x assuming the context requires binding strength prec:
// whenever x binds looser than prec, it is parenthesized.
func (p *printer) expr(x ast.Expr, prec int) {
	switch x := x.(type) {
	case *ast.ParenExpr:
		p.expr(x.X, prec)

	case *ast.Ident:
		p.buf.WriteString(x.Name)
		if x.Selector != 0 {
			p.printf("@%d", x.Selector)
		}

	case *ast.Alternative:
		p.buf.WriteString(x.Name)

	case *ast.Builtin:
		p.buf.WriteString(x.Name)

	case *ast.BasicLit:
		p.buf.WriteString(x.Value)

	case *ast.ImportExpr:
		p.printf("?%s", x.Name.Name)

	case *ast.ListLit:
		p.buf.WriteByte('[')
		for i, e := range x.Elts {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(e, exprPrec)
		}
		p.buf.WriteByte(']')

	case *ast.RecordLit:
		if len(x.Fields) == 0 {
			p.buf.WriteString("{}")
			return
		}
		p.buf.WriteString("{ ")
		for i, f := range x.Fields {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printf("%s: ", f.Label.Name)
			p.expr(f.Value, exprPrec)
		}
		p.buf.WriteString(" }")

	case *ast.SelectorExpr:
		p.expr(x.X, selPrec)
		p.printf(".%s", x.Sel.Name)

	case *ast.CallExpr:
		p.parenIf(prec > appPrec, func() {
			p.expr(x.Fun, appPrec)
			p.buf.WriteByte(' ')
			p.expr(x.Arg, appPrec+1)
		})

	case *ast.MergeExpr:
		p.parenIf(prec > appPrec, func() {
			p.buf.WriteString("merge ")
			p.expr(x.X, selPrec)
		})

	case *ast.BinaryExpr:
		opPrec := token.Precedence(x.Op)
		p.parenIf(prec > opPrec, func() {
			p.expr(x.X, opPrec)
			p.printf(" %s ", x.Op)
			p.expr(x.Y, opPrec+1)
		})

	case *ast.LambdaExpr:
		p.parenIf(prec > exprPrec, func() {
			p.printf("\\%s -> ", x.Param.Name)
			p.expr(x.Body, exprPrec)
		})

	case *ast.LetExpr:
		p.parenIf(prec > exprPrec, func() {
			for _, b := range x.Bindings {
				p.printf("let %s", b.Name.Name)
				if b.Type != nil {
					p.buf.WriteString(" : ")
					p.typ(b.Type, false)
				}
				p.buf.WriteString(" = ")
				p.expr(b.Expr, exprPrec)
				p.buf.WriteByte(' ')
			}
			p.buf.WriteString("in ")
			p.expr(x.Body, exprPrec)
		})

	case *ast.IfExpr:
		p.parenIf(prec > exprPrec, func() {
			p.buf.WriteString("if ")
			p.expr(x.Cond, exprPrec)
			p.buf.WriteString(" then ")
			p.expr(x.Then, exprPrec)
			p.buf.WriteString(" else ")
			p.expr(x.Else, exprPrec)
		})

	case *ast.Annotation:
		p.parenIf(prec > exprPrec, func() {
			p.expr(x.X, exprPrec+1)
			p.buf.WriteString(" : ")
			p.typ(x.Type, false)
		})

	default:
		p.printf("<%T>", x)
	}
}

func (p *printer) parenIf(cond bool, f func()) {
	if cond {
		p.buf.WriteByte('(')
		f()
		p.buf.WriteByte(')')
		return
	}
	f()
}

// typ prints a type; operand restricts to the operand position of a
// function arrow or List application, where arrow and List types are
// parenthesized.
func (p *printer) typ(t ast.Type, operand bool) {
	switch t := t.(type) {
	case *ast.TypeIdent:
		p.buf.WriteString(t.Name)

	case *ast.ListType:
		p.parenIf(operand, func() {
			p.buf.WriteString("List ")
			p.typ(t.Elem, true)
		})

	case *ast.FuncType:
		p.parenIf(operand, func() {
			p.typ(t.Arg, true)
			p.buf.WriteString(" -> ")
			p.typ(t.Ret, false)
		})

	case *ast.RecordType:
		if len(t.Fields) == 0 {
			p.buf.WriteString("{}")
			return
		}
		p.buf.WriteString("{ ")
		for i, f := range t.Fields {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printf("%s: ", f.Name.Name)
			p.typ(f.Type, false)
		}
		p.buf.WriteString(" }")

	case *ast.UnionType:
		p.buf.WriteString("< ")
		for i, a := range t.Alts {
			if i > 0 {
				p.buf.WriteString(" | ")
			}
			p.buf.WriteString(a.Name.Name)
			if a.Payload != nil {
				p.buf.WriteString(" : ")
				p.typ(a.Payload, false)
			}
		}
		p.buf.WriteString(" >")

	default:
		p.printf("<%T>", t)
	}
}
