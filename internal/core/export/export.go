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

// Package export converts adt expressions in normal form back to parsed
// syntax, so normalization results can be formatted as source text.
//
// Export is the inverse of compile on the sublanguage that readback
// produces: no annotations, no lets, no imports. Scalars render through the
// canonical literal forms.
package export

import (
	"fmt"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/literal"
	"ternlang.org/go/tern/token"
)

// Expr converts a quoted expression to parsed syntax.
func Expr(x adt.Expr) ast.Expr {
	switch x := x.(type) {
	case *adt.Var:
		return &ast.Ident{Name: x.Name, Selector: x.Index}

	case *adt.Lambda:
		return &ast.LambdaExpr{
			Param: &ast.Ident{Name: x.Label},
			Body:  Expr(x.Body),
		}

	case *adt.Apply:
		return &ast.CallExpr{Fun: Expr(x.Fun), Arg: Expr(x.Arg)}

	case *adt.ListLit:
		elts := make([]ast.Expr, len(x.Elems))
		for i, e := range x.Elems {
			elts[i] = Expr(e)
		}
		return &ast.ListLit{Elts: elts}

	case *adt.RecordLit:
		fields := make([]*ast.FieldLit, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = &ast.FieldLit{
				Label: &ast.Ident{Name: f.Label},
				Value: Expr(f.X),
			}
		}
		return &ast.RecordLit{Fields: fields}

	case *adt.SelectorExpr:
		return &ast.SelectorExpr{X: Expr(x.X), Sel: &ast.Ident{Name: x.Sel}}

	case *adt.MergeExpr:
		return &ast.MergeExpr{X: Expr(x.X)}

	case *adt.IfExpr:
		return &ast.IfExpr{
			Cond: Expr(x.Cond),
			Then: Expr(x.Then),
			Else: Expr(x.Else),
		}

	case *adt.BinaryExpr:
		return &ast.BinaryExpr{X: Expr(x.X), Op: opToken(x.Op), Y: Expr(x.Y)}

	case *adt.Alternative:
		return &ast.Alternative{Name: x.Name}

	case *adt.Builtin:
		return &ast.Builtin{Name: x.ID.String()}

	case *adt.Null:
		return &ast.BasicLit{Kind: token.NULL, Value: "null"}

	case *adt.Bool:
		if x.B {
			return &ast.BasicLit{Kind: token.TRUE, Value: "true"}
		}
		return &ast.BasicLit{Kind: token.FALSE, Value: "false"}

	case *adt.Natural:
		return &ast.BasicLit{Kind: token.NATURAL, Value: literal.Natural(x.N)}

	case *adt.Integer:
		return &ast.BasicLit{Kind: token.INTEGER, Value: literal.Integer(x.I)}

	case *adt.Double:
		return &ast.BasicLit{Kind: token.DOUBLE, Value: literal.Double(x.F)}

	case *adt.String:
		return &ast.BasicLit{Kind: token.STRING, Value: literal.Quote(x.Str)}
	}
	// Lets, annotations, embeds, and unquoted values cannot occur in a
	// normal form.
	panic(fmt.Sprintf("export: cannot export %T", x))
}

func opToken(op adt.Op) token.Token {
	switch op {
	case adt.AndOp:
		return token.LAND
	case adt.OrOp:
		return token.LOR
	case adt.PlusOp:
		return token.ADD
	case adt.TimesOp:
		return token.MUL
	case adt.AppendOp:
		return token.APPEND
	}
	panic(fmt.Sprintf("export: unknown operator %d", op))
}
