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

package export_test

import (
	"testing"

	"github.com/kr/pretty"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/export"
	"ternlang.org/go/tern/ast"
	"ternlang.org/go/tern/token"
)

func TestExport(t *testing.T) {
	testCases := []struct {
		name string
		in   adt.Expr
		want ast.Expr
	}{
		{
			name: "scalars",
			in: &adt.ListLit{Elems: []adt.Expr{
				&adt.Natural{N: 1},
				&adt.Integer{I: -2},
				&adt.Double{F: 1.5},
				&adt.String{Str: "s"},
				&adt.Bool{B: true},
				&adt.Null{},
			}},
			want: &ast.ListLit{Elts: []ast.Expr{
				&ast.BasicLit{Kind: token.NATURAL, Value: "1"},
				&ast.BasicLit{Kind: token.INTEGER, Value: "-2"},
				&ast.BasicLit{Kind: token.DOUBLE, Value: "1.5"},
				&ast.BasicLit{Kind: token.STRING, Value: `"s"`},
				&ast.BasicLit{Kind: token.TRUE, Value: "true"},
				&ast.BasicLit{Kind: token.NULL, Value: "null"},
			}},
		},
		{
			name: "lambda",
			in:   &adt.Lambda{Label: "x", Body: &adt.Var{Name: "x"}},
			want: &ast.LambdaExpr{
				Param: &ast.Ident{Name: "x"},
				Body:  &ast.Ident{Name: "x"},
			},
		},
		{
			name: "stuckOperator",
			in: &adt.BinaryExpr{
				Op: adt.PlusOp,
				X:  &adt.Var{Name: "y"},
				Y:  &adt.Natural{N: 1},
			},
			want: &ast.BinaryExpr{
				X:  &ast.Ident{Name: "y"},
				Op: token.ADD,
				Y:  &ast.BasicLit{Kind: token.NATURAL, Value: "1"},
			},
		},
		{
			name: "mergeSpine",
			in: &adt.Apply{
				Fun: &adt.MergeExpr{X: &adt.RecordLit{Fields: []adt.FieldLit{
					{Label: "Left", X: &adt.Builtin{ID: adt.IntegerEven}},
				}}},
				Arg: &adt.Alternative{Name: "Left"},
			},
			want: &ast.CallExpr{
				Fun: &ast.MergeExpr{X: &ast.RecordLit{Fields: []*ast.FieldLit{
					{Label: &ast.Ident{Name: "Left"}, Value: &ast.Builtin{Name: "Integer/even"}},
				}}},
				Arg: &ast.Alternative{Name: "Left"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := export.Expr(tc.in)
			if diff := pretty.Diff(tc.want, got); len(diff) > 0 {
				t.Errorf("export mismatch:")
				for _, d := range diff {
					t.Errorf("  %s", d)
				}
			}
		})
	}
}
