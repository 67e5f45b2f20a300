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

package compile_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/compile"
	"ternlang.org/go/tern/parser"
	"ternlang.org/go/tern/token"
)

var ignorePos = cmpopts.IgnoreTypes(token.Pos{})

func mustCompile(t *testing.T, cfg *compile.Config, src string) adt.Expr {
	t.Helper()
	x, err := parser.ParseExpr("test", []byte(src))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	expr, errs := compile.Expr(cfg, x)
	if err := errs.Err(); err != nil {
		t.Fatalf("compile error: %v", err)
	}
	return expr
}

func TestCompileLiterals(t *testing.T) {
	testCases := []struct {
		src  string
		want adt.Expr
	}{
		{`42`, &adt.Natural{N: 42}},
		{`18446744073709551615`, &adt.Natural{N: 18446744073709551615}},
		{`+7`, &adt.Integer{I: 7}},
		{`-7`, &adt.Integer{I: -7}},
		{`1.5`, &adt.Double{F: 1.5}},
		{`1e3`, &adt.Double{F: 1000}},
		{`"a\nb"`, &adt.String{Str: "a\nb"}},
		{`true`, &adt.Bool{B: true}},
		{`false`, &adt.Bool{B: false}},
		{`null`, &adt.Null{}},
		{`List/length`, &adt.Builtin{ID: adt.ListLength}},
		{`Left`, &adt.Alternative{Name: "Left"}},
		{`x@3`, &adt.Var{Name: "x", Index: 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			got := mustCompile(t, nil, tc.src)
			if diff := cmp.Diff(tc.want, got, ignorePos); diff != "" {
				t.Errorf("compile(%s) (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestCompileStructure(t *testing.T) {
	got := mustCompile(t, nil, `let x = 1 in \y -> x + y`)
	want := &adt.Let{
		Bindings: []adt.LetBinding{{Label: "x", X: &adt.Natural{N: 1}}},
		Body: &adt.Lambda{Label: "y", Body: &adt.BinaryExpr{
			Op: adt.PlusOp,
			X:  &adt.Var{Name: "x"},
			Y:  &adt.Var{Name: "y"},
		}},
	}
	if diff := cmp.Diff(adt.Expr(want), got, ignorePos); diff != "" {
		t.Errorf("compile (-want +got):\n%s", diff)
	}
}

// TestCompileAnnotation checks that annotation types are converted to the
// internal representation while evaluation still sees the annotated
// expression.
func TestCompileAnnotation(t *testing.T) {
	got := mustCompile(t, nil, `1 : Natural`)
	annot, ok := got.(*adt.Annotation)
	if !ok {
		t.Fatalf("got %T, want *adt.Annotation", got)
	}
	if annot.Type == nil {
		t.Error("annotation type not converted")
	}
	if _, ok := annot.X.(*adt.Natural); !ok {
		t.Errorf("annotated expression: got %T, want *adt.Natural", annot.X)
	}
}

func TestResolver(t *testing.T) {
	cfg := &compile.Config{
		Resolver: func(name string) (adt.Value, error) {
			if name == "answer" {
				return &adt.Natural{N: 40}, nil
			}
			return nil, fmt.Errorf("not found")
		},
	}

	expr := mustCompile(t, cfg, `?answer + 2`)
	ctx := adt.NewContext()
	v := ctx.Eval(nil, expr)
	if got, ok := v.(*adt.Natural); !ok || got.N != 42 {
		t.Fatalf("got %#v, want 42", v)
	}

	// Unknown imports and missing resolvers are positioned errors.
	x, err := parser.ParseExpr("test", []byte(`?missing`))
	if err != nil {
		t.Fatal(err)
	}
	if _, errs := compile.Expr(cfg, x); errs.Err() == nil {
		t.Error("unknown import: no error")
	}
	if _, errs := compile.Expr(nil, x); errs.Err() == nil {
		t.Error("nil resolver: no error")
	}
}
