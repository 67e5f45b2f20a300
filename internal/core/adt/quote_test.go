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

package adt_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/compile"
	"ternlang.org/go/tern/parser"
	"ternlang.org/go/tern/token"
)

var ignorePos = cmpopts.IgnoreTypes(token.Pos{})

// TestQuoteRoundTrip checks that readback of the evaluation of a closed
// normal form reproduces it: quote ∘ evaluate is the identity on β-normal,
// annotation-free, let-free expressions.
func TestQuoteRoundTrip(t *testing.T) {
	testCases := []string{
		`42`,
		`+7`,
		`-7`,
		`1.5`,
		`"hello"`,
		`true`,
		`null`,
		`\x -> x`,
		`\x -> \y -> x`,
		`\x -> \x -> x@1`,
		`[1, 2, 3]`,
		`{ a: 1, b: "two" }`,
		`y`,
		`y + 1`,
		`\x -> x + y`,
		`List/fold`,
		`Left`,
		`f 1 2`,
		`if b then 1 else 2`,
		`merge { Left: \n -> n } x`,
	}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			x, err := parser.ParseExpr("test", []byte(src))
			if err != nil {
				t.Fatal(err)
			}
			expr, errs := compile.Expr(nil, x)
			if err := errs.Err(); err != nil {
				t.Fatal(err)
			}

			ctx := adt.NewContext()
			quoted := ctx.Quote(nil, ctx.Eval(nil, expr))
			if diff := cmp.Diff(expr, quoted, ignorePos); diff != "" {
				t.Errorf("quote(eval(x)) != x (-want +got):\n%s", diff)
			}
		})
	}
}

// TestQuoteScoped checks readback under a non-empty scope list matching
// the evaluation environment's names.
func TestQuoteScoped(t *testing.T) {
	ctx := adt.NewContext()

	// The environment binds each name to the variable fresh would have
	// produced at its binding site: y entered scope first, then x.
	env := adt.NewEnvironment(
		adt.Binding{Label: "y", Value: &adt.Var{Name: "y", Index: 0}},
		adt.Binding{Label: "x", Value: &adt.Var{Name: "x", Index: 0}},
	)

	// x + y with both names bound to their own neutral variables reads
	// back unchanged under the scope [x, y].
	expr := &adt.BinaryExpr{
		Op: adt.PlusOp,
		X:  &adt.Var{Name: "x"},
		Y:  &adt.Var{Name: "y"},
	}
	v := ctx.Eval(env, expr)
	quoted := ctx.Quote([]string{"x", "y"}, v)
	if diff := cmp.Diff(adt.Expr(expr), quoted, ignorePos); diff != "" {
		t.Errorf("scoped readback (-want +got):\n%s", diff)
	}
}

// genExpr produces a random closed expression. The grammar sticks to
// well-typed combinations so the round-trip laws apply.
func genExpr(r *rand.Rand, depth int) adt.Expr {
	if depth <= 0 {
		switch r.Intn(4) {
		case 0:
			return &adt.Natural{N: uint64(r.Intn(100))}
		case 1:
			return &adt.Bool{B: r.Intn(2) == 0}
		case 2:
			return &adt.String{Str: "s"}
		default:
			return &adt.Null{}
		}
	}
	switch r.Intn(8) {
	case 0:
		return &adt.BinaryExpr{
			Op: adt.PlusOp,
			X:  &adt.Natural{N: uint64(r.Intn(10))},
			Y:  genNat(r, depth-1),
		}
	case 1:
		return &adt.BinaryExpr{
			Op: adt.AndOp,
			X:  &adt.Bool{B: r.Intn(2) == 0},
			Y:  &adt.Bool{B: r.Intn(2) == 0},
		}
	case 2:
		return &adt.Apply{
			Fun: &adt.Lambda{Label: "x", Body: &adt.Var{Name: "x"}},
			Arg: genExpr(r, depth-1),
		}
	case 3:
		elems := make([]adt.Expr, r.Intn(3))
		for i := range elems {
			elems[i] = genExpr(r, depth-1)
		}
		return &adt.ListLit{Elems: elems}
	case 4:
		return &adt.RecordLit{Fields: []adt.FieldLit{
			{Label: "a", X: genExpr(r, depth-1)},
			{Label: "b", X: genExpr(r, depth-1)},
		}}
	case 5:
		return &adt.SelectorExpr{
			X: &adt.RecordLit{Fields: []adt.FieldLit{
				{Label: "a", X: genExpr(r, depth-1)},
			}},
			Sel: "a",
		}
	case 6:
		return &adt.IfExpr{
			Cond: &adt.Bool{B: r.Intn(2) == 0},
			Then: genExpr(r, depth-1),
			Else: genExpr(r, depth-1),
		}
	default:
		return &adt.Lambda{Label: "x", Body: genExpr(r, depth-1)}
	}
}

func genNat(r *rand.Rand, depth int) adt.Expr {
	if depth <= 0 {
		return &adt.Natural{N: uint64(r.Intn(10))}
	}
	return &adt.BinaryExpr{
		Op: adt.TimesOp,
		X:  &adt.Natural{N: uint64(r.Intn(4))},
		Y:  genNat(r, depth-1),
	}
}

// TestQuoteStability checks, on randomly generated closed expressions,
// that evaluation is idempotent through readback: evaluating the quoted
// normal form quotes to the same expression again.
func TestQuoteStability(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		expr := genExpr(r, 4)

		ctx := adt.NewContext()
		q1 := ctx.Quote(nil, ctx.Eval(nil, expr))
		q2 := ctx.Quote(nil, ctx.Eval(nil, q1))
		if diff := cmp.Diff(q1, q2, ignorePos); diff != "" {
			t.Fatalf("readback not stable (-first +second):\n%s", diff)
		}
	}
}

// TestFreshSelectors checks that readback of nested closures over the same
// parameter name reintroduces the selectors that keep occurrences apart.
func TestFreshSelectors(t *testing.T) {
	ctx := adt.NewContext()

	// \x -> \x -> \x -> x@2 refers to the outermost binder through two
	// shadowing ones.
	expr := &adt.Lambda{Label: "x", Body: &adt.Lambda{Label: "x", Body: &adt.Lambda{
		Label: "x", Body: &adt.Var{Name: "x", Index: 2},
	}}}

	quoted := ctx.Quote(nil, ctx.Eval(nil, expr))
	if diff := cmp.Diff(adt.Expr(expr), quoted, ignorePos); diff != "" {
		t.Errorf("selector readback (-want +got):\n%s", diff)
	}
}
