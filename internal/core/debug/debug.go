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

// Package debug prints a compact, single-line representation of adt nodes,
// including forms that have no source syntax, such as closures and stuck
// terms. It is intended for test output and diagnostics only; use
// internal/core/export for user-facing rendering.
package debug

import (
	"fmt"
	"strings"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/tern/literal"
)

// NodeString returns a single-line representation of n.
func NodeString(n adt.Node) string {
	w := &writer{}
	w.node(n)
	return w.b.String()
}

type writer struct {
	b strings.Builder
}

func (w *writer) printf(format string, args ...interface{}) {
	fmt.Fprintf(&w.b, format, args...)
}

func (w *writer) node(n adt.Node) {
	switch x := n.(type) {
	case *adt.Var:
		w.printf("%s@%d", x.Name, x.Index)

	case *adt.Lambda:
		w.printf("(\\%s -> ", x.Label)
		w.node(x.Body)
		w.b.WriteString(")")

	case *adt.Closure:
		w.printf("(close %s [", x.Label)
		i := 0
		for e := x.Env; e != nil; e = e.Up {
			if i > 0 {
				w.b.WriteString(" ")
			}
			w.printf("%s=", e.Label)
			w.node(e.Value)
			i++
		}
		w.b.WriteString("] ")
		w.node(x.Body)
		w.b.WriteString(")")

	case *adt.Apply:
		w.binary("apply", x.Fun, x.Arg)

	case *adt.App:
		w.binary("app", x.Fun, x.Arg)

	case *adt.Annotation:
		w.b.WriteString("(annot ")
		w.node(x.X)
		w.b.WriteString(")")

	case *adt.Let:
		w.b.WriteString("(let")
		for _, b := range x.Bindings {
			w.printf(" %s=", b.Label)
			w.node(b.X)
		}
		w.b.WriteString(" in ")
		w.node(x.Body)
		w.b.WriteString(")")

	case *adt.ListLit:
		w.list(exprs(x.Elems))

	case *adt.List:
		w.list(values(x.Elems))

	case *adt.RecordLit:
		w.b.WriteString("{")
		for i, f := range x.Fields {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.printf("%s: ", f.Label)
			w.node(f.X)
		}
		w.b.WriteString("}")

	case *adt.Record:
		w.b.WriteString("{")
		for i, a := range x.Arcs {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.printf("%s: ", a.Label)
			w.node(a.Value)
		}
		w.b.WriteString("}")

	case *adt.SelectorExpr:
		w.node(x.X)
		w.printf(".%s", x.Sel)

	case *adt.Sel:
		w.node(x.X)
		w.printf(".%s", x.Sel)

	case *adt.MergeExpr:
		w.b.WriteString("(merge ")
		w.node(x.X)
		w.b.WriteString(")")

	case *adt.Merge:
		w.b.WriteString("(merge ")
		w.node(x.X)
		w.b.WriteString(")")

	case *adt.IfExpr:
		w.ifNode(x.Cond, x.Then, x.Else)

	case *adt.If:
		w.ifNode(x.Cond, x.Then, x.Else)

	case *adt.BinaryExpr:
		w.binary(x.Op.String(), x.X, x.Y)

	case *adt.BinOp:
		w.binary(x.Op.String(), x.X, x.Y)

	case *adt.Embed:
		w.printf("(embed %s ", x.Import)
		w.node(x.Value)
		w.b.WriteString(")")

	case *adt.Null:
		w.b.WriteString("null")
	case *adt.Bool:
		w.printf("%t", x.B)
	case *adt.Natural:
		w.b.WriteString(literal.Natural(x.N))
	case *adt.Integer:
		w.b.WriteString(literal.Integer(x.I))
	case *adt.Double:
		w.b.WriteString(literal.Double(x.F))
	case *adt.String:
		w.b.WriteString(literal.Quote(x.Str))
	case *adt.Builtin:
		w.b.WriteString(x.ID.String())
	case *adt.Alternative:
		w.b.WriteString(x.Name)

	default:
		w.printf("<%T>", x)
	}
}

func (w *writer) binary(op string, a, b adt.Node) {
	w.printf("(%s ", op)
	w.node(a)
	w.b.WriteString(" ")
	w.node(b)
	w.b.WriteString(")")
}

func (w *writer) ifNode(cond, then, els adt.Node) {
	w.b.WriteString("(if ")
	w.node(cond)
	w.b.WriteString(" ")
	w.node(then)
	w.b.WriteString(" ")
	w.node(els)
	w.b.WriteString(")")
}

func (w *writer) list(elems []adt.Node) {
	w.b.WriteString("[")
	for i, e := range elems {
		if i > 0 {
			w.b.WriteString(", ")
		}
		w.node(e)
	}
	w.b.WriteString("]")
}

func exprs(xs []adt.Expr) []adt.Node {
	ns := make([]adt.Node, len(xs))
	for i, x := range xs {
		ns[i] = x
	}
	return ns
}

func values(vs []adt.Value) []adt.Node {
	ns := make([]adt.Node, len(vs))
	for i, v := range vs {
		ns[i] = v
	}
	return ns
}
