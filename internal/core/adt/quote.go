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

// Quote reads a Value back into a surface expression. The names list holds
// the names in scope at the readback site, newest first; pass nil for a
// closed value.
//
// The result carries no annotations, lets, or embeds, and every location
// slot is token.NoPos. Variable indices follow the surface convention:
// Quote re-derives them from the in-scope name list, which is what makes
// evaluation followed by readback the identity on closed normal forms.
func (c *OpContext) Quote(names []string, v Value) Expr {
	c.stats.Quotes++
	switch v := v.(type) {
	case *Var:
		return &Var{Name: v.Name, Index: countName(names, v.Name) - v.Index - 1}

	case *Closure:
		arg := fresh(v.Label, names)
		body := c.Quote(append([]string{v.Label}, names...), c.instantiate(v, arg))
		return &Lambda{Label: v.Label, Body: body}

	case *App:
		return &Apply{
			Fun: c.Quote(names, v.Fun),
			Arg: c.Quote(names, v.Arg),
		}

	case *List:
		elems := make([]Expr, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = c.Quote(names, e)
		}
		return &ListLit{Elems: elems}

	case *Record:
		fields := make([]FieldLit, len(v.Arcs))
		for i, a := range v.Arcs {
			fields[i] = FieldLit{Label: a.Label, X: c.Quote(names, a.Value)}
		}
		return &RecordLit{Fields: fields}

	case *Sel:
		return &SelectorExpr{X: c.Quote(names, v.X), Sel: v.Sel}

	case *Merge:
		return &MergeExpr{X: c.Quote(names, v.X)}

	case *If:
		return &IfExpr{
			Cond: c.Quote(names, v.Cond),
			Then: c.Quote(names, v.Then),
			Else: c.Quote(names, v.Else),
		}

	case *BinOp:
		return &BinaryExpr{
			Op: v.Op,
			X:  c.Quote(names, v.X),
			Y:  c.Quote(names, v.Y),
		}

	case *Null:
		return &Null{}
	case *Bool:
		return &Bool{B: v.B}
	case *Natural:
		return &Natural{N: v.N}
	case *Integer:
		return &Integer{I: v.I}
	case *Double:
		return &Double{F: v.F}
	case *String:
		return &String{Str: v.Str}
	case *Builtin:
		return &Builtin{ID: v.ID}
	case *Alternative:
		return &Alternative{Name: v.Name}
	}
	panic("adt: unknown value")
}

// fresh produces the value-level variable that stands for the parameter of
// a closure being read back. Its index is the number of bindings of the
// same name already in scope, which makes the quoted occurrence come out
// as selector 0 under the extended scope.
func fresh(name string, names []string) *Var {
	return &Var{Name: name, Index: countName(names, name)}
}

func countName(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}
	return n
}
