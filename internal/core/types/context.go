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

package types

import (
	"fmt"

	"github.com/chewxy/hm"

	"ternlang.org/go/tern/ast"
)

// A Context tracks the existential variables allocated during inference and
// the solutions found for them. The zero value is ready to use.
type Context struct {
	next      rune
	solutions map[hm.TypeVariable]Type
}

// Fresh allocates a new, unsolved existential variable.
func (c *Context) Fresh() hm.TypeVariable {
	// Existentials are drawn from the Unicode private use area so they can
	// never collide with source-level type variable names.
	tv := hm.TypeVariable(0xE000 + c.next)
	c.next++
	return tv
}

// Solved reports whether tv has a solution.
func (c *Context) Solved(tv hm.TypeVariable) bool {
	_, ok := c.solutions[tv]
	return ok
}

// Solve records t as the solution for tv. It is an error to solve an
// existential twice or to solve it to a type mentioning itself.
func (c *Context) Solve(tv hm.TypeVariable, t Type) error {
	if c.Solved(tv) {
		return fmt.Errorf("existential %q already solved", tv.Name())
	}
	if t.FreeTypeVar().Contains(tv) {
		return fmt.Errorf("occurs check: existential %q appears in %v", tv.Name(), t)
	}
	if c.solutions == nil {
		c.solutions = make(map[hm.TypeVariable]Type)
	}
	c.solutions[tv] = t
	return nil
}

// Resolve substitutes all solved existentials in t, repeatedly, until no
// solved existential remains. Unsolved existentials are left in place.
func (c *Context) Resolve(t Type) Type {
	switch t := t.(type) {
	case hm.TypeVariable:
		if sol, ok := c.solutions[t]; ok {
			return c.Resolve(sol)
		}
		return t
	case *hm.FunctionType:
		return hm.NewFnType(c.Resolve(t.Arg()), c.Resolve(t.Ret(false)))
	case *ListType:
		return &ListType{Elem: c.Resolve(t.Elem)}
	case *RecordType:
		fields := make([]RecordField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = RecordField{Label: f.Label, Type: c.Resolve(f.Type)}
		}
		return &RecordType{Fields: fields}
	case *UnionType:
		alts := make([]UnionAlt, len(t.Alts))
		for i, a := range t.Alts {
			alts[i] = a
			if a.Payload != nil {
				alts[i].Payload = c.Resolve(a.Payload)
			}
		}
		return &UnionType{Alts: alts}
	}
	return t
}

// Complete reports whether t contains no existential variables after
// resolution.
func (c *Context) Complete(t Type) bool {
	return len(c.Resolve(t).FreeTypeVar()) == 0
}

// FromAST converts a surface type annotation into the internal
// representation, allocating one existential per distinct source-level type
// variable. The mapping of names to existentials is scoped to a single
// conversion.
func (c *Context) FromAST(t ast.Type) (Type, error) {
	conv := converter{ctx: c, vars: map[string]hm.TypeVariable{}}
	return conv.convert(t)
}

type converter struct {
	ctx  *Context
	vars map[string]hm.TypeVariable
}

func (c *converter) convert(t ast.Type) (Type, error) {
	switch t := t.(type) {
	case *ast.TypeIdent:
		switch t.Name {
		case "Bool", "Natural", "Integer", "Double", "Text", "Null":
			return ScalarType(t.Name), nil
		}
		if tv, ok := c.vars[t.Name]; ok {
			return tv, nil
		}
		tv := c.ctx.Fresh()
		c.vars[t.Name] = tv
		return tv, nil

	case *ast.ListType:
		elem, err := c.convert(t.Elem)
		if err != nil {
			return nil, err
		}
		return &ListType{Elem: elem}, nil

	case *ast.FuncType:
		arg, err := c.convert(t.Arg)
		if err != nil {
			return nil, err
		}
		ret, err := c.convert(t.Ret)
		if err != nil {
			return nil, err
		}
		return hm.NewFnType(arg, ret), nil

	case *ast.RecordType:
		fields := make([]RecordField, len(t.Fields))
		for i, f := range t.Fields {
			ft, err := c.convert(f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = RecordField{Label: f.Name.Name, Type: ft}
		}
		return &RecordType{Fields: fields}, nil

	case *ast.UnionType:
		alts := make([]UnionAlt, len(t.Alts))
		for i, a := range t.Alts {
			alts[i] = UnionAlt{Label: a.Name.Name}
			if a.Payload != nil {
				p, err := c.convert(a.Payload)
				if err != nil {
					return nil, err
				}
				alts[i].Payload = p
			}
		}
		return &UnionType{Alts: alts}, nil
	}
	return nil, fmt.Errorf("unknown type syntax %T", t)
}
