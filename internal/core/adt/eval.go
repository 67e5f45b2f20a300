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

import (
	"ternlang.org/go/tern/literal"
)

// Eval reduces x under env to β- and δ-normal form. It never fails:
// sub-terms that cannot reduce become neutral values.
func (c *OpContext) Eval(env *Environment, x Expr) Value {
	switch x := x.(type) {
	case *Var:
		return c.lookup(env, x)

	case *Lambda:
		return &Closure{Label: x.Label, Env: env, Body: x.Body}

	case *Apply:
		fun := c.Eval(env, x.Fun)
		arg := c.Eval(env, x.Arg)
		return c.applySpine(fun, arg)

	case *Annotation:
		return c.Eval(env, x.X)

	case *Let:
		for _, b := range x.Bindings {
			env = env.Bind(b.Label, c.Eval(env, b.X))
		}
		return c.Eval(env, x.Body)

	case *ListLit:
		elems := make([]Value, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = c.Eval(env, e)
		}
		return &List{Elems: elems}

	case *RecordLit:
		arcs := make([]Arc, len(x.Fields))
		for i, f := range x.Fields {
			arcs[i] = Arc{Label: f.Label, Value: c.Eval(env, f.X)}
		}
		return &Record{Arcs: arcs}

	case *SelectorExpr:
		return c.selectField(c.Eval(env, x.X), x.Sel)

	case *MergeExpr:
		return &Merge{X: c.Eval(env, x.X)}

	case *IfExpr:
		cond := c.Eval(env, x.Cond)
		if b, ok := cond.(*Bool); ok {
			c.stats.Deltas++
			if b.B {
				return c.Eval(env, x.Then)
			}
			return c.Eval(env, x.Else)
		}
		return &If{
			Cond: cond,
			Then: c.Eval(env, x.Then),
			Else: c.Eval(env, x.Else),
		}

	case *BinaryExpr:
		return c.BinOp(x.Op, c.Eval(env, x.X), c.Eval(env, x.Y))

	case *Embed:
		return x.Value

	case Value:
		// Scalars, builtins, alternatives, and any pre-evaluated value
		// evaluate to themselves.
		return x
	}
	panic("adt: unknown expression")
}

// lookup resolves a variable occurrence per the surface index convention:
// the index selects among bindings of the same name, innermost first. If
// the environment is exhausted with residual index r, the variable is free
// and is encoded as index -r-1 (see Var).
func (c *OpContext) lookup(env *Environment, x *Var) Value {
	c.stats.Lookups++
	idx := x.Index
	for e := env; e != nil; e = e.Up {
		if e.Label != x.Name {
			continue
		}
		if idx == 0 {
			return e.Value
		}
		idx--
	}
	return &Var{Name: x.Name, Index: -idx - 1}
}

// selectField projects a field out of a record value, first match winning.
// Anything else is stuck.
func (c *OpContext) selectField(v Value, label string) Value {
	if r, ok := v.(*Record); ok {
		if fv, ok := r.Lookup(label); ok {
			c.stats.Deltas++
			return fv
		}
	}
	return &Sel{X: v, Sel: label}
}

// instantiate enters a closure body with the parameter bound to arg. This
// is the only way a closure body becomes a value.
func (c *OpContext) instantiate(cl *Closure, arg Value) Value {
	c.stats.Betas++
	return c.Eval(cl.Env.Bind(cl.Label, arg), cl.Body)
}

// apply performs plain application: β-reduce into a closure, or get stuck.
// Builtin δ-rules live in applySpine, not here, so that saturated spines
// are inspected in one step.
func (c *OpContext) apply(fun, arg Value) Value {
	if cl, ok := fun.(*Closure); ok {
		return c.instantiate(cl, arg)
	}
	return &App{Fun: fun, Arg: arg}
}

// applySpine dispatches an application whose function and argument are
// already evaluated. The δ-rules below are tried in order; the first match
// wins, and plain application is the fallback.
func (c *OpContext) applySpine(fun, arg Value) Value {
	switch f := fun.(type) {
	case *Merge:
		// Sum elimination: merge handlers (Tag payload).
		if r, ok := f.X.(*Record); ok {
			if app, ok := arg.(*App); ok {
				if alt, ok := app.Fun.(*Alternative); ok {
					if handler, ok := r.Lookup(alt.Name); ok {
						c.stats.Deltas++
						return c.apply(handler, app.Arg)
					}
				}
			}
		}

	case *Builtin:
		switch f.ID {
		case ListLength:
			if l, ok := arg.(*List); ok {
				c.stats.Deltas++
				return &Natural{N: uint64(len(l.Elems))}
			}

		case IntegerEven, IntegerOdd:
			if i, ok := integerOperand(arg); ok {
				c.stats.Deltas++
				even := i%2 == 0
				if f.ID == IntegerOdd {
					even = !even
				}
				return &Bool{B: even}
			}

		case DoubleShow:
			switch a := arg.(type) {
			case *Natural:
				c.stats.Deltas++
				return &String{Str: literal.Natural(a.N)}
			case *Integer:
				c.stats.Deltas++
				return &String{Str: literal.Integer(a.I)}
			case *Double:
				c.stats.Deltas++
				return &String{Str: literal.Double(a.F)}
			}
		}

	case *App:
		switch g := f.Fun.(type) {
		case *Builtin:
			// List/map g applied to a list.
			if g.ID == ListMap {
				if l, ok := arg.(*List); ok {
					c.stats.Deltas++
					elems := make([]Value, len(l.Elems))
					for i, e := range l.Elems {
						elems[i] = c.apply(f.Arg, e)
					}
					return &List{Elems: elems}
				}
			}

		case *App:
			if b, ok := g.Fun.(*Builtin); ok {
				switch b.ID {
				case ListFold:
					// List/fold list cons applied to the nil accumulator.
					// The fold is a loop with a strict accumulator: the
					// elements are consumed first to last.
					if l, ok := g.Arg.(*List); ok {
						c.stats.Deltas++
						acc := arg
						for _, e := range l.Elems {
							acc = c.apply(c.apply(f.Arg, e), acc)
						}
						return acc
					}

				case NaturalFold:
					// Natural/fold n succ applied to the zero value.
					if n, ok := g.Arg.(*Natural); ok {
						c.stats.Deltas++
						acc := arg
						for i := uint64(0); i < n.N; i++ {
							acc = c.apply(f.Arg, acc)
						}
						return acc
					}
				}
			}
		}
	}
	return c.apply(fun, arg)
}

// integerOperand extracts the integral value of an Integer or Natural
// operand; the Integer/even and Integer/odd builtins accept both.
func integerOperand(v Value) (int64, bool) {
	switch v := v.(type) {
	case *Integer:
		return v.I, true
	case *Natural:
		return int64(v.N), true
	}
	return 0, false
}
