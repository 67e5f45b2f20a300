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

// Package types defines the internal representation of Tern types and the
// existential-variable bookkeeping used by type inference.
//
// Types build on the Hindley-Milner primitives of github.com/chewxy/hm:
// unsolved existentials are hm type variables, function types are
// hm.FunctionType, and the scalar, list, record, and union types of the
// language are custom hm.Type implementations. A Context tracks allocation
// and solution of existentials; Resolve substitutes solutions back into a
// type.
package types

import (
	"fmt"
	"strings"

	"github.com/chewxy/hm"
)

// Type is the representation used for Tern types. It is hm's type
// interface; concrete values are ScalarType, *ListType, *RecordType,
// *UnionType, *hm.FunctionType, or an hm.TypeVariable for an unsolved
// existential.
type Type = hm.Type

// A ScalarType is one of the scalar types of the language.
type ScalarType string

const (
	BoolType    ScalarType = "Bool"
	NaturalType ScalarType = "Natural"
	IntegerType ScalarType = "Integer"
	DoubleType  ScalarType = "Double"
	TextType    ScalarType = "Text"
)

func (t ScalarType) Name() string                                   { return string(t) }
func (t ScalarType) Apply(hm.Subs) hm.Substitutable                 { return t }
func (t ScalarType) FreeTypeVar() hm.TypeVarSet                    { return nil }
func (t ScalarType) Normalize(hm.TypeVarSet, hm.TypeVarSet) (Type, error) { return t, nil }
func (t ScalarType) Types() hm.Types                                { return nil }
func (t ScalarType) String() string                                 { return string(t) }
func (t ScalarType) Format(s fmt.State, c rune)                     { fmt.Fprint(s, string(t)) }

func (t ScalarType) Eq(other Type) bool {
	o, ok := other.(ScalarType)
	return ok && o == t
}

// A ListType is the type of homogeneous lists.
type ListType struct {
	Elem Type
}

func (t *ListType) Name() string { return "List" }

func (t *ListType) Apply(subs hm.Subs) hm.Substitutable {
	return &ListType{Elem: t.Elem.Apply(subs).(Type)}
}

func (t *ListType) FreeTypeVar() hm.TypeVarSet { return t.Elem.FreeTypeVar() }

func (t *ListType) Normalize(k, v hm.TypeVarSet) (Type, error) {
	e, err := t.Elem.Normalize(k, v)
	if err != nil {
		return nil, err
	}
	return &ListType{Elem: e}, nil
}

func (t *ListType) Types() hm.Types { return hm.Types{t.Elem} }

func (t *ListType) Eq(other Type) bool {
	o, ok := other.(*ListType)
	return ok && t.Elem.Eq(o.Elem)
}

func (t *ListType) String() string             { return fmt.Sprintf("List %v", t.Elem) }
func (t *ListType) Format(s fmt.State, c rune) { fmt.Fprint(s, t.String()) }

// A RecordField is a single labeled field of a RecordType.
type RecordField struct {
	Label string
	Type  Type
}

// A RecordType is the type of records. Field order is significant for
// printing but not for equality.
type RecordType struct {
	Fields []RecordField
}

func (t *RecordType) Name() string { return "Record" }

func (t *RecordType) Apply(subs hm.Subs) hm.Substitutable {
	fields := make([]RecordField, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = RecordField{Label: f.Label, Type: f.Type.Apply(subs).(Type)}
	}
	return &RecordType{Fields: fields}
}

func (t *RecordType) FreeTypeVar() hm.TypeVarSet {
	var set hm.TypeVarSet
	for _, f := range t.Fields {
		set = set.Union(f.Type.FreeTypeVar())
	}
	return set
}

func (t *RecordType) Normalize(k, v hm.TypeVarSet) (Type, error) {
	fields := make([]RecordField, len(t.Fields))
	for i, f := range t.Fields {
		ft, err := f.Type.Normalize(k, v)
		if err != nil {
			return nil, err
		}
		fields[i] = RecordField{Label: f.Label, Type: ft}
	}
	return &RecordType{Fields: fields}, nil
}

func (t *RecordType) Types() hm.Types {
	ts := make(hm.Types, len(t.Fields))
	for i, f := range t.Fields {
		ts[i] = f.Type
	}
	return ts
}

func (t *RecordType) Eq(other Type) bool {
	o, ok := other.(*RecordType)
	if !ok || len(o.Fields) != len(t.Fields) {
		return false
	}
	for _, f := range t.Fields {
		found := false
		for _, g := range o.Fields {
			if g.Label == f.Label && f.Type.Eq(g.Type) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (t *RecordType) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Label, f.Type)
	}
	b.WriteString(" }")
	return b.String()
}

func (t *RecordType) Format(s fmt.State, c rune) { fmt.Fprint(s, t.String()) }

// A UnionAlt is a single alternative of a UnionType. Payload is nil for
// nullary alternatives.
type UnionAlt struct {
	Label   string
	Payload Type
}

// A UnionType is an anonymous sum type.
type UnionType struct {
	Alts []UnionAlt
}

func (t *UnionType) Name() string { return "Union" }

func (t *UnionType) Apply(subs hm.Subs) hm.Substitutable {
	alts := make([]UnionAlt, len(t.Alts))
	for i, a := range t.Alts {
		alts[i] = a
		if a.Payload != nil {
			alts[i].Payload = a.Payload.Apply(subs).(Type)
		}
	}
	return &UnionType{Alts: alts}
}

func (t *UnionType) FreeTypeVar() hm.TypeVarSet {
	var set hm.TypeVarSet
	for _, a := range t.Alts {
		if a.Payload != nil {
			set = set.Union(a.Payload.FreeTypeVar())
		}
	}
	return set
}

func (t *UnionType) Normalize(k, v hm.TypeVarSet) (Type, error) {
	alts := make([]UnionAlt, len(t.Alts))
	for i, a := range t.Alts {
		alts[i] = a
		if a.Payload != nil {
			p, err := a.Payload.Normalize(k, v)
			if err != nil {
				return nil, err
			}
			alts[i].Payload = p
		}
	}
	return &UnionType{Alts: alts}, nil
}

func (t *UnionType) Types() hm.Types {
	var ts hm.Types
	for _, a := range t.Alts {
		if a.Payload != nil {
			ts = append(ts, a.Payload)
		}
	}
	return ts
}

func (t *UnionType) Eq(other Type) bool {
	o, ok := other.(*UnionType)
	if !ok || len(o.Alts) != len(t.Alts) {
		return false
	}
	for i, a := range t.Alts {
		b := o.Alts[i]
		if a.Label != b.Label {
			return false
		}
		switch {
		case a.Payload == nil && b.Payload == nil:
		case a.Payload == nil || b.Payload == nil:
			return false
		case !a.Payload.Eq(b.Payload):
			return false
		}
	}
	return true
}

func (t *UnionType) String() string {
	var b strings.Builder
	b.WriteString("< ")
	for i, a := range t.Alts {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(a.Label)
		if a.Payload != nil {
			fmt.Fprintf(&b, " : %v", a.Payload)
		}
	}
	b.WriteString(" >")
	return b.String()
}

func (t *UnionType) Format(s fmt.State, c rune) { fmt.Fprint(s, t.String()) }

// NullType is the type of the null scalar. It is represented as its own
// scalar type.
const NullType ScalarType = "Null"
