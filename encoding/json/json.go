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

// Package json converts concrete Tern values to JSON.
package json

import (
	"bytes"
	gojson "encoding/json"
	"math"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/debug"
	"ternlang.org/go/tern/errors"
	"ternlang.org/go/tern/literal"
	"ternlang.org/go/tern/token"
)

// Marshal renders a fully reduced value as JSON. Records encode as objects
// in field order, preserving duplicate keys the way record iteration does.
//
// Values that are not concrete data (functions, bare alternatives, and
// stuck terms) cannot be encoded and produce an error identifying the
// offending part.
func Marshal(v adt.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v adt.Value) error {
	switch v := v.(type) {
	case *adt.Null:
		buf.WriteString("null")

	case *adt.Bool:
		if v.B {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case *adt.Natural:
		buf.WriteString(literal.Natural(v.N))

	case *adt.Integer:
		// JSON numbers carry no explicit positive sign.
		s := literal.Integer(v.I)
		if s[0] == '+' {
			s = s[1:]
		}
		buf.WriteString(s)

	case *adt.Double:
		if math.IsNaN(v.F) || math.IsInf(v.F, 0) {
			return errors.Newf(token.Position{}, "json: unsupported double value %v", v.F)
		}
		buf.WriteString(literal.Double(v.F))

	case *adt.String:
		b, err := gojson.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(b)

	case *adt.List:
		buf.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case *adt.Record:
		buf.WriteByte('{')
		for i, a := range v.Arcs {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := gojson.Marshal(a.Label)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := encode(buf, a.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	default:
		return errors.Newf(token.Position{},
			"json: cannot encode %s value %s", v.Kind(), debug.NodeString(v))
	}
	return nil
}
