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

package yaml_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"ternlang.org/go/encoding/yaml"
	"ternlang.org/go/internal/core/adt"
)

func TestMarshal(t *testing.T) {
	testCases := []struct {
		name string
		in   adt.Value
		want string
	}{
		{"null", &adt.Null{}, "null\n"},
		{"bool", &adt.Bool{B: true}, "true\n"},
		{"natural", &adt.Natural{N: 42}, "42\n"},
		{"integer", &adt.Integer{I: -3}, "-3\n"},
		{"double", &adt.Double{F: 1.5}, "1.5\n"},
		{"string", &adt.String{Str: "hello"}, "hello\n"},
		{"stringQuoted", &adt.String{Str: "true"}, "\"true\"\n"},
		{"list", &adt.List{Elems: []adt.Value{
			&adt.Natural{N: 1},
			&adt.Natural{N: 2},
		}}, "- 1\n- 2\n"},
		{"record", &adt.Record{Arcs: []adt.Arc{
			{Label: "a", Value: &adt.Natural{N: 1}},
			{Label: "b", Value: &adt.String{Str: "x"}},
		}}, "a: 1\nb: x\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := yaml.Marshal(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(b), tc.want))
		})
	}
}

func TestMarshalNotConcrete(t *testing.T) {
	_, err := yaml.Marshal(&adt.Var{Name: "y", Index: -1})
	qt.Assert(t, qt.IsNotNil(err))

	_, err = yaml.Marshal(&adt.Record{Arcs: []adt.Arc{
		{Label: "f", Value: &adt.Closure{Label: "x", Body: &adt.Var{Name: "x"}}},
	}})
	qt.Assert(t, qt.IsNotNil(err))
}
