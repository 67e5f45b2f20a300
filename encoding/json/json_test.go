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

package json_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"ternlang.org/go/encoding/json"
	"ternlang.org/go/internal/core/adt"
)

func TestMarshal(t *testing.T) {
	testCases := []struct {
		name string
		in   adt.Value
		want string
	}{
		{"null", &adt.Null{}, `null`},
		{"bool", &adt.Bool{B: true}, `true`},
		{"natural", &adt.Natural{N: 42}, `42`},
		{"integer", &adt.Integer{I: -3}, `-3`},
		{"integerPositive", &adt.Integer{I: 3}, `3`},
		{"double", &adt.Double{F: 1.5}, `1.5`},
		{"doubleWhole", &adt.Double{F: 2}, `2.0`},
		{"string", &adt.String{Str: "a\"b"}, `"a\"b"`},
		{"list", &adt.List{Elems: []adt.Value{
			&adt.Natural{N: 1}, &adt.String{Str: "x"},
		}}, `[1,"x"]`},
		{"record", &adt.Record{Arcs: []adt.Arc{
			{Label: "a", Value: &adt.Natural{N: 1}},
			{Label: "b", Value: &adt.Bool{B: false}},
		}}, `{"a":1,"b":false}`},
		{"recordDuplicates", &adt.Record{Arcs: []adt.Arc{
			{Label: "a", Value: &adt.Natural{N: 1}},
			{Label: "a", Value: &adt.Natural{N: 2}},
		}}, `{"a":1,"a":2}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(b), tc.want))
		})
	}
}

func TestMarshalNotConcrete(t *testing.T) {
	testCases := []struct {
		name string
		in   adt.Value
	}{
		{"freeVariable", &adt.Var{Name: "y", Index: -1}},
		{"closure", &adt.Closure{Label: "x", Body: &adt.Var{Name: "x"}}},
		{"stuckInList", &adt.List{Elems: []adt.Value{
			&adt.App{Fun: &adt.Var{Name: "f", Index: -1}, Arg: &adt.Natural{N: 1}},
		}}},
		{"alternative", &adt.Alternative{Name: "Left"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := json.Marshal(tc.in)
			qt.Assert(t, qt.IsNotNil(err))
		})
	}
}
