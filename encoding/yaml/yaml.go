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

// Package yaml converts concrete Tern values to YAML.
package yaml

import (
	"math"
	"strconv"

	goyaml "gopkg.in/yaml.v3"

	"ternlang.org/go/internal/core/adt"
	"ternlang.org/go/internal/core/debug"
	"ternlang.org/go/tern/errors"
	"ternlang.org/go/tern/literal"
	"ternlang.org/go/tern/token"
)

// Marshal renders a fully reduced value as YAML. Records encode as mappings
// in field order, preserving duplicate keys the way record iteration does.
//
// Values that are not concrete data (functions, bare alternatives, and
// stuck terms) cannot be encoded and produce an error identifying the
// offending part.
func Marshal(v adt.Value) ([]byte, error) {
	n, err := encode(v)
	if err != nil {
		return nil, err
	}
	return goyaml.Marshal(n)
}

func encode(v adt.Value) (*goyaml.Node, error) {
	switch v := v.(type) {
	case *adt.Null:
		return scalar("!!null", "null"), nil

	case *adt.Bool:
		return scalar("!!bool", strconv.FormatBool(v.B)), nil

	case *adt.Natural:
		return scalar("!!int", literal.Natural(v.N)), nil

	case *adt.Integer:
		return scalar("!!int", strconv.FormatInt(v.I, 10)), nil

	case *adt.Double:
		if math.IsNaN(v.F) || math.IsInf(v.F, 0) {
			return nil, errors.Newf(token.Position{}, "yaml: unsupported double value %v", v.F)
		}
		return scalar("!!float", literal.Double(v.F)), nil

	case *adt.String:
		n := &goyaml.Node{Kind: goyaml.ScalarNode}
		n.SetString(v.Str)
		return n, nil

	case *adt.List:
		n := &goyaml.Node{Kind: goyaml.SequenceNode}
		for _, e := range v.Elems {
			c, err := encode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil

	case *adt.Record:
		n := &goyaml.Node{Kind: goyaml.MappingNode}
		for _, a := range v.Arcs {
			k := &goyaml.Node{Kind: goyaml.ScalarNode}
			k.SetString(a.Label)
			c, err := encode(a.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, k, c)
		}
		return n, nil
	}
	return nil, errors.Newf(token.Position{},
		"yaml: cannot encode %s value %s", v.Kind(), debug.NodeString(v))
}

func scalar(tag, value string) *goyaml.Node {
	return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tag, Value: value}
}
