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

package literal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseNum(t *testing.T) {
	testCases := []struct {
		lit     string
		natural bool
		integer bool
		double  bool
	}{
		{lit: "0", natural: true},
		{lit: "42", natural: true},
		{lit: "18446744073709551615", natural: true},
		{lit: "+7", integer: true},
		{lit: "-7", integer: true},
		{lit: "+0", integer: true},
		{lit: "1.5", double: true},
		{lit: "-0.5", double: true},
		{lit: "1e10", double: true},
		{lit: "2.5E-3", double: true},
	}
	for _, tc := range testCases {
		t.Run(tc.lit, func(t *testing.T) {
			n, err := ParseNum(tc.lit)
			qt.Assert(t, qt.IsNil(err))
			qt.Check(t, qt.Equals(n.IsNatural(), tc.natural))
			qt.Check(t, qt.Equals(n.IsInteger(), tc.integer))
			qt.Check(t, qt.Equals(n.IsDouble(), tc.double))
		})
	}
}

func TestNumValues(t *testing.T) {
	n, err := ParseNum("18446744073709551615")
	qt.Assert(t, qt.IsNil(err))
	v, err := n.Natural()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, uint64(18446744073709551615)))

	n, err = ParseNum("-42")
	qt.Assert(t, qt.IsNil(err))
	i, err := n.Integer()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(i, int64(-42)))

	n, err = ParseNum("2.5E-3")
	qt.Assert(t, qt.IsNil(err))
	f, err := n.Double()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f, 0.0025))

	_, err = ParseNum("")
	qt.Assert(t, qt.IsNotNil(err))
	_, err = ParseNum("12a")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestRender(t *testing.T) {
	qt.Assert(t, qt.Equals(Natural(0), "0"))
	qt.Assert(t, qt.Equals(Natural(42), "42"))

	qt.Assert(t, qt.Equals(Integer(4), "+4"))
	qt.Assert(t, qt.Equals(Integer(0), "+0"))
	qt.Assert(t, qt.Equals(Integer(-3), "-3"))

	qt.Assert(t, qt.Equals(Double(1.5), "1.5"))
	qt.Assert(t, qt.Equals(Double(1), "1.0"))
	qt.Assert(t, qt.Equals(Double(-2), "-2.0"))
	qt.Assert(t, qt.Equals(Double(0.0025), "0.0025"))
	qt.Assert(t, qt.Equals(Double(1e21), "1e+21"))
}
