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

func TestQuote(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{``, `""`},
		{`hello`, `"hello"`},
		{"a\nb", `"a\nb"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"\t\r", `"\t\r"`},
		{"\x01", `"\u0001"`},
		{"héllo", `"héllo"`},
	}
	for _, tc := range testCases {
		t.Run(tc.out, func(t *testing.T) {
			qt.Assert(t, qt.Equals(Quote(tc.in), tc.out))
		})
	}
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		in   string
		out  string
		err  bool
	}{
		{in: `""`, out: ""},
		{in: `"hello"`, out: "hello"},
		{in: `"a\nb"`, out: "a\nb"},
		{in: `"say \"hi\""`, out: `say "hi"`},
		{in: `"a\/b"`, out: "a/b"},
		{in: `"\u0041"`, out: "A"},
		{in: `"\ud83d\ude00"`, out: "😀"},
		{in: `"\b\f\t\r"`, out: "\b\f\t\r"},
		{in: `"héllo"`, out: "héllo"},
		{in: `"\q"`, err: true},
		{in: `"\u00"`, err: true},
		{in: `"unterminated`, err: true},
		{in: `noquotes`, err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Unquote(tc.in)
			if tc.err {
				qt.Assert(t, qt.IsNotNil(err))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tc.out))
		})
	}
}

// TestQuoteRoundTrip checks that Unquote inverts Quote.
func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "with \"quotes\"", "tabs\tand\nnewlines", "unicode héllo 😀", "\x01\x1f"} {
		got, err := Unquote(Quote(s))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, s))
	}
}
