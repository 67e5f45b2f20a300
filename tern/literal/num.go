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

// Package literal implements conversions between Tern literal text and the
// scalar values they represent, as well as the canonical renderings of those
// scalars.
//
// The renderings defined here are the single source of truth for how scalars
// print: the formatter, the JSON encoder, and the Double/show builtin all go
// through them.
package literal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// NumInfo contains the parsed form of a numeric literal. It distinguishes
// the three numeric scalar classes of the language by the literal's shape:
// a leading sign makes an Integer, a fraction or exponent makes a Double,
// and bare digits make a Natural.
type NumInfo struct {
	src     string
	neg     bool
	signed  bool // literal carried an explicit + or -
	isFloat bool // literal carried a fraction or exponent

	dec apd.Decimal
}

// ParseNum parses s as a Tern numeric literal.
func ParseNum(s string) (*NumInfo, error) {
	info := &NumInfo{src: s}
	switch {
	case s == "":
		return nil, fmt.Errorf("empty number literal")
	case s[0] == '+' || s[0] == '-':
		info.signed = true
		info.neg = s[0] == '-'
	}
	if strings.ContainsAny(s, ".eE") {
		info.isFloat = true
	}
	if _, _, err := info.dec.SetString(s); err != nil {
		return nil, fmt.Errorf("invalid number literal %q", s)
	}
	return info, nil
}

// IsDouble reports whether the literal denotes a Double scalar.
func (p *NumInfo) IsDouble() bool { return p.isFloat }

// IsInteger reports whether the literal denotes an Integer scalar.
func (p *NumInfo) IsInteger() bool { return p.signed && !p.isFloat }

// IsNatural reports whether the literal denotes a Natural scalar.
func (p *NumInfo) IsNatural() bool { return !p.signed && !p.isFloat }

// Natural returns the literal's value as a Natural.
func (p *NumInfo) Natural() (uint64, error) {
	if !p.IsNatural() {
		return 0, fmt.Errorf("%q is not a natural literal", p.src)
	}
	if v, err := p.dec.Int64(); err == nil {
		return uint64(v), nil
	}
	// Naturals in (maxInt64, maxUint64] are not representable through
	// apd's Int64 accessor.
	v, err := strconv.ParseUint(p.src, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("natural literal %q out of range", p.src)
	}
	return v, nil
}

// Integer returns the literal's value as an Integer.
func (p *NumInfo) Integer() (int64, error) {
	if p.isFloat {
		return 0, fmt.Errorf("%q is not an integer literal", p.src)
	}
	v, err := p.dec.Int64()
	if err != nil {
		return 0, fmt.Errorf("integer literal %q out of range", p.src)
	}
	return v, nil
}

// Double returns the literal's value as a Double. Values beyond the range
// of float64 are reported as an error, as apd's conversion reports them.
func (p *NumInfo) Double() (float64, error) {
	v, err := p.dec.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid double literal %q", p.src)
	}
	return v, nil
}

// String returns the literal text as it appeared in the source.
func (p *NumInfo) String() string { return p.src }

// Canonical renderings.

// Natural renders a Natural scalar in canonical form: plain decimal.
func Natural(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Integer renders an Integer scalar in canonical form: decimal with an
// explicit sign, so +4 and -3, and +0 for zero.
func Integer(v int64) string {
	if v < 0 {
		return strconv.FormatInt(v, 10)
	}
	return "+" + strconv.FormatUint(uint64(v), 10)
}

// Double renders a Double scalar in canonical form: the shortest decimal
// representation that round-trips through float64, with a fraction part
// forced so the result remains recognizable as a Double (1.0, not 1).
func Double(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		// No fraction, exponent, Inf, or NaN: force a fraction.
		s += ".0"
	}
	return s
}
