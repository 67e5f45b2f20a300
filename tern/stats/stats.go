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

// Package stats provides counters for key events during a Tern
// normalization.
package stats

import (
	"strings"
	"text/template"
)

// Counts holds counters for key events during a normalization.
type Counts struct {
	// Betas counts the number of closure instantiations, that is,
	// β-reductions performed.
	Betas int64

	// Deltas counts the number of builtin, operator, conditional, field
	// selection, and merge reductions (δ-reductions) that fired.
	// Reductions that fall back to a stuck term are not counted.
	Deltas int64

	// Lookups counts the number of environment lookups.
	Lookups int64

	// Quotes counts the number of value nodes read back by the quoter.
	Quotes int64
}

// Add adds the counters of other to c.
func (c *Counts) Add(other Counts) {
	c.Betas += other.Betas
	c.Deltas += other.Deltas
	c.Lookups += other.Lookups
	c.Quotes += other.Quotes
}

var stats = template.Must(template.New("stats").Parse(`Reductions: {{.Reductions}}
    Betas: {{.Betas}}
    Deltas: {{.Deltas}}

Lookups: {{.Lookups}}
Quotes:  {{.Quotes}}`))

// Reductions returns the total number of reductions performed.
func (c Counts) Reductions() int64 { return c.Betas + c.Deltas }

func (c Counts) String() string {
	var buf strings.Builder
	err := stats.Execute(&buf, c)
	if err != nil {
		panic(err)
	}
	return buf.String()
}
