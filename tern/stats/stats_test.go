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

package stats

import (
	"strings"
	"testing"
)

func TestCounts(t *testing.T) {
	c := Counts{Betas: 2, Deltas: 3, Lookups: 5}
	c.Add(Counts{Betas: 1, Quotes: 4})

	if got := c.Reductions(); got != 6 {
		t.Errorf("reductions: got %d, want 6", got)
	}
	s := c.String()
	for _, want := range []string{"Reductions: 6", "Betas: 3", "Deltas: 3", "Lookups: 5", "Quotes:  4"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q missing %q", s, want)
		}
	}
}
