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

package adt

import "ternlang.org/go/tern/stats"

// An OpContext threads bookkeeping through evaluation and readback. It
// holds no semantic state: two contexts given the same inputs produce the
// same results, and a context may be reused across calls to accumulate
// statistics.
type OpContext struct {
	stats stats.Counts
}

// NewContext creates an OpContext.
func NewContext() *OpContext {
	return &OpContext{}
}

// Stats reports the accumulated counters of all operations run through
// this context.
func (c *OpContext) Stats() stats.Counts {
	return c.stats
}
