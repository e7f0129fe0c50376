// Copyright 2025 The Filtro Authors
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

package filtro

// MatchContext is a cursor over a Request's path segments. It is the only
// mutable state a Filter touches while matching, and is cheap to clone: it
// is effectively a request pointer plus an index (spec.md §3).
//
// ⚠️ THREAD SAFETY: a MatchContext is bound to a single request and must
// only be driven by the goroutine handling that request. It never crosses
// goroutines; only the shared, read-only Request it borrows does.
type MatchContext struct {
	req    *Request
	cursor int
}

// NewMatchContext creates a context positioned at the first path segment of
// req.
func NewMatchContext(req *Request) *MatchContext {
	return &MatchContext{req: req, cursor: 0}
}

// Request returns the request this context is matching against.
func (c *MatchContext) Request() *Request { return c.req }

// PeekNext returns the current segment without advancing the cursor.
func (c *MatchContext) PeekNext() (string, bool) {
	return c.req.PathSegment(c.cursor)
}

// TakeNext returns the current segment and advances the cursor. This is the
// only primitive-level step that consumes a path segment.
func (c *MatchContext) TakeNext() (string, bool) {
	seg, ok := c.req.PathSegment(c.cursor)
	if !ok {
		return "", false
	}
	c.cursor++
	return seg, true
}

// IsExhausted reports whether the cursor has consumed every path segment.
func (c *MatchContext) IsExhausted() bool {
	return c.cursor == len(c.req.PathSegments())
}

// Cursor returns the current cursor position, primarily for tests that
// assert the cursor-safety invariant (spec.md §8).
func (c *MatchContext) Cursor() int { return c.cursor }

// Fork returns an independent copy of c. Or and Maybe use Fork to attempt a
// speculative sub-match without disturbing the parent cursor; the parent
// only adopts the fork's cursor via Restore on success.
func (c *MatchContext) Fork() *MatchContext {
	return &MatchContext{req: c.req, cursor: c.cursor}
}

// Restore adopts fork's cursor. Called after a speculative Fork succeeds.
func (c *MatchContext) Restore(fork *MatchContext) {
	c.cursor = fork.cursor
}

// snapshot and rewind implement the simpler save/restore-in-place pattern
// used by primitives that peek-and-advance without needing an independent
// context (spec.md §4.5): snapshot before a tentative consume, rewind on
// non-match.
func (c *MatchContext) snapshot() int { return c.cursor }

func (c *MatchContext) rewind(mark int) { c.cursor = mark }
