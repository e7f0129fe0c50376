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

// This file implements spec.md §9's Combine family. The spec describes a
// single overloaded `and` that flattens (L ++ R) for tuple-shaped operands.
// Go has no variadic/heterogeneous tuples and no generic methods that
// introduce a new type parameter, so the family is spelled out as four
// distinctly named free functions, chosen by the caller according to which
// side (if either) is Unit:
//
//	AndL(l, r)  — keep l's extract, discard r's (r must extract Unit)
//	AndR(l, r)  — keep r's extract, discard l's (l must extract Unit)
//	And(l, r)   — combine two non-Unit extracts into a Pair
//	And3(p, r)  — extend an existing Pair with one more value into a Triple
//
// Each of these four runs its left operand first, then its right, left to
// right, and never runs the right operand unless the left already matched
// — spec.md §4.4's determinism and ordering rules. Each one
// also snapshots the cursor before running the left operand and rewinds to
// that mark if the right operand then fails, so a successful-but-discarded
// left match never leaks a partial cursor advance past a failed And —
// spec.md §4.4's "on B's failure, must also restore the cursor to the
// pre-A position" and §8's cursor-safety invariant.

// AndL combines l and r, keeping l's extracted value. Use this when r's
// extract type is Unit, e.g. a Method filter trailed by a Path.
func AndL[A any](l Filter[A], r Filter[Unit]) Filter[A] {
	return newFilter(func(c *MatchContext) (A, bool) {
		var zero A
		mark := c.snapshot()
		lv, ok := l.Match(c)
		if !ok {
			return zero, false
		}
		if _, ok := r.Match(c); !ok {
			c.rewind(mark)
			return zero, false
		}
		return lv, true
	})
}

// AndR combines l and r, keeping r's extracted value. Use this when l's
// extract type is Unit, e.g. Method("GET") trailed by a PathParam.
func AndR[B any](l Filter[Unit], r Filter[B]) Filter[B] {
	return newFilter(func(c *MatchContext) (B, bool) {
		var zero B
		mark := c.snapshot()
		if _, ok := l.Match(c); !ok {
			return zero, false
		}
		rv, ok := r.Match(c)
		if !ok {
			c.rewind(mark)
			return zero, false
		}
		return rv, true
	})
}

// And combines two filters whose extract types are both meaningful into a
// Pair, per spec.md §9's arity-2 case.
func And[A, B any](l Filter[A], r Filter[B]) Filter[Pair[A, B]] {
	return newFilter(func(c *MatchContext) (Pair[A, B], bool) {
		var zero Pair[A, B]
		mark := c.snapshot()
		lv, ok := l.Match(c)
		if !ok {
			return zero, false
		}
		rv, ok := r.Match(c)
		if !ok {
			c.rewind(mark)
			return zero, false
		}
		return Pair[A, B]{First: lv, Second: rv}, true
	})
}

// And3 extends an existing Pair-valued filter with one more filter's
// extract, flattening into a Triple rather than nesting a Pair inside a
// Pair — spec.md §9's arity-3 flattening requirement.
func And3[A, B, C any](l Filter[Pair[A, B]], r Filter[C]) Filter[Triple[A, B, C]] {
	return newFilter(func(c *MatchContext) (Triple[A, B, C], bool) {
		var zero Triple[A, B, C]
		mark := c.snapshot()
		lv, ok := l.Match(c)
		if !ok {
			return zero, false
		}
		rv, ok := r.Match(c)
		if !ok {
			c.rewind(mark)
			return zero, false
		}
		return Triple[A, B, C]{First: lv.First, Second: lv.Second, Third: rv}, true
	})
}

// Or tries l first; if l matches, the result is LeftOf(l's value) and r is
// never attempted. If l does not match, c is exactly as l found it (cursor
// safety), and r is tried against that same starting point. If r matches,
// the result is RightOf(r's value). If neither matches, c is left unchanged
// and Or reports no match.
//
// Left-branch priority and r's independence from any partial progress l
// made are both required by spec.md §4.4 and §8; they are why Or forks c
// for the left attempt instead of running l directly against c.
func Or[L, R any](l Filter[L], r Filter[R]) Filter[Either[L, R]] {
	return newFilter(func(c *MatchContext) (Either[L, R], bool) {
		var zero Either[L, R]
		fork := c.Fork()
		if lv, ok := l.Match(fork); ok {
			c.Restore(fork)
			return LeftOf[L, R](lv), true
		}
		fork = c.Fork()
		if rv, ok := r.Match(fork); ok {
			c.Restore(fork)
			return RightOf[L, R](rv), true
		}
		return zero, false
	})
}

// Map transforms a matching filter's extracted value with fn, producing a
// filter over the new type B. Map never changes whether the filter matches,
// only what it extracts on success — it is how a route's extract value
// becomes the argument to a handler function, and ultimately a Response.
//
// Named as a free function, not a method, because it introduces a new type
// parameter B (see DESIGN.md).
func Map[A, B any](f Filter[A], fn func(A) B) Filter[B] {
	return newFilter(func(c *MatchContext) (B, bool) {
		var zero B
		av, ok := f.Match(c)
		if !ok {
			return zero, false
		}
		return fn(av), true
	})
}

// Maybe makes f optional: if f matches, Maybe matches too and extracts
// Some(value); if f does not match, Maybe still matches — consuming nothing
// — and extracts None. Like Or, the attempt is forked so a failed f never
// leaves a partial cursor advance behind.
func Maybe[A any](f Filter[A]) Filter[Option[A]] {
	return newFilter(func(c *MatchContext) (Option[A], bool) {
		fork := c.Fork()
		if av, ok := f.Match(fork); ok {
			c.Restore(fork)
			return Some(av), true
		}
		return None[A](), true
	})
}
