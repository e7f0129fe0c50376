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

import "strings"

// Filter[E] is a request matcher that, on success, extracts a value of type
// E. It is the single abstraction spec.md builds everything on: primitives
// (Method, Path, PathParam, Header, End) and combinators (And, Or, Map,
// Maybe) are all Filter[E] for some E.
//
// Go has no generic methods that introduce a new type parameter, so only
// operations whose result stays in E live as methods on Filter[E] (Path,
// for fluent chaining). Operations like And, Or, Map, and Param that need a
// second type parameter are free functions instead (see DESIGN.md).
type Filter[E any] struct {
	match func(c *MatchContext) (E, bool)
}

// Match runs the filter against c, returning the extracted value and
// whether the filter matched. Per spec.md §4.3's cursor-safety invariant,
// every Filter implementation in this package leaves c's cursor exactly
// where it found it when it returns false.
func (f Filter[E]) Match(c *MatchContext) (E, bool) {
	return f.match(c)
}

// Path chains a path-literal match onto f, keeping f's extract type (Path
// contributes nothing to it). This is the one combinator that can remain a
// true fluent method, since it does not introduce a new type parameter.
func (f Filter[E]) Path(literal string) Filter[E] {
	return AndL(f, PathLit(literal))
}

// newFilter is an unexported constructor used throughout this file so that
// every primitive and combinator is built the same way.
func newFilter[E any](match func(c *MatchContext) (E, bool)) Filter[E] {
	return Filter[E]{match: match}
}

// Always is the zero-cost filter that matches any request and consumes no
// path segments, extracting Unit. It is the identity element for And: for
// any f, AndR(Always(), f) and f behave the same.
func Always() Filter[Unit] {
	return newFilter(func(c *MatchContext) (Unit, bool) {
		return Unit{}, true
	})
}

// Method matches a request whose HTTP method equals name (case-sensitive;
// NewRequest already upper-cased it), consuming no path segments.
func Method(name string) Filter[Unit] {
	return newFilter(func(c *MatchContext) (Unit, bool) {
		if c.Request().Method() != name {
			return Unit{}, false
		}
		return Unit{}, true
	})
}

// Get is sugar for Method("GET").Path(literal).
func Get(literal string) Filter[Unit] {
	return Method("GET").Path(literal)
}

// Post is sugar for Method("POST").Path(literal).
func Post(literal string) Filter[Unit] {
	return Method("POST").Path(literal)
}

// Put is sugar for Method("PUT").Path(literal).
func Put(literal string) Filter[Unit] {
	return Method("PUT").Path(literal)
}

// Delete is sugar for Method("DELETE").Path(literal).
func Delete(literal string) Filter[Unit] {
	return Method("DELETE").Path(literal)
}

// Patch is sugar for Method("PATCH").Path(literal).
func Patch(literal string) Filter[Unit] {
	return Method("PATCH").Path(literal)
}

// PathLit matches one or more literal path segments. literal is itself
// split and normalized the same way a request path is, so PathLit("a/b")
// matches two segments, "a" then "b" — spec.md §4.1's normalization rules
// apply symmetrically to filters and requests.
func PathLit(literal string) Filter[Unit] {
	segments := splitPath(literal)
	return newFilter(func(c *MatchContext) (Unit, bool) {
		mark := c.snapshot()
		for _, want := range segments {
			got, ok := c.TakeNext()
			if !ok || got != want {
				c.rewind(mark)
				return Unit{}, false
			}
		}
		return Unit{}, true
	})
}

// Path is a free-function alias for PathLit, for call sites that read
// better as filtro.Path("users") than filtro.PathLit("users").
func Path(literal string) Filter[Unit] {
	return PathLit(literal)
}

// End matches only when the cursor has consumed every path segment. Because
// NewHandler (handler.go) already enforces full consumption on the whole
// route, End is primarily useful inside an Or branch, to stop a shorter
// alternative from matching a longer path it is merely a prefix of.
func End() Filter[Unit] {
	return newFilter(func(c *MatchContext) (Unit, bool) {
		if !c.IsExhausted() {
			return Unit{}, false
		}
		return Unit{}, true
	})
}

// PathParamParser converts one path segment into a T, or reports failure.
// strconv.Atoi and similar functions already have this exact shape.
type PathParamParser[T any] func(segment string) (T, error)

// Param consumes the next path segment and parses it with parse, extracting
// the parsed value. A parse failure is a non-match, not an error: spec.md
// §4.3 treats "segment present but fails to parse" the same as "no such
// route".
//
// Named Param rather than a PathParam method on Filter[E], because it
// introduces a new type parameter T — Go methods cannot do that (see
// DESIGN.md).
func Param[T any](parse PathParamParser[T]) Filter[T] {
	return newFilter(func(c *MatchContext) (T, bool) {
		var zero T
		mark := c.snapshot()
		seg, ok := c.TakeNext()
		if !ok {
			c.rewind(mark)
			return zero, false
		}
		v, err := parse(seg)
		if err != nil {
			c.rewind(mark)
			return zero, false
		}
		return v, true
	})
}

// StringParam consumes the next path segment verbatim, as a string.
func StringParam() Filter[string] {
	return Param(func(segment string) (string, error) {
		return segment, nil
	})
}

// Header matches a request that carries the named header (case-insensitive
// lookup), extracting its value. It consumes no path segments.
func Header(name string) Filter[string] {
	return newFilter(func(c *MatchContext) (string, bool) {
		v, ok := c.Request().Header(name)
		if !ok {
			return "", false
		}
		return v, true
	})
}

// HeaderValue matches a request that carries the named header with exactly
// the given value (case-insensitive name, case-sensitive value), extracting
// Unit.
func HeaderValue(name, value string) Filter[Unit] {
	return newFilter(func(c *MatchContext) (Unit, bool) {
		v, ok := c.Request().Header(name)
		if !ok || v != value {
			return Unit{}, false
		}
		return Unit{}, true
	})
}

// RestParam consumes every remaining path segment, joining them with "/"
// into a single string. Unlike Param, it always matches — even against zero
// remaining segments, extracting "" — since a rest-of-path capture has
// nothing left to fail against. This is the Go counterpart of
// original_source's param_slashes::<String>(), used by cmd/filtroserve's
// /browse and /download routes to capture an arbitrary-depth subpath as one
// extracted value instead of one Param per directory level.
func RestParam() Filter[string] {
	return newFilter(func(c *MatchContext) (string, bool) {
		var segs []string
		for {
			seg, ok := c.TakeNext()
			if !ok {
				break
			}
			segs = append(segs, seg)
		}
		return strings.Join(segs, "/"), true
	})
}

// HeaderPrefix matches a request whose named header starts with prefix,
// extracting the header's full value. It consumes no path segments.
func HeaderPrefix(name, prefix string) Filter[string] {
	return newFilter(func(c *MatchContext) (string, bool) {
		v, ok := c.Request().Header(name)
		if !ok || !strings.HasPrefix(v, prefix) {
			return "", false
		}
		return v, true
	})
}
