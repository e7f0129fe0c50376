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

import "fmt"

// Either is the extract type of Or: a two-variant tagged union over the two
// branches' extract types (spec.md §3, §9). Exactly one side is populated.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// LeftOf builds an Either holding the left (first-tried, priority) branch.
func LeftOf[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isLeft: true}
}

// RightOf builds an Either holding the right branch.
func RightOf[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isLeft: false}
}

// IsLeft reports whether the left branch matched.
func (e Either[L, R]) IsLeft() bool { return e.isLeft }

// Left returns the left value and true, or the zero value and false if the
// right branch matched.
func (e Either[L, R]) Left() (L, bool) {
	if !e.isLeft {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the right value and true, or the zero value and false if
// the left branch matched.
func (e Either[L, R]) Right() (R, bool) {
	if e.isLeft {
		var zero R
		return zero, false
	}
	return e.right, true
}

// MustLeft returns the left value, or returns ErrEitherWrongSide if the
// right branch matched instead. Convenience for call sites that already
// know (e.g. from context) which side they expect.
func (e Either[L, R]) MustLeft() (L, error) {
	v, ok := e.Left()
	if !ok {
		return v, ErrEitherWrongSide
	}
	return v, nil
}

// MustRight returns the right value, or returns ErrEitherWrongSide if the
// left branch matched instead.
func (e Either[L, R]) MustRight() (R, error) {
	v, ok := e.Right()
	if !ok {
		return v, ErrEitherWrongSide
	}
	return v, nil
}

// IntoResponse delegates to whichever side matched, per spec.md §4.7: "Or
// composed routes with heterogeneous handler return types still produce a
// single response." Either itself is not constrained to hold IntoResponse
// values — Or is useful deep inside a larger composition, long before the
// final Map turns things into responses — so the constraint is checked here
// with a single type assertion rather than at Either's declaration. A
// handler tree whose Either ultimately reaches NewHandler without its
// payload being response-convertible is a programming error; it panics,
// which spec.md §4.9 explicitly assigns to the calling collaborator to
// catch.
func (e Either[L, R]) IntoResponse() Response {
	if e.isLeft {
		if ir, ok := any(e.left).(IntoResponse); ok {
			return ir.IntoResponse()
		}
		panic(fmt.Sprintf("filtro: Either left value %T does not implement IntoResponse", e.left))
	}
	if ir, ok := any(e.right).(IntoResponse); ok {
		return ir.IntoResponse()
	}
	panic(fmt.Sprintf("filtro: Either right value %T does not implement IntoResponse", e.right))
}
