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

// Unit is the empty-tuple extract type: what Method, Path, and End produce.
type Unit struct{}

// Pair is the flat 2-tuple extract type produced when two single-valued
// filters are And-ed together.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the flat 3-tuple extract type produced by extending a Pair with
// one more single-valued filter. spec.md §3 requires support for at least
// arity 3; wider arities are explicitly optional and are not implemented
// here (see DESIGN.md).
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Option mirrors Rust's Option<T> for Maybe's optional slot: Some(v) when
// present, None otherwise. A plain (T, bool) pair would serve the same
// purpose, but Option reads better at Maybe call sites and in tests.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None is the absent value for T.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }
