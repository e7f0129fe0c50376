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

// Package filtro provides a composable, type-preserving routing system for
// a small synchronous HTTP/1.1 server.
//
// Routes are described by composing small filters — primitive matchers for
// method, path segment, path parameter, and header — with four combinators:
// And, Or, Map, and Maybe. The composition produces a single root filter
// that both matches a request and extracts a typed value from it; mapped
// through a user function, it yields a response.
//
// # Key Features
//
//   - Primitive filters: Method, Path, Param (path parameter), Header, End
//   - Combinators: And, Or, Map, Maybe — each itself a filter
//   - Type-preserving extraction: no runtime reflection, no match tables
//   - Backtracking match engine with a cheap-to-clone match context
//   - A handler adapter with automatic 404 fallback
//
// # Example
//
//	hello := filtro.Map(filtro.Get("/hello"), func(filtro.Unit) filtro.Response {
//	    return filtro.OK([]byte("hello"))
//	})
//	handler := filtro.NewHandler(hello)
//
// A filter tree is built once at program start and shared by reference
// across worker goroutines; a filter must therefore be safe to call from
// many goroutines concurrently. Match contexts are created fresh per
// request and never cross goroutines.
package filtro
