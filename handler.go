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

// HandlerFunc adapts a Request into a Response. It is the boundary between
// this package's filter core and a collaborator's transport loop (the
// httpserver package).
type HandlerFunc func(req *Request) Response

// NewHandler adapts a root filter into a HandlerFunc, per spec.md §4.6:
//
//   - The filter runs against a fresh MatchContext for req.
//   - A match is only honored if it also fully consumed the path: a filter
//     that matches a prefix of the path but leaves segments unconsumed is
//     treated as a non-match, so "/users" never silently serves
//     "/users/1/extra-garbage".
//   - Any non-match — including the not-fully-consumed case above — falls
//     back to a 404 Response with no body.
//   - The root filter's extract type E is converted to a Response via
//     IntoResponse. Conversion panics are NOT recovered here; that is the
//     transport loop's job (spec.md §4.9), so a programming error in a
//     handler surfaces rather than silently turning into a generic 500.
func NewHandler[E IntoResponse](root Filter[E]) HandlerFunc {
	return func(req *Request) Response {
		c := NewMatchContext(req)
		v, ok := root.Match(c)
		if !ok || !c.IsExhausted() {
			return NotFound()
		}
		return v.IntoResponse()
	}
}
