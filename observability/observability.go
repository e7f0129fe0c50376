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

// Package observability provides a request-lifecycle recorder seam for
// filtro's server loop: metrics, tracing, and access logging, layered above
// the pure filter match (filtro's core never imports this package).
package observability

import (
	"context"
	"time"
)

// Recorder provides unified observability lifecycle hooks around a single
// request's handling. It is named and shaped after the teacher's
// ObservabilityRecorder: a request-start hook that returns an enriched
// context plus an opaque state token, and a request-end hook that receives
// that token back along with the outcome.
//
// Thread safety: all methods must be safe for concurrent use, since the
// server loop's worker pool calls them from many goroutines at once.
type Recorder interface {
	// OnRequestStart is called before matching begins. It returns a context
	// to use for the rest of the request (e.g. one carrying an active trace
	// span) and an opaque state token passed back to OnRequestEnd.
	OnRequestStart(ctx context.Context, method, path string) (context.Context, any)

	// OnRequestEnd is called after the handler adapter returns, with the
	// matched route pattern (or "_not_found" if none matched), the response
	// status code, and how long matching + handling took.
	OnRequestEnd(ctx context.Context, state any, routePattern string, status int, duration time.Duration)
}

// NotFoundPattern is the sentinel routePattern OnRequestEnd receives when no
// filter in the tree matched the request, mirroring the teacher's
// "_not_found" sentinel for unmatched requests.
const NotFoundPattern = "_not_found"

// NoopRecorder is the default Recorder: every hook is a no-op. Installing no
// Recorder at all is equivalent to installing this one.
type NoopRecorder struct{}

// OnRequestStart returns ctx unchanged and a nil state token.
func (NoopRecorder) OnRequestStart(ctx context.Context, method, path string) (context.Context, any) {
	return ctx, nil
}

// OnRequestEnd does nothing.
func (NoopRecorder) OnRequestEnd(ctx context.Context, state any, routePattern string, status int, duration time.Duration) {
}

var _ Recorder = NoopRecorder{}
