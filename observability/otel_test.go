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

package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newTestRecorder(t *testing.T) *OTelRecorder {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r, err := NewOTelRecorder(tp.Tracer("filtro-test"), mp.Meter("filtro-test"), nil)
	require.NoError(t, err)
	return r
}

func TestOTelRecorder_StartAndEndLifecycle(t *testing.T) {
	r := newTestRecorder(t)

	ctx, state := r.OnRequestStart(context.Background(), "GET", "/hello")
	require.NotNil(t, state)

	st, ok := state.(*otelState)
	require.True(t, ok)
	assert.False(t, st.start.IsZero())

	assert.NotPanics(t, func() {
		r.OnRequestEnd(ctx, state, "_matched", 200, 2*time.Millisecond)
	})
}

func TestOTelRecorder_EndIgnoresForeignStateType(t *testing.T) {
	r := newTestRecorder(t)

	assert.NotPanics(t, func() {
		r.OnRequestEnd(context.Background(), "not-an-otel-state", "_not_found", 404, time.Millisecond)
	})
}
