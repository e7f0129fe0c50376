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
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OTelRecorder is a Recorder backed by OpenTelemetry: a span per request and
// two instruments, a request-duration histogram and a matched/not-matched
// counter. It is grounded in the teacher's observability.go lifecycle shape
// and metrics_providers.go's instrument setup, adapted from a radix-router's
// route pattern to a filter tree's matched route name.
type OTelRecorder struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
	requests metric.Int64Counter
	logger   *slog.Logger
}

type otelState struct {
	span  trace.Span
	start time.Time
}

// NewOTelRecorder builds an OTelRecorder from a tracer and meter, typically
// obtained from an already-configured global TracerProvider/MeterProvider
// (see promexporter for a Prometheus-backed MeterProvider). logger may be
// nil, in which case a no-op logger is used.
func NewOTelRecorder(tracer trace.Tracer, meter metric.Meter, logger *slog.Logger) (*OTelRecorder, error) {
	duration, err := meter.Float64Histogram(
		"filtro.request.duration",
		metric.WithDescription("Duration of filtro request handling"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("observability: create duration histogram: %w", err)
	}

	requests, err := meter.Int64Counter(
		"filtro.request.count",
		metric.WithDescription("Count of filtro requests by matched route and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("observability: create request counter: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &OTelRecorder{tracer: tracer, duration: duration, requests: requests, logger: logger}, nil
}

// OnRequestStart starts a span named after the request method and path and
// records the request's arrival time for duration measurement.
func (o *OTelRecorder) OnRequestStart(ctx context.Context, method, path string) (context.Context, any) {
	ctx, span := o.tracer.Start(ctx, method+" "+path, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	))
	return ctx, &otelState{span: span, start: time.Now()}
}

// OnRequestEnd finishes the span, records the duration histogram and
// request counter, and emits a structured access log line.
func (o *OTelRecorder) OnRequestEnd(ctx context.Context, state any, routePattern string, status int, duration time.Duration) {
	st, ok := state.(*otelState)
	if !ok || st == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("filtro.route", routePattern),
		attribute.Int("http.status_code", status),
	}

	st.span.SetAttributes(attrs...)
	st.span.End()

	o.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	o.requests.Add(ctx, 1, metric.WithAttributes(attrs...))

	o.logger.LogAttrs(ctx, slog.LevelInfo, "request",
		slog.String("route", routePattern),
		slog.String("status", strconv.Itoa(status)),
		slog.Duration("duration", duration),
	)
}

var _ Recorder = (*OTelRecorder)(nil)
