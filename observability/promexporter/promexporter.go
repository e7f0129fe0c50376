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

// Package promexporter wires an OpenTelemetry MeterProvider to a Prometheus
// registry and exposes it on an http.Handler, grounded in the teacher's
// metrics_providers.go initPrometheusProvider.
package promexporter

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Exporter owns a dedicated Prometheus registry and the OTel MeterProvider
// reading from it. Using a dedicated registry (rather than the global
// default one) avoids collisions when a process embeds filtro alongside
// other Prometheus-instrumented libraries — the same reasoning behind the
// teacher's custom-registry setup.
type Exporter struct {
	registry *promclient.Registry
	provider *sdkmetric.MeterProvider
	handler  http.Handler
}

// New creates an Exporter, registers it as the global OTel MeterProvider,
// and returns it. Callers obtain a metric.Meter via Meter() to hand to
// observability.NewOTelRecorder.
func New() (*Exporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("promexporter: create exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	return &Exporter{
		registry: registry,
		provider: provider,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, nil
}

// Meter returns a metric.Meter scoped to this module, for instrument
// creation (observability.NewOTelRecorder's meter argument).
func (e *Exporter) Meter() metric.Meter {
	return e.provider.Meter("filtro.dev/filtro")
}

// Handler returns the http.Handler to mount at a metrics path (e.g.
// "/metrics") on a separate mux — filtro's own filter core never serves
// this itself, since Prometheus scraping is a transport concern, not a
// routing one.
func (e *Exporter) Handler() http.Handler {
	return e.handler
}

// Shutdown flushes and stops the underlying MeterProvider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
