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

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"

	"filtro.dev/filtro/httpserver"
	"filtro.dev/filtro/observability"
	"filtro.dev/filtro/observability/promexporter"
	"filtro.dev/filtro/stats"
)

// CLI surface, per spec.md §6: "filtroserve [directory] [port]", positional
// defaults "." and 8080. flag is used only for the optional -metrics
// switch; the two positional arguments are parsed by hand to keep the
// Usage line matching rustserve.rs's exactly.
func main() {
	metricsAddr := flag.String("metrics", "", "address to serve Prometheus metrics on (e.g. :9090); disabled if empty")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [directory] [port]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  directory: path to serve (default: current directory)")
		fmt.Fprintln(os.Stderr, "  port: port number (default: 8080)")
		flag.PrintDefaults()
	}
	flag.Parse()

	directory, port := parsePositionalArgs(flag.Args())

	root, err := filepath.Abs(directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q: %v\n", directory, err)
		os.Exit(1)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: directory %q not found\n", directory)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	st := stats.New()
	handler := buildHandler(root, st)

	recorder, shutdownMetrics := setupObservability(*metricsAddr, logger)
	defer shutdownMetrics()

	cfg := httpserver.NewServerConfig("0.0.0.0", port,
		httpserver.WithThreadCount(20),
		httpserver.WithLogger(logger),
	)
	server := httpserver.New(cfg, handler, recorder, st)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Info("shutting down")
		server.Close()
	}()

	logger.Info("filtroserve starting", "directory", root, "port", port)
	if err := server.Serve(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// parsePositionalArgs mirrors rustserve.rs's arg-count match: zero args
// means default directory and port, one means a directory override, two
// means directory and port. A port that fails to parse, or lies outside
// 1..65535, is not defaulted: parsePort below prints an error and exits,
// as rustserve.rs does.
func parsePositionalArgs(args []string) (string, int) {
	switch len(args) {
	case 0:
		return ".", 8080
	case 1:
		return args[0], 8080
	case 2:
		return args[0], parsePort(args[1])
	default:
		flag.Usage()
		os.Exit(1)
		return "", 0
	}
}

func parsePort(s string) int {
	var port int
	if _, err := fmt.Sscanf(s, "%d", &port); err != nil || port <= 0 || port > 65535 {
		fmt.Fprintf(os.Stderr, "Invalid port: %s\n", s)
		os.Exit(1)
	}
	return port
}

// setupObservability wires filtro's OpenTelemetry-backed Recorder to a
// Prometheus exporter when metricsAddr is non-empty, otherwise returns a
// no-op Recorder. This is the one place cmd/filtroserve exercises the
// observability/promexporter packages end to end, per SPEC_FULL.md §3.
func setupObservability(metricsAddr string, logger *slog.Logger) (httpserver.Recorder, func()) {
	if metricsAddr == "" {
		return nil, func() {}
	}

	exporter, err := promexporter.New()
	if err != nil {
		logger.Error("metrics exporter setup failed", "error", err)
		return nil, func() {}
	}

	tracerProvider := trace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)

	recorder, err := observability.NewOTelRecorder(
		tracerProvider.Tracer("filtro.dev/filtro/cmd/filtroserve"),
		exporter.Meter(),
		logger,
	)
	if err != nil {
		logger.Error("recorder setup failed", "error", err)
		return nil, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", exporter.Handler())
	metricsServer := &http.Server{Addr: metricsAddr, Handler: mux}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server exited", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", metricsAddr)

	return recorder, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metricsServer.Shutdown(ctx)
		exporter.Shutdown(ctx)
		tracerProvider.Shutdown(ctx)
	}
}
