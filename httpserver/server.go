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

// Package httpserver is the collaborator spec.md leaves out of core scope:
// a blocking TCP accept loop, a fixed worker pool, and the wire-format glue
// between a net.Conn and a filtro.HandlerFunc. It is grounded in
// original_source's http::Server/ServerConfig and threads::ThreadPool,
// translated from blocking OS threads to goroutines and channels.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"filtro.dev/filtro"
	"filtro.dev/filtro/stats"
)

// Recorder is the narrow slice of observability.Recorder that Server needs,
// declared locally so this package has no import-time dependency on
// OpenTelemetry — a caller that doesn't want metrics/tracing can pass a
// nil Recorder to New, which substitutes a no-op one.
type Recorder interface {
	OnRequestStart(ctx context.Context, method, path string) (context.Context, any)
	OnRequestEnd(ctx context.Context, state any, routePattern string, status int, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) OnRequestStart(ctx context.Context, method, path string) (context.Context, any) {
	return ctx, nil
}
func (noopRecorder) OnRequestEnd(context.Context, any, string, int, time.Duration) {}

// Server binds a TCP listener and dispatches accepted connections across a
// fixed Pool of worker goroutines, each of which parses one request,
// invokes the installed filtro.HandlerFunc, and writes the response back —
// the Go shape of original_source's Server::run.
type Server struct {
	cfg      ServerConfig
	handler  filtro.HandlerFunc
	parser   *Parser
	pool     *Pool
	listener net.Listener
	recorder Recorder
	stats    *stats.Stats
	closeCh  chan struct{}
}

// New builds a Server bound to cfg, serving handler. recorder may be nil,
// in which case request lifecycle hooks are no-ops. st may be nil, in which
// case the Server tracks connection/request counters on a private Stats
// that nothing outside the Server observes; pass a shared *stats.Stats (the
// same one an application wires into its own route handlers, e.g.
// cmd/filtroserve) so the counters this package increments and the ones the
// application increments land in one coherent Snapshot.
func New(cfg ServerConfig, handler filtro.HandlerFunc, recorder Recorder, st *stats.Stats) *Server {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if st == nil {
		st = stats.New()
	}
	return &Server{
		cfg:      cfg,
		handler:  handler,
		parser:   &Parser{MaxBodyBytes: cfg.maxBody},
		recorder: recorder,
		stats:    st,
		closeCh:  make(chan struct{}),
	}
}

// Serve binds the listener and runs the blocking accept loop until the
// listener is closed by Close, then returns nil. Any other accept error is
// logged and the loop keeps accepting; only a failure to bind returns an
// error.
// TLS is out of scope (spec.md's Non-goals); there is deliberately no
// ServeTLS, unlike the teacher's Serve/ServeTLS pair (see DESIGN.md).
func (s *Server) Serve() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.bindAddress, s.cfg.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("httpserver: listen %s: %w", addr, err)
	}
	s.listener = ln
	s.pool = NewPool(s.cfg.threadCount, s.cfg.queueSize, s.cfg.logger)

	s.cfg.logger.Info("server listening", "addr", addr, "workers", s.cfg.threadCount)

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.closed():
				return nil
			default:
				s.cfg.logger.Error("accept error", "error", err)
				continue
			}
		}
		s.pool.Execute(func() { s.handleConnection(conn) })
	}
}

// closed is checked by the accept loop so that errors following Close are
// treated as expected shutdown, not worth logging as failures.
func (s *Server) closed() <-chan struct{} {
	return s.closeCh
}

// Close stops the listener and waits for in-flight connections to finish.
func (s *Server) Close() error {
	close(s.closeCh)
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

// handleConnection serves every request a single connection sends, one at a
// time, honoring HTTP/1.1 keep-alive: after each response it waits for
// another request up to cfg.idleTimeout before giving up on the connection,
// the same "how long a keep-alive connection may sit idle between requests"
// knob ServerConfig documents. The very first request on a fresh connection
// instead gets cfg.readTimeout, since a client that never sends anything at
// all is a different failure mode than one going idle between requests.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	s.stats.ConnectionOpened()
	defer s.stats.ConnectionClosed()

	for first := true; ; first = false {
		deadline := s.cfg.idleTimeout
		if first {
			deadline = s.cfg.readTimeout
		}
		if deadline > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(deadline))
		}

		req, err := s.parser.Parse(conn)
		if err != nil {
			if !first && isIdleDisconnect(err) {
				return
			}
			s.cfg.logger.Warn("request parse error", "error", err, "remote", conn.RemoteAddr())
			writeResponse(conn, filtro.BadRequest())
			return
		}

		ctx, state := s.recorder.OnRequestStart(context.Background(), req.Method(), joinPath(req.PathSegments()))
		start := time.Now()

		resp := s.runHandler(req)

		writeResponse(conn, resp)
		duration := time.Since(start)
		s.recorder.OnRequestEnd(ctx, state, routePatternOf(resp), resp.Status(), duration)

		snap := s.stats.Snapshot()
		s.cfg.logger.Info("request",
			"method", req.Method(),
			"path", joinPath(req.PathSegments()),
			"status", resp.Status(),
			"duration", duration,
			"active_connections", snap.ActiveConnections,
			"total_requests", snap.TotalRequests,
			"bytes_sent", snap.TotalBytesSentStr,
		)

		if wantsConnectionClose(req) {
			return
		}
	}
}

// wantsConnectionClose reports whether req carries "Connection: close",
// the one signal that overrides HTTP/1.1's default keep-alive behavior.
func wantsConnectionClose(req *filtro.Request) bool {
	v, ok := req.Header("Connection")
	return ok && strings.EqualFold(v, "close")
}

// isIdleDisconnect reports whether err is the expected way a keep-alive
// connection ends between requests — the client closing it, or the idle
// deadline firing — as opposed to a malformed request mid-stream, which is
// still worth a Warn log.
func isIdleDisconnect(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// runHandler invokes the handler, recovering the single sanctioned panic
// path spec.md §4.9 assigns to this collaborator: an IntoResponse
// conversion panicking on a value it cannot convert.
func (s *Server) runHandler(req *filtro.Request) (resp filtro.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.cfg.logger.Error("handler panic", "panic", r, "method", req.Method())
			resp = filtro.InternalError()
		}
	}()
	return s.handler(req)
}

func routePatternOf(resp filtro.Response) string {
	if resp.Status() == 404 {
		return "_not_found"
	}
	return "_matched"
}

func joinPath(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	out := ""
	for _, seg := range segments {
		out += "/" + seg
	}
	return out
}
