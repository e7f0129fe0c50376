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

package httpserver

import (
	"log/slog"
	"time"
)

// ServerConfig configures a Server, grounded in original_source's
// ServerConfig builder (address/port/thread_count) and extended with read
// and idle timeouts after the teacher's WithServerTimeouts. There is no
// write timeout.
type ServerConfig struct {
	bindAddress string
	port        int
	threadCount int
	queueSize   int
	readTimeout time.Duration
	idleTimeout time.Duration
	maxBody     int64
	logger      *slog.Logger
}

// Option configures a ServerConfig, following the teacher's
// functional-options pattern (options.go's With* family).
type Option func(*ServerConfig)

// DefaultThreadCount matches original_source's ServerConfig::default
// thread_count of 4.
const DefaultThreadCount = 4

// NewServerConfig returns a ServerConfig bound to address:port with
// DefaultThreadCount workers and the package's default timeouts, then
// applies opts.
func NewServerConfig(bindAddress string, port int, opts ...Option) ServerConfig {
	cfg := ServerConfig{
		bindAddress: bindAddress,
		port:        port,
		threadCount: DefaultThreadCount,
		queueSize:   64,
		readTimeout: 15 * time.Second,
		idleTimeout: 60 * time.Second,
		maxBody:     DefaultMaxBodyBytes,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithThreadCount sets the number of worker goroutines handling accepted
// connections. Default: DefaultThreadCount (4).
func WithThreadCount(n int) Option {
	return func(c *ServerConfig) {
		if n > 0 {
			c.threadCount = n
		}
	}
}

// WithQueueSize sets the buffer size of the connection job queue between
// the accept loop and the worker pool. Default: 64.
func WithQueueSize(n int) Option {
	return func(c *ServerConfig) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// WithReadTimeout sets the deadline for reading a full request off a
// connection. Default: 15s.
func WithReadTimeout(d time.Duration) Option {
	return func(c *ServerConfig) { c.readTimeout = d }
}

// WithIdleTimeout sets how long a keep-alive connection may sit idle
// between requests before the server closes it. Default: 60s.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *ServerConfig) { c.idleTimeout = d }
}

// WithMaxBodyBytes caps the request body size the Parser will read.
// Default: DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(c *ServerConfig) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger installs a structured logger for access logs and internal
// diagnostics. Default: a no-op logger, mirroring the teacher's
// noopLogger pattern.
func WithLogger(logger *slog.Logger) Option {
	return func(c *ServerConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
