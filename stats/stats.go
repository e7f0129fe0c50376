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

// Package stats provides thread-safe, atomic-counter-based statistics for a
// long-running filtro server, in the style of the teacher's pool.go
// PoolStats counters.
package stats

import (
	"fmt"
	"sync/atomic"
)

// Stats tracks live connection, request, and byte-transfer counts. Every
// field is updated with sync/atomic, so a single Stats value may be shared
// across every worker goroutine in a server's pool without further locking.
type Stats struct {
	activeConnections int64
	totalRequests     int64
	totalBytesSent    int64
	filesDownloaded   int64
}

// New returns a zeroed Stats.
func New() *Stats {
	return &Stats{}
}

// ConnectionOpened records a newly accepted connection.
func (s *Stats) ConnectionOpened() {
	atomic.AddInt64(&s.activeConnections, 1)
}

// ConnectionClosed records a connection going away.
func (s *Stats) ConnectionClosed() {
	atomic.AddInt64(&s.activeConnections, -1)
}

// RequestServed records one fully-handled request.
func (s *Stats) RequestServed() {
	atomic.AddInt64(&s.totalRequests, 1)
}

// BytesSent adds n to the total bytes written back to clients.
func (s *Stats) BytesSent(n int64) {
	atomic.AddInt64(&s.totalBytesSent, n)
}

// FileDownloaded records one completed file download.
func (s *Stats) FileDownloaded() {
	atomic.AddInt64(&s.filesDownloaded, 1)
}

// ActiveConnections returns the current number of open connections.
func (s *Stats) ActiveConnections() int64 { return atomic.LoadInt64(&s.activeConnections) }

// TotalRequests returns the total number of requests served so far.
func (s *Stats) TotalRequests() int64 { return atomic.LoadInt64(&s.totalRequests) }

// TotalBytesSent returns the total number of response bytes written so far.
func (s *Stats) TotalBytesSent() int64 { return atomic.LoadInt64(&s.totalBytesSent) }

// FilesDownloaded returns the total number of completed file downloads.
func (s *Stats) FilesDownloaded() int64 { return atomic.LoadInt64(&s.filesDownloaded) }

// Snapshot is a point-in-time, JSON-friendly copy of Stats' counters.
type Snapshot struct {
	ActiveConnections int64  `json:"active_connections"`
	TotalRequests     int64  `json:"total_requests"`
	TotalBytesSent    int64  `json:"total_bytes_sent"`
	FilesDownloaded   int64  `json:"files_downloaded"`
	TotalBytesSentStr string `json:"total_bytes_sent_human"`
}

// Snapshot returns a consistent-enough (each field individually atomic, not
// a single coherent transaction) copy of the current counters.
func (s *Stats) Snapshot() Snapshot {
	sent := s.TotalBytesSent()
	return Snapshot{
		ActiveConnections: s.ActiveConnections(),
		TotalRequests:     s.TotalRequests(),
		TotalBytesSent:    sent,
		FilesDownloaded:   s.FilesDownloaded(),
		TotalBytesSentStr: FormatBytes(sent),
	}
}

// FormatBytes renders n as a human-readable size, e.g. "1.20 MB".
func FormatBytes(n int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
