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

package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_ConnectionLifecycle(t *testing.T) {
	s := New()
	s.ConnectionOpened()
	s.ConnectionOpened()
	s.ConnectionClosed()

	assert.Equal(t, int64(1), s.ActiveConnections())
}

func TestStats_RequestsBytesAndDownloadsAccumulate(t *testing.T) {
	s := New()
	s.RequestServed()
	s.RequestServed()
	s.BytesSent(100)
	s.BytesSent(250)
	s.FileDownloaded()

	assert.Equal(t, int64(2), s.TotalRequests())
	assert.Equal(t, int64(350), s.TotalBytesSent())
	assert.Equal(t, int64(1), s.FilesDownloaded())
}

func TestStats_ConcurrentUpdatesAreRaceFree(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RequestServed()
			s.BytesSent(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), s.TotalRequests())
	assert.Equal(t, int64(100), s.TotalBytesSent())
}

func TestStats_SnapshotIncludesHumanReadableBytes(t *testing.T) {
	s := New()
	s.BytesSent(2048)

	snap := s.Snapshot()
	assert.Equal(t, int64(2048), snap.TotalBytesSent)
	assert.Equal(t, "2.00 KB", snap.TotalBytesSentStr)
}

func TestFormatBytes_Thresholds(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.00 KB", FormatBytes(1024))
	assert.Equal(t, "1.00 MB", FormatBytes(1024*1024))
	assert.Equal(t, "1.00 GB", FormatBytes(1024*1024*1024))
}
