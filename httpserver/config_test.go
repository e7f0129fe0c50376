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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig("127.0.0.1", 8080)

	assert.Equal(t, "127.0.0.1", cfg.bindAddress)
	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, DefaultThreadCount, cfg.threadCount)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.maxBody)
}

func TestNewServerConfig_OptionsOverrideDefaults(t *testing.T) {
	cfg := NewServerConfig("0.0.0.0", 9090,
		WithThreadCount(8),
		WithQueueSize(128),
		WithReadTimeout(2*time.Second),
		WithIdleTimeout(10*time.Second),
		WithMaxBodyBytes(1024),
	)

	assert.Equal(t, 8, cfg.threadCount)
	assert.Equal(t, 128, cfg.queueSize)
	assert.Equal(t, 2*time.Second, cfg.readTimeout)
	assert.Equal(t, 10*time.Second, cfg.idleTimeout)
	assert.Equal(t, int64(1024), cfg.maxBody)
}

func TestWithThreadCount_IgnoresNonPositive(t *testing.T) {
	cfg := NewServerConfig("127.0.0.1", 8080, WithThreadCount(0))
	assert.Equal(t, DefaultThreadCount, cfg.threadCount, "a non-positive thread count must not override the default")
}
