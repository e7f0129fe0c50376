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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParsesRequestLineHeadersAndBody(t *testing.T) {
	raw := "POST /users HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"hello"

	p := NewParser()
	req, err := p.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method())
	assert.Equal(t, []string{"users"}, req.PathSegments())
	body, ok := req.Body()
	require.True(t, ok)
	assert.Equal(t, "hello", string(body))
}

func TestParser_NoContentLengthMeansNoBody(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"

	p := NewParser()
	req, err := p.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	_, ok := req.Body()
	assert.False(t, ok)
}

func TestParser_MalformedRequestLineErrors(t *testing.T) {
	p := NewParser()
	_, err := p.Parse(strings.NewReader("garbage\r\n\r\n"))
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestParser_InvalidContentLengthErrors(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nContent-Length: notanumber\r\n\r\n"

	p := NewParser()
	_, err := p.Parse(strings.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidContentLength)
}

func TestParser_BodyExceedingMaxBytesErrors(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: 100\r\n\r\n" + strings.Repeat("x", 100)

	p := &Parser{MaxBodyBytes: 10}
	_, err := p.Parse(strings.NewReader(raw))
	assert.ErrorIs(t, err, ErrRequestTooLarge)
}

func TestParser_UnknownMethodErrors(t *testing.T) {
	raw := "FROBNICATE / HTTP/1.1\r\n\r\n"

	p := NewParser()
	_, err := p.Parse(strings.NewReader(raw))
	assert.Error(t, err)
}
