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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"filtro.dev/filtro"
)

// DefaultMaxBodyBytes bounds Content-Length to guard a single slow or
// malicious client from exhausting memory; original_source's request.rs
// parser has no such bound, but that is a gap a production HTTP/1.1 parser
// does not leave open, so Parser adds it.
const DefaultMaxBodyBytes = 10 << 20 // 10 MiB

// Parser reads one HTTP/1.1 request off a connection: the request line,
// headers up to the blank line, and — if Content-Length is present — that
// many body bytes. It is the Go counterpart of original_source's
// http::Request::parse, translated from a line-buffered BufReader-over-
// TcpStream into bufio.Reader-over-io.Reader.
type Parser struct {
	MaxBodyBytes int64
}

// NewParser returns a Parser with DefaultMaxBodyBytes.
func NewParser() *Parser {
	return &Parser{MaxBodyBytes: DefaultMaxBodyBytes}
}

// Parse reads one request from r. A malformed request line, an
// unrecognized method, or an invalid Content-Length is returned as an
// error and never reaches the filter core, per spec.md §7 — the caller
// (Server) is expected to respond with 400 and close the connection rather
// than forward a Request that NewRequest would reject anyway.
func (p *Parser) Parse(r io.Reader) (*filtro.Request, error) {
	br := bufio.NewReader(r)

	requestLine, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("httpserver: read request line: %w", err)
	}
	if requestLine == "" {
		return nil, ErrMalformedRequest
	}

	parts := strings.Fields(requestLine)
	if len(parts) < 2 {
		return nil, ErrMalformedRequest
	}
	method, path := parts[0], parts[1]

	var headers []filtro.Header
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("httpserver: read headers: %w", err)
		}
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		headers = append(headers, filtro.Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	var body []byte
	for _, h := range headers {
		if !strings.EqualFold(h.Name, "Content-Length") {
			continue
		}
		length, err := strconv.ParseInt(h.Value, 10, 64)
		if err != nil || length < 0 {
			return nil, ErrInvalidContentLength
		}
		maxBody := p.MaxBodyBytes
		if maxBody <= 0 {
			maxBody = DefaultMaxBodyBytes
		}
		if length > maxBody {
			return nil, ErrRequestTooLarge
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("httpserver: read body: %w", err)
		}
		body = buf
		break
	}

	req, err := filtro.NewRequest(method, path, headers, body)
	if err != nil {
		return nil, fmt.Errorf("httpserver: %w", err)
	}
	return req, nil
}

// readLine reads a single CRLF- or LF-terminated line, with the terminator
// stripped. io.EOF on the very first byte of a line propagates as io.EOF;
// a line that trails EOF without a terminator is still returned as the
// partial line it read, matching bufio.Reader's own semantics.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
