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

import "errors"

var (
	// ErrMalformedRequest is returned when the request line is empty or has
	// fewer than two fields (method and path); the version field is not
	// required.
	ErrMalformedRequest = errors.New("httpserver: malformed request line")

	// ErrInvalidContentLength is returned when the Content-Length header is
	// present but not a valid non-negative integer.
	ErrInvalidContentLength = errors.New("httpserver: invalid content-length")

	// ErrRequestTooLarge is returned when Content-Length exceeds MaxBodyBytes.
	ErrRequestTooLarge = errors.New("httpserver: request body exceeds limit")
)
