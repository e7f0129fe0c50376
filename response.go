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

package filtro

// IntoResponse converts a value into a Response. It is implemented for
// Response itself, for Text and StatusBody (the Go stand-ins for a bare
// string and a (status, body) tuple, since Go cannot attach methods to
// unnamed builtin types), and for Either (either.go).
//
// Because Go method sets promote value-receiver methods to the pointer
// type automatically, *Response also satisfies IntoResponse without any
// extra code — the "reference to a response (clone)" case from spec.md
// §4.7 falls out of the language for free.
type IntoResponse interface {
	IntoResponse() Response
}

// Response is an immutable, builder-constructed HTTP response: status,
// headers (case preserved as written), and an optional body.
type Response struct {
	status  int
	headers map[string]string
	body    []byte
	hasBody bool
}

// NewResponse starts a response with the given status and no headers or
// body.
func NewResponse(status int) Response {
	return Response{status: status, headers: map[string]string{}}
}

// WithHeader returns a copy of r with name set to value, preserving the
// case the caller supplied (spec.md §3: "preserving user-supplied case on
// write").
func (r Response) WithHeader(name, value string) Response {
	headers := make(map[string]string, len(r.headers)+1)
	for k, v := range r.headers {
		headers[k] = v
	}
	headers[name] = value
	r.headers = headers
	return r
}

// WithBody returns a copy of r carrying body.
func (r Response) WithBody(body []byte) Response {
	r.body = body
	r.hasBody = true
	return r
}

// Status returns the response's 3-digit status code.
func (r Response) Status() int { return r.status }

// Headers returns the response's headers. Callers must not mutate the
// returned map.
func (r Response) Headers() map[string]string { return r.headers }

// Body returns the response body and whether one was set.
func (r Response) Body() ([]byte, bool) { return r.body, r.hasBody }

// IntoResponse implements IntoResponse by returning r unchanged.
func (r Response) IntoResponse() Response { return r }

// OK builds a 200 response with the given body.
func OK(body []byte) Response {
	return NewResponse(200).WithBody(body)
}

// JSON builds a 200 response with Content-Type application/json.
// Serialization is the caller's responsibility; this is a thin convenience,
// matching spec.md §2's "convenience constructors (ok, json, html, ...)".
func JSON(body []byte) Response {
	return OK(body).WithHeader("Content-Type", "application/json")
}

// HTML builds a 200 response with Content-Type text/html.
func HTML(body []byte) Response {
	return OK(body).WithHeader("Content-Type", "text/html; charset=utf-8")
}

// Created builds a 201 response.
func Created() Response {
	return NewResponse(201)
}

// NoContent builds a 204 response.
func NoContent() Response {
	return NewResponse(204)
}

// BadRequest builds a 400 response.
func BadRequest() Response {
	return NewResponse(400)
}

// NotFound builds a 404 response.
func NotFound() Response {
	return NewResponse(404)
}

// MethodNotAllowed builds a 405 response.
func MethodNotAllowed() Response {
	return NewResponse(405)
}

// InternalError builds a 500 response.
func InternalError() Response {
	return NewResponse(500)
}

// reasonPhrases is the closed set of reason phrases this library knows, per
// spec.md §6. Any other status code serializes with "Unknown".
var reasonPhrases = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	301: "Moved Permanently",
	302: "Found",
	304: "Not Modified",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
}

// ReasonPhrase returns the standard reason phrase for status, or "Unknown"
// if it is outside the closed set above.
func ReasonPhrase(status int) string {
	if phrase, ok := reasonPhrases[status]; ok {
		return phrase
	}
	return "Unknown"
}

// Text is a Go stand-in for "a bare string" in spec.md §4.7's IntoResponse
// list: Go cannot implement an interface for the builtin string type
// directly, so routes that want to return plain text wrap it in Text.
type Text string

// IntoResponse builds a 200 response with the text as the body.
func (t Text) IntoResponse() Response {
	return OK([]byte(t))
}

// StatusBody is a Go stand-in for spec.md §4.7's "(status, body) tuple":
// Go has no anonymous tuple type, so a short status/body pair is expressed
// as this small named struct instead.
type StatusBody struct {
	Status int
	Body   string
}

// IntoResponse builds a response with the given status and body.
func (sb StatusBody) IntoResponse() Response {
	return NewResponse(sb.Status).WithBody([]byte(sb.Body))
}
