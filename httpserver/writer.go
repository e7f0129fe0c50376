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
	"strings"

	"filtro.dev/filtro"
)

// writeResponse serializes resp onto w per spec.md §6's wire format: a
// status line, then headers, a synthesized Content-Length if the caller
// didn't set one, a blank line, and the body — the same layout as
// original_source's Response::write_to_stream.
func writeResponse(w io.Writer, resp filtro.Response) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", resp.Status(), filtro.ReasonPhrase(resp.Status()))

	headers := resp.Headers()
	hasLength := false
	for name, value := range headers {
		fmt.Fprintf(bw, "%s: %s\r\n", name, value)
		if strings.EqualFold(name, "Content-Length") {
			hasLength = true
		}
	}

	body, hasBody := resp.Body()
	if !hasLength {
		fmt.Fprintf(bw, "Content-Length: %d\r\n", len(body))
	}

	bw.WriteString("\r\n")
	if hasBody {
		bw.Write(body)
	}
}
