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

package main

import (
	"encoding/json"
	"os"
)

// fileEntry is one row of the /api/files JSON listing, replacing
// original_source's rustserve.rs hand-built JSON string with
// encoding/json — the same stdlib idiom the teacher uses for its own
// config/OpenAPI serialization.
type fileEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"isDir"`
	Size  int64  `json:"size"`
}

// listDirectoryJSON returns the JSON-encoded directory listing for dir,
// grounded in rustserve.rs's list_directory_json.
func listDirectoryJSON(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]fileEntry, 0, len(entries))
	for _, entry := range entries {
		fe := fileEntry{Name: entry.Name(), IsDir: entry.IsDir()}
		if !entry.IsDir() {
			if info, err := entry.Info(); err == nil {
				fe.Size = info.Size()
			}
		}
		files = append(files, fe)
	}

	return json.Marshal(files)
}
