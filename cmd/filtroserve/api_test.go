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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDirectoryJSON_ReportsNameDirAndSize(t *testing.T) {
	root := writeTestTree(t)

	raw, err := listDirectoryJSON(root)
	require.NoError(t, err)

	var entries []fileEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 2)

	byName := map[string]fileEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	assert.True(t, byName["archive"].IsDir)
	assert.Equal(t, int64(0), byName["archive"].Size)
	assert.False(t, byName["report.pdf"].IsDir)
	assert.Equal(t, int64(len("pdf-bytes")), byName["report.pdf"].Size)
}

func TestListDirectoryJSON_MissingDirectoryErrors(t *testing.T) {
	_, err := listDirectoryJSON("/does/not/exist/anywhere")
	assert.Error(t, err)
}
