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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "report.pdf"), []byte("pdf-bytes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "archive", "notes.txt"), []byte("hi"), 0o644))
	return root
}

func TestDirectoryIndexHTML_ListsEntriesDirsFirst(t *testing.T) {
	root := writeTestTree(t)

	body := directoryIndexHTML(root, "")

	assert.Contains(t, body, `href="/browse/archive"`)
	assert.Contains(t, body, `href="/download/report.pdf"`)
	dirIdx := indexOf(body, "archive")
	fileIdx := indexOf(body, "report.pdf")
	assert.Less(t, dirIdx, fileIdx, "directories must be listed before files")
}

func TestDirectoryIndexHTML_SubpathLinksNest(t *testing.T) {
	root := writeTestTree(t)

	body := directoryIndexHTML(root, "archive")

	assert.Contains(t, body, `href="/download/archive/notes.txt"`)
}

func TestDirectoryIndexHTML_MissingDirectoryReturnsErrorPage(t *testing.T) {
	root := writeTestTree(t)

	body := directoryIndexHTML(root, "does-not-exist")

	assert.Contains(t, body, "Cannot read directory")
}

func TestBreadcrumbHTML_BuildsIncrementalLinks(t *testing.T) {
	html := breadcrumbHTML("a/b/c")
	assert.Contains(t, html, `href="/browse/a"`)
	assert.Contains(t, html, `href="/browse/a/b"`)
	assert.Contains(t, html, `href="/browse/a/b/c"`)
}

func TestFileIcon_KnownExtensions(t *testing.T) {
	assert.Equal(t, "📕", fileIcon("report.pdf"))
	assert.Equal(t, "💻", fileIcon("main.go"))
	assert.Equal(t, "📄", fileIcon("unknownext.xyz123"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
