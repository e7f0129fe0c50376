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
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filtro.dev/filtro/stats"
)

// directoryIndexHTML renders root/subpath as an HTML file listing, grounded
// in original_source's html.rs generate_index_html: directories sort first,
// then files alphabetically, each rendered as a link to either /browse/...
// (directories) or /download/... (files).
func directoryIndexHTML(root, subpath string) string {
	current := root
	if subpath != "" {
		current = filepath.Join(root, subpath)
	}

	entries, err := os.ReadDir(current)
	if err != nil {
		return errorHTML("Cannot read directory")
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return a.Name() < b.Name()
	})

	var items strings.Builder
	for _, entry := range entries {
		items.WriteString(fileItemHTML(entry, subpath))
	}
	if items.Len() == 0 {
		items.WriteString(`<div class="empty">This directory is empty</div>`)
	}

	return pageHTML(filepath.Base(root), breadcrumbHTML(subpath), items.String())
}

func fileItemHTML(entry os.DirEntry, subpath string) string {
	name := entry.Name()
	relPath := name
	if subpath != "" {
		relPath = subpath + "/" + name
	}

	icon, sizeStr, class := "📄", "-", "file"
	href := "/download/" + encodePath(relPath)
	if entry.IsDir() {
		icon, class = "📁", "folder"
		href = "/browse/" + encodePath(relPath)
	} else if info, err := entry.Info(); err == nil {
		icon = fileIcon(name)
		sizeStr = stats.FormatBytes(info.Size())
	}

	return fmt.Sprintf(`<a href="%s" class="file-item %s">
		<span class="file-icon">%s</span>
		<span class="file-name">%s</span>
		<span class="file-size">%s</span>
	</a>`, href, class, icon, html.EscapeString(name), sizeStr)
}

func breadcrumbHTML(subpath string) string {
	var b strings.Builder
	b.WriteString(`<a href="/">📂 Home</a>`)

	if subpath == "" {
		return b.String()
	}

	accumulated := ""
	for _, part := range strings.Split(subpath, "/") {
		if part == "" {
			continue
		}
		if accumulated == "" {
			accumulated = part
		} else {
			accumulated = accumulated + "/" + part
		}
		fmt.Fprintf(&b, ` <span>/</span> <a href="/browse/%s">%s</a>`, encodePath(accumulated), html.EscapeString(part))
	}
	return b.String()
}

// fileIcon maps a file extension to a representative emoji, grounded in
// html.rs's get_file_icon.
func fileIcon(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp", "svg", "bmp", "ico":
		return "🖼️"
	case "mp4", "webm", "avi", "mov", "mkv", "flv":
		return "🎬"
	case "mp3", "wav", "flac", "ogg", "aac", "m4a":
		return "🎵"
	case "pdf":
		return "📕"
	case "doc", "docx":
		return "📘"
	case "xls", "xlsx":
		return "📗"
	case "ppt", "pptx":
		return "📙"
	case "txt", "md", "rtf":
		return "📄"
	case "go", "py", "js", "ts", "java", "c", "cpp", "h":
		return "💻"
	case "html", "css", "scss", "sass":
		return "🌐"
	case "json", "yaml", "yml", "toml", "xml":
		return "⚙️"
	case "zip", "tar", "gz", "rar", "7z", "bz2":
		return "📦"
	case "exe", "msi", "dmg", "app", "deb", "rpm":
		return "⚡"
	default:
		return "📄"
	}
}

// encodePath percent-encodes a relative path one segment at a time so the
// "/" separators in a multi-segment RestParam value survive as path
// separators rather than being escaped into "%2F".
func encodePath(relPath string) string {
	segments := strings.Split(relPath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func pageHTML(dirName, breadcrumb, fileList string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>filtroserve - %s</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', system-ui, -apple-system, sans-serif; background: linear-gradient(135deg, #1a1a2e 0%%, #16213e 50%%, #0f3460 100%%); min-height: 100vh; color: #e0e0e0; }
.container { max-width: 900px; margin: 0 auto; padding: 40px 20px; }
.header { text-align: center; margin-bottom: 40px; }
.header h1 { font-size: 2.5rem; background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); -webkit-background-clip: text; -webkit-text-fill-color: transparent; background-clip: text; margin-bottom: 10px; }
.header .subtitle { color: #888; }
.breadcrumb { background: rgba(255,255,255,0.05); border-radius: 12px; padding: 15px 20px; margin-bottom: 20px; border: 1px solid rgba(255,255,255,0.1); }
.breadcrumb a { color: #667eea; text-decoration: none; }
.breadcrumb span { color: #666; margin: 0 8px; }
.file-list { background: rgba(255,255,255,0.03); border-radius: 16px; overflow: hidden; border: 1px solid rgba(255,255,255,0.1); }
.file-item { display: flex; align-items: center; padding: 16px 24px; text-decoration: none; color: #e0e0e0; border-bottom: 1px solid rgba(255,255,255,0.05); }
.file-item:last-child { border-bottom: none; }
.file-item:hover { background: rgba(102,126,234,0.1); }
.file-icon { font-size: 1.5rem; margin-right: 16px; width: 32px; text-align: center; }
.file-name { flex: 1; font-weight: 500; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.file-size { color: #888; font-size: 0.9rem; font-family: 'Monaco', 'Consolas', monospace; }
.empty { text-align: center; padding: 60px 20px; color: #666; font-size: 1.2rem; }
.footer { text-align: center; margin-top: 40px; color: #555; font-size: 0.85rem; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1>filtroserve</h1>
<p class="subtitle">Serving files from <strong>%s</strong></p>
</div>
<div class="breadcrumb">%s</div>
<div class="file-list">%s</div>
<div class="footer">filtro.dev/filtro/cmd/filtroserve</div>
</div>
</body>
</html>`, html.EscapeString(dirName), html.EscapeString(dirName), breadcrumb, fileList)
}

// errorHTML renders a minimal error page, grounded in html.rs's error_html.
func errorHTML(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Error - filtroserve</title>
<style>
body { font-family: system-ui, sans-serif; background: #1a1a2e; color: #e0e0e0; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; }
.error { text-align: center; padding: 40px; background: rgba(255,0,0,0.1); border-radius: 16px; border: 1px solid rgba(255,0,0,0.3); }
.error h1 { color: #ff6b6b; }
</style>
</head>
<body>
<div class="error">
<h1>Error</h1>
<p>%s</p>
<p><a href="/" style="color:#667eea;">Back to home</a></p>
</div>
</body>
</html>`, html.EscapeString(message))
}
