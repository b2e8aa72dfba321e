// Package fs provides file-based storage for converted pages.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/webreduce"
)

// Filename maps a page URL to its output filename:
// <host>_<last-path-segment>.json, sanitized for the filesystem.
// Example: https://example.com/docs/api.htm → example.com_api.htm.json
func Filename(rawURL string) string {
	host := "nodomain"
	segment := "nopath"

	if u, err := url.Parse(rawURL); err == nil {
		if u.Host != "" {
			host = u.Host
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if last := segments[len(segments)-1]; last != "" {
			segment = last
		}
	}

	return sanitize(host+"_"+segment) + ".json"
}

// sanitize replaces characters that are unsafe in filenames across
// platforms with underscores.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
}

// Ensure Writer implements webreduce.PageWriter at compile time.
var _ webreduce.PageWriter = (*Writer)(nil)

// Writer writes converted pages as single-line JSON files.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage serializes the page's reduced tree as single-line JSON and
// writes it under the filename derived from the page URL. Returns the
// filename relative to the writer's base directory.
func (w *Writer) WritePage(ctx context.Context, page *webreduce.Page) (string, error) {
	if page == nil || page.Tree == nil {
		return "", webreduce.Errorf(webreduce.EINVALID, "page tree required")
	}

	data, err := json.Marshal(page.Tree)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	name := Filename(page.URL)
	if err := os.WriteFile(filepath.Join(w.baseDir, name), data, 0644); err != nil {
		return "", err
	}

	return name, nil
}
