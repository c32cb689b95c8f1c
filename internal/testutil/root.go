// Package testutil provides reusable helpers for tests that need a notes
// root on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRoot builds a temporary notes root for a test.
type TestRoot struct {
	Path  string
	t     *testing.T
	files map[string]string
	dirs  []string
}

// NewTestRoot creates a new root builder. Call Build to create the
// directory tree.
func NewTestRoot(t *testing.T) *TestRoot {
	t.Helper()
	return &TestRoot{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file (path relative to the root) with the given content.
func (r *TestRoot) WithFile(path, content string) *TestRoot {
	r.files[path] = content
	return r
}

// WithDir adds an empty directory.
func (r *TestRoot) WithDir(path string) *TestRoot {
	r.dirs = append(r.dirs, path)
	return r
}

// WithFolderNote adds a folder note containing a main file of the given
// name ("main.md" or "main.typ") with content.
func (r *TestRoot) WithFolderNote(name, mainFile, content string) *TestRoot {
	r.files[filepath.Join(name, mainFile)] = content
	return r
}

// Build creates the root directory and all configured entries.
func (r *TestRoot) Build() *TestRoot {
	r.t.Helper()
	r.Path = r.t.TempDir()

	for _, dir := range r.dirs {
		if err := os.MkdirAll(filepath.Join(r.Path, dir), 0755); err != nil {
			r.t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}
	for path, content := range r.files {
		full := filepath.Join(r.Path, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			r.t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			r.t.Fatalf("failed to write file %s: %v", path, err)
		}
	}
	return r
}

// ReadFile reads a file from the root.
func (r *TestRoot) ReadFile(relPath string) string {
	r.t.Helper()
	content, err := os.ReadFile(filepath.Join(r.Path, relPath))
	if err != nil {
		r.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// Exists reports whether a path exists under the root.
func (r *TestRoot) Exists(relPath string) bool {
	r.t.Helper()
	_, err := os.Stat(filepath.Join(r.Path, relPath))
	return err == nil
}

// IsDir reports whether a path under the root is a directory.
func (r *TestRoot) IsDir(relPath string) bool {
	r.t.Helper()
	info, err := os.Stat(filepath.Join(r.Path, relPath))
	return err == nil && info.IsDir()
}
