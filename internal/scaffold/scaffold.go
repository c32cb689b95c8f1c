// Package scaffold materializes a parsed template on disk as a new note.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/template"
)

// ErrExists is returned when the target path already exists. Existing files
// and directories are never overwritten or merged into.
var ErrExists = errors.New("note already exists")

// Options control how a note is materialized.
type Options struct {
	// Template supplies the directory skeleton and main-file content.
	// Nil means the built-in default template.
	Template *template.Template

	// Type selects which main-file content is injected.
	Type note.Type

	// FileNote creates the target as a single file instead of a directory
	// tree. The template's paths are not materialized for file notes.
	FileNote bool

	// Metadata, when non-nil, is rendered as a header ahead of the
	// template's main-file content.
	Metadata *Metadata
}

// Materialize creates a new note at target.
//
// For a folder note it creates the target directory, every entry of the
// template's paths tree, and one main file matching the note type. For a
// file note it creates only the target file. Materialization is not
// transactional: an IO failure partway through leaves the partial tree on
// disk and is reported as-is.
func Materialize(target string, opts Options) error {
	if _, err := os.Lstat(target); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, target)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	tpl := opts.Template
	if tpl == nil {
		tpl = template.Default()
	}

	var header string
	if opts.Metadata != nil {
		header = opts.Metadata.Render(opts.Type)
	}
	mainContent := header + tpl.Main(opts.Type)

	if opts.FileNote {
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(mainContent), 0644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		return nil
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if err := createPaths(target, tpl.Paths); err != nil {
		return err
	}

	mainPath := filepath.Join(target, opts.Type.MainFile())
	if err := os.WriteFile(mainPath, []byte(mainContent), 0644); err != nil {
		return fmt.Errorf("write %s: %w", mainPath, err)
	}
	return nil
}

// createPaths recursively materializes a template subtree under dir.
func createPaths(dir string, nodes map[string]*template.Node) error {
	for name, n := range nodes {
		path := filepath.Join(dir, name)
		if n == nil {
			n = &template.Node{Kind: template.EmptyDir}
		}
		switch n.Kind {
		case template.EmptyDir:
			if err := os.MkdirAll(path, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", path, err)
			}
		case template.Dir:
			if err := os.MkdirAll(path, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", path, err)
			}
			if err := createPaths(path, n.Children); err != nil {
				return err
			}
		case template.File:
			if err := os.WriteFile(path, []byte(n.Content), 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}
	return nil
}
