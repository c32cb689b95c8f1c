// Package slugs provides file-safe name normalization for new notes.
package slugs

import (
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// Name converts a note name to a file-safe slug, preserving a recognized
// extension: "My Note.md" -> "my-note.md", "Reading List" -> "reading-list".
func Name(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	slugged := goslug.Make(base)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	}
	return slugged + strings.ToLower(ext)
}

// Path slugifies the final element of a path, leaving parent directories
// untouched so "projects/My Note" becomes "projects/my-note".
func Path(path string) string {
	dir, base := filepath.Split(path)
	return dir + Name(base)
}
