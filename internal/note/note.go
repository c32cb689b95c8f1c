// Package note defines the core note model: the markdown/typst type duality,
// the file-note/folder-note split, and the classification rules shared by
// discovery and resolution.
//
// A note is either a single file with a recognized extension (.md, .markdown,
// .typ) or a directory containing exactly one main file (main.md or main.typ).
// A directory with neither main file is not a note; a directory with both is
// ambiguous and also not a note.
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Type is the markup type of a note.
type Type int

const (
	Typst Type = iota
	Markdown
)

// String returns the short type name used on the CLI ("typ" or "md").
func (t Type) String() string {
	if t == Markdown {
		return "md"
	}
	return "typ"
}

// Ext returns the file extension for the type, including the dot.
func (t Type) Ext() string {
	if t == Markdown {
		return ".md"
	}
	return ".typ"
}

// MainFile returns the main-file name a folder note of this type contains.
func (t Type) MainFile() string {
	return "main" + t.Ext()
}

// ParseType parses a type name as accepted by --type ("md" or "typ").
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "typ", "typst":
		return Typst, nil
	case "md", "markdown":
		return Markdown, nil
	}
	return Typst, fmt.Errorf("invalid note type %q (want md or typ)", s)
}

// TypeForExt maps a file extension (with or without the leading dot) to a
// note type. Returns false for extensions that do not denote a note.
func TypeForExt(ext string) (Type, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "md", "markdown":
		return Markdown, true
	case "typ":
		return Typst, true
	}
	return Typst, false
}

// Kind distinguishes single-file notes from folder notes.
type Kind int

const (
	FileNote Kind = iota
	FolderNote
)

// Note is one discovered note. Records are recomputed on every invocation
// and never persisted.
type Note struct {
	// Name is the entry name under the root (including the extension for
	// file notes).
	Name string

	// Path is the note's path as given to Classify.
	Path string

	Kind Kind
	Type Type

	Modified time.Time
	Created  time.Time
}

// MainPath returns the file to open for this note: the note itself for a
// file note, or the contained main file for a folder note.
func (n *Note) MainPath() string {
	if n.Kind == FolderNote {
		return filepath.Join(n.Path, n.Type.MainFile())
	}
	return n.Path
}

// Classify inspects path and reports whether it is a note.
//
// It is the single classification point used by discovery and resolution so
// both apply identical rules.
func Classify(path string) (*Note, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if info.IsDir() {
		typ, ok := classifyDir(path)
		if !ok {
			return nil, false
		}
		return &Note{
			Name:     filepath.Base(path),
			Path:     path,
			Kind:     FolderNote,
			Type:     typ,
			Modified: info.ModTime(),
			Created:  createdTime(info),
		}, true
	}

	typ, ok := TypeForExt(filepath.Ext(path))
	if !ok {
		return nil, false
	}
	return &Note{
		Name:     filepath.Base(path),
		Path:     path,
		Kind:     FileNote,
		Type:     typ,
		Modified: info.ModTime(),
		Created:  createdTime(info),
	}, true
}

// classifyDir reports the type of a folder note. A directory qualifies only
// when exactly one of main.typ/main.md is present; both present is ambiguous
// and the directory is skipped rather than guessed at.
func classifyDir(path string) (Type, bool) {
	hasTyp := isFile(filepath.Join(path, Typst.MainFile()))
	hasMd := isFile(filepath.Join(path, Markdown.MainFile()))

	switch {
	case hasTyp && hasMd:
		return Typst, false
	case hasTyp:
		return Typst, true
	case hasMd:
		return Markdown, true
	}
	return Typst, false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
