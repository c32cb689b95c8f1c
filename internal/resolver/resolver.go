// Package resolver locates a note from a user-supplied name or path.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndreas/nota/internal/discover"
	"github.com/ndreas/nota/internal/ignore"
	"github.com/ndreas/nota/internal/note"
)

// NotFoundError reports that no note matched the query.
type NotFoundError struct {
	Query string
	Root  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no note matching %q found in %s", e.Query, e.Root)
}

// AmbiguousError reports that more than one note matched the query. The
// caller surfaces the candidates instead of guessing.
type AmbiguousError struct {
	Query      string
	Candidates []*note.Note
}

func (e *AmbiguousError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, n := range e.Candidates {
		names[i] = n.Name
	}
	return fmt.Sprintf("%q matches multiple notes: %s", e.Query, strings.Join(names, ", "))
}

// Resolve locates the note named by nameOrPath.
//
// An existing filesystem path (absolute or relative to the working
// directory) is taken directly, re-validated against the same
// classification rules discovery uses. Otherwise the root is discovered and
// matched by exact name first, then by case-insensitive substring.
func Resolve(root, nameOrPath string) (*note.Note, error) {
	if _, err := os.Stat(nameOrPath); err == nil {
		n, ok := note.Classify(nameOrPath)
		if !ok {
			return nil, fmt.Errorf("%s is not a note (no recognized extension or main file)", nameOrPath)
		}
		return n, nil
	}

	notes, err := discover.Notes(root, ignore.Build(root), discover.Options{})
	if err != nil {
		return nil, err
	}

	// Exact name first. File notes also match on their stem, so "journal"
	// finds journal.md when nothing is named journal exactly.
	var exact []*note.Note
	for _, n := range notes {
		if strings.EqualFold(n.Name, nameOrPath) || strings.EqualFold(stem(n), nameOrPath) {
			exact = append(exact, n)
		}
	}
	if len(exact) == 0 {
		q := strings.ToLower(nameOrPath)
		for _, n := range notes {
			if strings.Contains(strings.ToLower(n.Name), q) {
				exact = append(exact, n)
			}
		}
	}

	switch len(exact) {
	case 0:
		return nil, &NotFoundError{Query: nameOrPath, Root: root}
	case 1:
		return exact[0], nil
	default:
		return nil, &AmbiguousError{Query: nameOrPath, Candidates: exact}
	}
}

func stem(n *note.Note) string {
	if n.Kind == note.FileNote {
		return strings.TrimSuffix(n.Name, filepath.Ext(n.Name))
	}
	return n.Name
}
