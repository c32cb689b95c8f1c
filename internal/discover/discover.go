// Package discover walks a notes root and produces note records.
//
// Discovery is deliberately one level deep: a note is by definition a
// top-level file with a recognized extension or a top-level directory
// containing a main file, so there is nothing to find further down. Every
// call re-reads the filesystem; no state survives between invocations.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ndreas/nota/internal/ignore"
	"github.com/ndreas/nota/internal/note"
)

// Sort selects the ordering of discovered notes.
type Sort int

const (
	// SortNone keeps filesystem enumeration order.
	SortNone Sort = iota
	SortName
	// SortCreated orders by creation time, newest first.
	SortCreated
	// SortModified orders by modification time, newest first.
	SortModified
)

// ParseSort parses the --sort flag value.
func ParseSort(s string) (Sort, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortName, nil
	case "created":
		return SortCreated, nil
	case "modified":
		return SortModified, nil
	}
	return SortNone, fmt.Errorf("invalid sort mode %q (want name, created or modified)", s)
}

// Options control ordering and result size.
type Options struct {
	Sort Sort

	// Limit caps the number of records returned; zero or negative means
	// unlimited.
	Limit int
}

// Notes enumerates the immediate children of root and returns the ones that
// classify as notes, minus ignored entries.
func Notes(root string, set *ignore.Set, opts Options) ([]*note.Note, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read notes directory %s: %w", root, err)
	}

	var notes []*note.Note
	for _, entry := range entries {
		name := entry.Name()
		if set.Ignored(name) {
			continue
		}
		if n, ok := note.Classify(filepath.Join(root, name)); ok {
			notes = append(notes, n)
		}
	}

	switch opts.Sort {
	case SortName:
		sort.Slice(notes, func(i, j int) bool { return notes[i].Name < notes[j].Name })
	case SortCreated:
		sort.Slice(notes, func(i, j int) bool { return notes[i].Created.After(notes[j].Created) })
	case SortModified:
		sort.Slice(notes, func(i, j int) bool { return notes[i].Modified.After(notes[j].Modified) })
	}

	if opts.Limit > 0 && len(notes) > opts.Limit {
		notes = notes[:opts.Limit]
	}
	return notes, nil
}

// Search returns the notes whose name contains query, case-insensitively.
// Order is preserved from discovery; there is no ranking beyond containment.
func Search(root string, set *ignore.Set, query string, opts Options) ([]*note.Note, error) {
	notes, err := Notes(root, set, Options{Sort: opts.Sort})
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := notes[:0]
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Name), q) {
			matched = append(matched, n)
		}
	}

	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}
