// Package ignore excludes root entries from note discovery using the
// standard ignore-file syntax.
//
// Patterns are read from .ignore and .gitignore at the root, in that order,
// so later patterns (including ! negations) win over earlier ones, matching
// gitignore precedence.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// ignoreFiles are read in order; both may contribute patterns.
var ignoreFiles = []string{".ignore", ".gitignore"}

// Set is a compiled set of ignore patterns for one root.
type Set struct {
	matcher *gitignore.GitIgnore
}

// Build compiles the ignore set for root. Missing ignore files contribute
// no patterns; a root without ignore files yields a set that excludes
// nothing. Build never fails: unreadable files are treated as absent.
func Build(root string) *Set {
	var lines []string
	for _, name := range ignoreFiles {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) == 0 {
		return &Set{}
	}
	return &Set{matcher: gitignore.CompileIgnoreLines(lines...)}
}

// Ignored reports whether the named root entry is excluded. The name is
// matched relative to the root; patterns are not applied inside folder
// notes, only to whole top-level entries.
func (s *Set) Ignored(name string) bool {
	if s == nil || s.matcher == nil {
		return false
	}
	return s.matcher.MatchesPath(name)
}
