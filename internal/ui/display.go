package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the fallback width when detection fails.
const DefaultTermWidth = 100

// IsTTY reports whether stdout is a terminal. Styled and columnar output is
// reserved for interactive use; piped output stays plain.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TermWidth returns the terminal width, or DefaultTermWidth when stdout is
// not a terminal or detection fails.
func TermWidth() int {
	if !IsTTY() {
		return DefaultTermWidth
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}
