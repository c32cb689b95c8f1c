// Package preview selects and runs the external commands used to preview
// and edit notes.
//
// The core decision is command selection only: a typst note defaults to
// tinymist, a markdown note to glow, and either can be overridden per
// invocation or from config. The chosen command runs synchronously with the
// terminal handed over to it; lifecycle beyond that (signals, timeouts) is
// the child's business.
package preview

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ndreas/nota/internal/note"
)

// Command is an external command ready to run.
type Command struct {
	Name string
	Args []string
}

// String renders the command for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// For builds the preview command for a note. override, when non-empty,
// replaces the per-type default; the note's main file is always appended as
// the final argument.
func For(n *note.Note, override []string) Command {
	main := n.MainPath()

	if len(override) > 0 {
		return Command{Name: override[0], Args: append(append([]string{}, override[1:]...), main)}
	}

	if n.Type == note.Markdown {
		return Command{Name: "glow", Args: []string{main}}
	}
	// tinymist needs the note directory as its project root so relative
	// includes (images, bibliography) resolve.
	return Command{
		Name: "tinymist",
		Args: []string{"preview", "--root", filepath.Dir(main), main},
	}
}

// Editor builds the edit command for a note. The editor argument comes from
// config; $EDITOR and then vim are the fallbacks.
func Editor(n *note.Note, editor string) Command {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	// Compound editor settings like "code --wait" are split on whitespace.
	fields := strings.Fields(editor)
	return Command{Name: fields[0], Args: append(fields[1:], n.MainPath())}
}

// Run executes the command with the terminal attached and waits for it to
// finish.
func Run(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", c.Name, err)
	}
	return nil
}
