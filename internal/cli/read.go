package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/ui"
)

var readRawFlag bool

var readCmd = &cobra.Command{
	Use:   "read <name|path>",
	Short: "Read a note in the terminal",
	Long: `Prints a note's main file.

Markdown notes are rendered for the terminal; typst notes (and --raw) are
printed verbatim. Unlike 'nota preview' this never launches an external
program.

Examples:
  nota read ideas.md
  nota read thesis --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := resolveNote(args[0])
		if err != nil {
			return handleResolveError(err, args[0])
		}

		main := n.MainPath()
		content, err := os.ReadFile(main)
		if err != nil {
			return handleError(ErrFileReadError, fmt.Errorf("read %s: %w", main, err), "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"note":    recordFor(n, ""),
				"content": string(content),
			}, nil)
			return nil
		}

		if readRawFlag || n.Type != note.Markdown || !ui.IsTTY() {
			fmt.Print(string(content))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(content), ui.TermWidth())
		if err != nil {
			// Rendering is cosmetic; fall back to the raw content.
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readRawFlag, "raw", false, "Print the raw file content without rendering")
	rootCmd.AddCommand(readCmd)
}
