package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/preview"
	"github.com/ndreas/nota/internal/ui"
)

var previewWithFlag []string

var previewCmd = &cobra.Command{
	Use:   "preview <name|path>",
	Short: "Preview a note",
	Long: `Previews a note with an external renderer.

Typst notes are opened with 'tinymist preview --root <note dir>'; markdown
notes with 'glow'. Both can be overridden with --with or the preview_typst /
preview_markdown settings in the config file. The argument is resolved the
same way as for 'nota edit': an existing path is used directly, otherwise
the name is matched against the notes directory.

Examples:
  nota preview thesis
  nota preview ideas.md --with "glow -p"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := resolveNote(args[0])
		if err != nil {
			return handleResolveError(err, args[0])
		}

		override := previewWithFlag
		if len(override) == 0 {
			if n.Type == note.Markdown {
				override = getConfig().PreviewMarkdown
			} else {
				override = getConfig().PreviewTypst
			}
		}

		command := preview.For(n, override)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"note":    recordFor(n, ""),
				"command": command.Name,
				"args":    command.Args,
			}, nil)
			return nil
		}

		fmt.Printf("Previewing %s\n", ui.NotePath(n.Name))
		fmt.Println(ui.Hint(command.String()))
		if err := preview.Run(command); err != nil {
			return handleError(ErrCommandFailed, err, "Is the preview command installed?")
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringSliceVar(&previewWithFlag, "with", nil, "Preview command override (binary and leading args)")
	rootCmd.AddCommand(previewCmd)
}
