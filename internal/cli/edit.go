package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/preview"
	"github.com/ndreas/nota/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <name|path>",
	Short: "Edit a note",
	Long: `Opens a note's main file in your editor.

The editor is taken from the 'editor' config setting, then $EDITOR, then
vim. The editor runs in the foreground with the terminal attached.

Examples:
  nota edit thesis
  nota edit ideas.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := resolveNote(args[0])
		if err != nil {
			return handleResolveError(err, args[0])
		}

		command := preview.Editor(n, getConfig().GetEditor())

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"note":    recordFor(n, ""),
				"command": command.Name,
				"args":    command.Args,
			}, nil)
			return nil
		}

		fmt.Printf("Editing %s\n", ui.NotePath(n.MainPath()))
		if err := preview.Run(command); err != nil {
			return handleError(ErrCommandFailed, err, "Set 'editor' in the config file or $EDITOR")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
