package cli

import (
	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/discover"
	"github.com/ndreas/nota/internal/ignore"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by name",
	Long: `Searches note names for a case-insensitive substring.

Matches keep discovery order; ignore-file exclusions apply the same as for
'nota list'.

Examples:
  nota search thesis
  nota search meeting --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := getRoot()

		notes, err := discover.Search(root, ignore.Build(root), args[0], discover.Options{})
		if err != nil {
			return handleError(ErrDirNotFound, err, "")
		}
		if len(notes) == 0 {
			return handleErrorMsg(ErrNoteNotFound, "no notes matching "+args[0], "Run 'nota list' to see available notes")
		}

		printNotes(notes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
