package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/discover"
	"github.com/ndreas/nota/internal/ignore"
	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/parser"
	"github.com/ndreas/nota/internal/ui"
)

var (
	listSortFlag   string
	listNumberFlag int
	listPathsFlag  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `Lists the notes in the notes directory.

Entries matching patterns in the directory's .ignore or .gitignore are
excluded. Default order is filesystem enumeration order; --sort picks
name, created (newest first) or modified (newest first).

Examples:
  nota list
  nota list --sort modified -n 10    # ten most recently edited notes
  nota list --paths                  # full paths instead of names`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := getRoot()

		mode, err := discover.ParseSort(listSortFlag)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		notes, err := discover.Notes(root, ignore.Build(root), discover.Options{
			Sort:  mode,
			Limit: listNumberFlag,
		})
		if err != nil {
			return handleError(ErrDirNotFound, err, "")
		}

		printNotes(notes)
		return nil
	},
}

// printNotes renders a note listing for list and search.
func printNotes(notes []*note.Note) {
	if isJSONOutput() {
		records := make([]noteRecord, len(notes))
		for i, n := range notes {
			records[i] = recordFor(n, parser.Title(n))
		}
		outputSuccess(records, &Meta{Count: len(records)})
		return
	}

	for _, n := range notes {
		name := n.Name
		if listPathsFlag {
			name = n.Path
		}
		line := ui.NotePath(name)
		if title := parser.Title(n); title != "" && ui.IsTTY() {
			line += "  " + ui.Hint(title)
		}
		fmt.Println(line)
	}
}

func init() {
	listCmd.Flags().StringVar(&listSortFlag, "sort", "", "Sort order: name, created or modified")
	listCmd.Flags().IntVarP(&listNumberFlag, "number", "n", 0, "Limit the number of notes shown (0 = all)")
	listCmd.Flags().BoolVar(&listPathsFlag, "paths", false, "Print full paths instead of names")
	rootCmd.AddCommand(listCmd)
}
