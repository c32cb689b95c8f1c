package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/config"
	"github.com/ndreas/nota/internal/ui"
)

const starterIgnore = `# Entries matching these patterns are hidden from nota list/search.
# Syntax follows .gitignore (globs, ** wildcards, ! negation).
.git
.env
`

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a notes directory",
	Long: `Creates a notes directory with a starter .ignore file, and a global
config file if none exists yet.

Examples:
  nota init              # initialize the current directory
  nota init ~/notes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return handleError(ErrFileWriteError, fmt.Errorf("create %s: %w", dir, err), "")
		}

		ignorePath := filepath.Join(dir, ".ignore")
		if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
			if err := os.WriteFile(ignorePath, []byte(starterIgnore), 0644); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		configPath, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"dir":    dir,
				"config": configPath,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Initialized notes directory %s", ui.NotePath(dir)))
		fmt.Println(ui.Hint("config: " + configPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
