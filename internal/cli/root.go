// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/config"
)

var (
	// Global flags
	dirFlag    string
	configPath string

	// Resolved values
	resolvedRoot string
	cfg          *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "nota",
	Short: "nota - plain-text notes in markdown and typst",
	Long: `nota manages a directory of plain-text notes.

A note is either a single .md/.typ file or a directory containing a main.md
or main.typ. Notes are scaffolded from YAML templates, listed and searched
with gitignore-style exclusions, and previewed through external renderers
(tinymist for typst, glow for markdown).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that work without a notes root.
		switch cmd.Name() {
		case "init", "version", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		resolvedRoot = cfg.ResolveDir(dirFlag)
		if info, err := os.Stat(resolvedRoot); err != nil || !info.IsDir() {
			return fmt.Errorf("notes directory not found: %s\n\nRun 'nota init %s' to create it", resolvedRoot, resolvedRoot)
		}

		// Per-root defaults (.env) feed the NOTA_* lookups below.
		config.LoadRootEnv(resolvedRoot)

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Notes directory (default: $NOTA_DIR, config, or cwd)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// getRoot returns the resolved notes root.
func getRoot() string {
	return resolvedRoot
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
