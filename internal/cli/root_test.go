package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func visitCommands(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		visitCommands(sub, fn)
	}
}

func TestAllFlagsHaveUsage(t *testing.T) {
	visitCommands(rootCmd, func(cmd *cobra.Command) {
		cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
			if flag.Name == "help" {
				return
			}
			if flag.Usage == "" {
				t.Errorf("%s: flag --%s has no usage text", cmd.Name(), flag.Name)
			}
		})
	})
}

func TestShorthandsUniquePerCommand(t *testing.T) {
	visitCommands(rootCmd, func(cmd *cobra.Command) {
		seen := make(map[string]string)
		cmd.Flags().VisitAll(func(flag *pflag.Flag) {
			if flag.Shorthand == "" {
				return
			}
			if prev, ok := seen[flag.Shorthand]; ok {
				t.Errorf("%s: shorthand -%s used by both --%s and --%s", cmd.Name(), flag.Shorthand, prev, flag.Name)
			}
			seen[flag.Shorthand] = flag.Name
		})
	})
}

func TestCommandsHaveRunners(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			continue
		}
		if cmd.RunE == nil && cmd.Run == nil && !cmd.HasSubCommands() {
			t.Errorf("command %q has no runner", cmd.Name())
		}
	}
}
