package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd spells out "ownlisp run file..." explicitly, for scripts that
// prefer a named subcommand over the root command's bare positional-args
// convenience.
var runCmd = &cobra.Command{
	Use:   "run file...",
	Short: "Load and evaluate one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runFiles(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
