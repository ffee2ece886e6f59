// Package cmd wires the cobra CLI surface, grounded on go-dws's
// cmd/dwscript/cmd/{root,run}.go: a rootCmd carrying a version string plus
// a run subcommand, with bare positional file arguments on the root command
// itself as a convenience matching the language's own "interp file..." form.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/unkiwii/ownlisp/internal/builtin"
	"github.com/unkiwii/ownlisp/internal/env"
	"github.com/unkiwii/ownlisp/internal/repl"
)

// Version is set by build flags; it defaults to a development marker.
var Version = "0.0.1-dev"

var rootCmd = &cobra.Command{
	Use:   "ownlisp [file...]",
	Short: "A small Lisp-like interpreter",
	Long: `ownlisp is a tree-walking interpreter for a small, homoiconic
Lisp-like language: integers, symbols, strings, S-Expressions and
Q-Expressions, a single calling convention that supports currying and a
variadic rest-marker, and a fixed set of builtins.

Run with no arguments to start an interactive REPL. Pass one or more file
arguments to load and evaluate them in sequence, exactly like the language's
own "load" builtin.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL()
		}
		return runFiles(args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func newRootEnv(out io.Writer) *env.Root {
	root := env.NewRoot()
	builtin.Register(root, out)
	return root
}

func runREPL() error {
	r := repl.New(newRootEnv(os.Stdout), os.Stdin, os.Stdout)
	return r.Run()
}

func runFiles(files []string) error {
	repl.LoadFiles(newRootEnv(os.Stdout), os.Stdout, files)
	return nil
}
