// Command ownlisp is the process entry point: run with no arguments to get
// an interactive REPL, or "ownlisp file..." / "ownlisp run file..." to load
// and evaluate one or more source files.
package main

import (
	"fmt"
	"os"

	"github.com/unkiwii/ownlisp/cmd/ownlisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
