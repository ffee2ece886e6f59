// Package repl implements the interactive read-eval-print loop and its
// meta-commands, grounded on t73fde-sx's sxpf/cmd/main.go repl() function
// (print prompt, read, recognize meta-commands before evaluating, print
// result) and on the original ownlisp's main.c banner and cmd_exit/
// cmd_help/cmd_env trio.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/unkiwii/ownlisp/internal/eval"
	"github.com/unkiwii/ownlisp/internal/parser"
	"github.com/unkiwii/ownlisp/internal/value"
)

const (
	versionBanner = "Lisp Version 0.0.1"
	helpHint      = "type .help if you want to know more"

	helpText = `Meta-commands:
  .help   show this text
  .env    list every binding in the top-level environment
  .exit   leave the REPL
Anything else is parsed and evaluated as a language form.`
)

// REPL reads forms from In, evaluates them in Env, and writes results to
// Out. Env is expected to already have every builtin registered.
type REPL struct {
	Env value.Environment
	In  io.Reader
	Out io.Writer
}

// New creates a REPL over env, in and out.
func New(env value.Environment, in io.Reader, out io.Writer) *REPL {
	return &REPL{Env: env, In: in, Out: out}
}

// Run executes the loop until In is exhausted or ".exit" is entered.
func (r *REPL) Run() error {
	fmt.Fprintln(r.Out, versionBanner)
	fmt.Fprintln(r.Out, hintStyle.Render(helpHint))

	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, promptStyle.Render("lisp> "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ".exit":
			return nil
		case ".help":
			fmt.Fprintln(r.Out, helpText)
			continue
		case ".env":
			r.printEnv()
			continue
		}

		r.evalAndPrint(line)
	}
}

func (r *REPL) evalAndPrint(line string) {
	form, err := parser.Parse("<repl>", strings.NewReader(line))
	if err != nil {
		fmt.Fprintln(r.Out, errorStyle.Render("Error: parse error at "+err.Error()))
		return
	}

	result := eval.Eval(r.Env, form)
	if value.IsEmptySExpr(result) {
		return
	}
	if result.Kind == value.Error {
		fmt.Fprintln(r.Out, errorStyle.Render(result.String()))
		return
	}
	fmt.Fprintln(r.Out, resultStyle.Render(result.String()))
}

func (r *REPL) printEnv() {
	fmt.Fprintln(r.Out, "{")
	for _, b := range r.Env.Bindings() {
		fmt.Fprintf(r.Out, "  %s: %s\n", b.Name, b.Value.String())
	}
	fmt.Fprintln(r.Out, "}")
}
