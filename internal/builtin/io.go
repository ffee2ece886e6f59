package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/unkiwii/ownlisp/internal/eval"
	"github.com/unkiwii/ownlisp/internal/parser"
	"github.com/unkiwii/ownlisp/internal/value"
)

// NewLoad builds the "load" builtin, writing to out instead of the real
// process stdout, so that a REPL constructed over a custom io.Writer (see
// internal/repl.REPL.Out) observes the same output its other side effects
// do. It reads and parses the named file, then evaluates each top-level
// form in env in turn. An Error result is printed to out (not raised) so
// that later forms in the file still run — the original ownlisp's behavior
// for top-level load errors. A parse failure is reported as a single Error,
// "parse error at <name>:<line>:<col>: <detail>", and no form is evaluated.
func NewLoad(out io.Writer) value.Fn {
	return func(env value.Environment, args *value.Value) (*value.Value, error) {
		if err := checkArgCount("load", args, 1); err != nil {
			return err, nil
		}
		if err := checkType("load", args, 0, value.String); err != nil {
			return err, nil
		}

		name := args.Cells[0].Str
		f, openErr := os.Open(name)
		if openErr != nil {
			return errorf("could not load %s", name), nil
		}
		defer f.Close()

		program, parseErr := parser.Parse(name, f)
		if parseErr != nil {
			return errorf("parse error at %s", parseErr.Error()), nil
		}

		for _, form := range program.Cells {
			result := eval.Eval(env, form)
			if result.Kind == value.Error {
				fmt.Fprintln(out, result.String())
			}
		}
		return value.NewSExpr(), nil
	}
}

// NewPrint builds the "print" builtin, writing every argument to out, space
// separated, with no trailing newline; strings print without their
// surrounding quotes.
func NewPrint(out io.Writer) value.Fn {
	return func(env value.Environment, args *value.Value) (*value.Value, error) {
		printArgs(out, args, false)
		return value.NewSExpr(), nil
	}
}

// NewPrintln builds the "println" builtin: NewPrint plus a trailing newline.
func NewPrintln(out io.Writer) value.Fn {
	return func(env value.Environment, args *value.Value) (*value.Value, error) {
		printArgs(out, args, true)
		return value.NewSExpr(), nil
	}
}

func printArgs(out io.Writer, args *value.Value, newline bool) {
	for i, c := range args.Cells {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		if c.Kind == value.String {
			fmt.Fprint(out, c.Str)
		} else {
			fmt.Fprint(out, c.String())
		}
	}
	if newline {
		fmt.Fprintln(out)
	}
}

// Error builds an Error Value whose message is the given string argument,
// verbatim.
func Error(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("error", args, 1); err != nil {
		return err, nil
	}
	if err := checkType("error", args, 0, value.String); err != nil {
		return err, nil
	}
	return errorf("%s", args.Cells[0].Str), nil
}
