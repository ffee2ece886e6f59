package repl

import (
	"fmt"
	"io"

	"github.com/unkiwii/ownlisp/internal/builtin"
	"github.com/unkiwii/ownlisp/internal/value"
)

// LoadFiles runs the "load" builtin against each named file in turn,
// writing any resulting Error to out. Grounded on the original ownlisp's
// main(argc, argv): each CLI file argument is wrapped as a single-element
// argument list and handed to the same builtin the language's own `load`
// form uses.
func LoadFiles(env value.Environment, out io.Writer, names []string) {
	for _, name := range names {
		args := value.NewSExpr()
		value.Add(args, value.NewString(name))
		result, err := builtin.NewLoad(out)(env, args)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("Error: "+err.Error()))
			continue
		}
		if result.Kind == value.Error {
			fmt.Fprintln(out, errorStyle.Render(result.String()))
		}
	}
}
