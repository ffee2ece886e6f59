package builtin

import (
	"io"

	"github.com/unkiwii/ownlisp/internal/value"
)

// entry pairs a reserved symbol with its native implementation, mirroring
// the registration table in t73fde-sx's sxpf/cmd/main.go (builtinsA /
// builtinsEEA) and the original ownlisp's lenv_add_builtins call order.
type entry struct {
	name string
	fn   value.Fn
}

// staticEntries holds every builtin that needs no output sink of its own.
// "load"/"print"/"println" are built separately in Register, closing over
// the caller's io.Writer, so that a REPL constructed over a custom Out
// (internal/repl.REPL.Out) sees their output too instead of it escaping to
// the real process stdout.
var staticEntries = []entry{
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{">", Gt},
	{">=", Gte},
	{"<", Lt},
	{"<=", Lte},
	{"=?", Eq},
	{"!=", Neq},
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"eval", Eval},
	{"join", Join},
	{`\`, Lambda},
	{"def", Def},
	{"=", LocalDef},
	{"if", If},
	{"error", Error},
}

// Register binds every reserved builtin symbol into env, directing
// "load"/"print"/"println" output to out.
func Register(env value.Environment, out io.Writer) {
	for _, e := range staticEntries {
		env.Put(e.name, value.NewBuiltin(e.name, e.fn))
	}
	env.Put("load", value.NewBuiltin("load", NewLoad(out)))
	env.Put("print", value.NewBuiltin("print", NewPrint(out)))
	env.Put("println", value.NewBuiltin("println", NewPrintln(out)))
}
