// Package eval implements the tree-walking evaluator: Eval/evalSExpr and
// the Call calling convention (currying, rest-marker variadic capture),
// grounded on t73f.de/r/sx's sxpf/eval.Engine.Eval and sxeval.Builtin.Call,
// and on the original ownlisp's leval/leval_sexpr/lcall.
package eval

import (
	"github.com/unkiwii/ownlisp/internal/value"
)

// Eval reduces v in env. A Symbol looks itself up (Get already returns an
// independent copy); an SExpr is reduced via evalSExpr; everything else
// (Integer, String, Error, QExpr, Function) passes through unchanged.
func Eval(env value.Environment, v *value.Value) *value.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case value.Symbol:
		return env.Get(v.Sym)
	case value.SExpr:
		return evalSExpr(env, v)
	default:
		return v
	}
}

// evalSExpr evaluates every child, short-circuits on the first Error, and
// otherwise requires the reduced head to be a Function before delegating to
// Call. The "def"/"=" special case — the second argument of a definition
// form is never evaluated it if is a bare Symbol — comes from original
// leval_sexpr's isdef handling, so that `def x 5` does not try to look up
// the symbol `x` itself.
func evalSExpr(env value.Environment, v *value.Value) *value.Value {
	isDef := false
	if len(v.Cells) > 0 && v.Cells[0].Kind == value.Symbol {
		switch v.Cells[0].Sym {
		case "def", "=":
			isDef = true
		}
	}

	for i, c := range v.Cells {
		if isDef && i == 1 && c.Kind == value.Symbol {
			continue
		}
		r := Eval(env, c)
		v.Cells[i] = r
		if r.Kind == value.Error {
			return value.Take(v, i)
		}
	}

	if len(v.Cells) == 0 {
		return v
	}
	if len(v.Cells) == 1 {
		return value.Take(v, 0)
	}

	f := value.Pop(v, 0)
	if f.Kind != value.Function {
		name := f.Kind.String()
		return value.NewError("%s does not start with a function", name)
	}
	result, err := Call(env, f, v)
	if err != nil {
		return value.NewError("%s", err.Error())
	}
	return result
}
