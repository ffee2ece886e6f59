package builtin

import "github.com/unkiwii/ownlisp/internal/value"

// defineOp implements both forms of "def"/"=", grounded on the original
// ownlisp's _bt_def:
//
//	(def {a b c} d e f)    - Q-Expression of symbols, one value per symbol
//	(def a b)              - a bare symbol, a single value
//
// bind is env.Def for "def" (global) and env.Put for "=" (local only).
func defineOp(name string, args *value.Value, bind func(name string, v *value.Value)) *value.Value {
	if len(args.Cells) == 0 {
		return errorf("function '%s' passed incorrect number of arguments. got 0, expected at least 1.", name)
	}

	first := args.Cells[0]
	switch first.Kind {
	case value.QExpr:
		symbols := first.Cells
		for _, s := range symbols {
			if s.Kind != value.Symbol {
				return errorf("function '%s' cannot define non-symbol. got '%s', expected '%s'.", name, s.Kind.String(), value.Symbol.String())
			}
		}
		values := args.Cells[1:]
		if len(symbols) != len(values) {
			return errorf("function '%s' cannot define incorrect number of values to symbols. got %d, expected %d.", name, len(values), len(symbols))
		}
		for i, s := range symbols {
			bind(s.Sym, values[i])
		}
		return value.NewSExpr()
	case value.Symbol:
		if err := checkArgCount(name, args, 2); err != nil {
			return err
		}
		bind(first.Sym, args.Cells[1])
		return value.NewSExpr()
	default:
		return errorf("only symbols can be defined")
	}
}

// Def binds globally, walking to the root environment.
func Def(env value.Environment, args *value.Value) (*value.Value, error) {
	return defineOp("def", args, env.Def), nil
}

// LocalDef binds only in the calling environment's own scope.
func LocalDef(env value.Environment, args *value.Value) (*value.Value, error) {
	return defineOp("=", args, env.Put), nil
}
