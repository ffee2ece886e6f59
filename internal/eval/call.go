package eval

import (
	"fmt"

	"github.com/unkiwii/ownlisp/internal/value"
)

// Call applies f (a Function Value) to args (an SExpr whose cells are
// already-evaluated arguments). For a Builtin this is a direct dispatch.
// For a Lambda this implements the full calling convention: formals are
// bound positionally; a formal equal to the rest-marker (":") captures every
// remaining argument as a QExpr under the symbol that follows it, including
// the corner case where the positional arity is filled exactly and the rest
// symbol must still be bound to an empty QExpr. Supplying fewer arguments
// than formals returns a partially-applied copy of f (currying); supplying
// more than formals accept is an arity error.
//
// f and args are both expected to be values the caller already owns
// independently (as produced by an Environment.Get copy or literal
// construction) — Call freely mutates both.
func Call(env value.Environment, f *value.Value, args *value.Value) (*value.Value, error) {
	if f.FKind == value.BuiltinFunc {
		return f.Builtin(env, args)
	}
	return callLambda(env, f, args)
}

func callLambda(callSite value.Environment, f *value.Value, args *value.Value) (*value.Value, error) {
	argsGiven := len(args.Cells)
	argsTotal := len(f.Formals.Cells)

	for len(args.Cells) > 0 {
		if len(f.Formals.Cells) == 0 {
			return nil, fmt.Errorf("function passed too many arguments. got %d, expected %d", argsGiven, argsTotal)
		}

		sym := value.Pop(f.Formals, 0)
		if sym.Sym == value.RestMarker {
			if len(f.Formals.Cells) != 1 {
				return nil, fmt.Errorf("function format invalid. symbol '%s' not followed by single symbol.", value.RestMarker)
			}
			restSym := value.Pop(f.Formals, 0)
			rest := value.NewQExpr()
			for _, a := range args.Cells {
				value.Add(rest, a)
			}
			args.Cells = nil
			f.Env.Put(restSym.Sym, rest)
			break
		}

		val := value.Pop(args, 0)
		f.Env.Put(sym.Sym, val)
	}

	if len(f.Formals.Cells) > 0 && f.Formals.Cells[0].Sym == value.RestMarker {
		if len(f.Formals.Cells) != 2 {
			return nil, fmt.Errorf("function format invalid. symbol ':' not followed by single symbol.")
		}
		value.Pop(f.Formals, 0)
		restSym := value.Pop(f.Formals, 0)
		f.Env.Put(restSym.Sym, value.NewQExpr())
	}

	if len(f.Formals.Cells) == 0 {
		f.Env.SetParent(callSite)
		body := value.Copy(f.Body)
		body.Kind = value.SExpr
		return Eval(f.Env, body), nil
	}

	return value.Copy(f), nil
}
