package builtin

import (
	"github.com/unkiwii/ownlisp/internal/env"
	"github.com/unkiwii/ownlisp/internal/value"
)

// Lambda implements `\ {formals} {body}`, building a Function Value with a
// fresh, parentless captured environment — its parent is patched to the
// call site only when the lambda is actually invoked (eval.Call), per the
// original ownlisp's lval_lambda/lcall split.
func Lambda(e value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount(`\`, args, 2); err != nil {
		return err, nil
	}
	if err := checkType(`\`, args, 0, value.QExpr); err != nil {
		return err, nil
	}
	if err := checkType(`\`, args, 1, value.QExpr); err != nil {
		return err, nil
	}

	formals := args.Cells[0]
	for _, s := range formals.Cells {
		if s.Kind != value.Symbol {
			return errorf("cannot define non-symbol. got '%s', expected '%s'.", s.Kind.String(), value.Symbol.String()), nil
		}
	}

	return value.NewLambda(formals, args.Cells[1], env.NewChild(nil, "lambda")), nil
}
