package builtin

import (
	"github.com/unkiwii/ownlisp/internal/eval"
	"github.com/unkiwii/ownlisp/internal/value"
)

// If implements `(if cond {then} {else})`, the else branch being optional.
// A nonzero Integer condition is truthy, matching the original ownlisp's
// lack of a dedicated boolean kind.
func If(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCountRange("if", args, 2, 3); err != nil {
		return err, nil
	}
	if err := checkType("if", args, 0, value.Integer); err != nil {
		return err, nil
	}
	if err := checkType("if", args, 1, value.QExpr); err != nil {
		return err, nil
	}

	if args.Cells[0].Num != 0 {
		branch := args.Cells[1]
		branch.Kind = value.SExpr
		return eval.Eval(env, branch), nil
	}
	if len(args.Cells) == 3 {
		if err := checkType("if", args, 2, value.QExpr); err != nil {
			return err, nil
		}
		branch := args.Cells[2]
		branch.Kind = value.SExpr
		return eval.Eval(env, branch), nil
	}
	return value.NewSExpr(), nil
}
