package builtin

import (
	"github.com/unkiwii/ownlisp/internal/eval"
	"github.com/unkiwii/ownlisp/internal/value"
)

// List retypes its (already-evaluated) argument S-Expression into a
// Q-Expression, the original ownlisp's `a->type = LVAL_QEXPR; return a;`.
func List(env value.Environment, args *value.Value) (*value.Value, error) {
	args.Kind = value.QExpr
	return args, nil
}

// Head keeps only the first element of a non-empty Q-Expression argument.
func Head(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("head", args, 1); err != nil {
		return err, nil
	}
	if err := checkType("head", args, 0, value.QExpr); err != nil {
		return err, nil
	}
	if err := checkNotEmpty("head", args, 0); err != nil {
		return err, nil
	}
	q := args.Cells[0]
	for len(q.Cells) > 1 {
		value.Pop(q, 1)
	}
	return q, nil
}

// Tail drops the first element of a non-empty Q-Expression argument.
func Tail(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("tail", args, 1); err != nil {
		return err, nil
	}
	if err := checkType("tail", args, 0, value.QExpr); err != nil {
		return err, nil
	}
	if err := checkNotEmpty("tail", args, 0); err != nil {
		return err, nil
	}
	q := args.Cells[0]
	value.Pop(q, 0)
	return q, nil
}

// Eval re-interprets a Q-Expression argument as an S-Expression and
// evaluates it in env.
func Eval(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("eval", args, 1); err != nil {
		return err, nil
	}
	if err := checkType("eval", args, 0, value.QExpr); err != nil {
		return err, nil
	}
	q := args.Cells[0]
	q.Kind = value.SExpr
	return eval.Eval(env, q), nil
}

// Join concatenates any number of Q-Expression arguments into one.
func Join(env value.Environment, args *value.Value) (*value.Value, error) {
	for i := range args.Cells {
		if err := checkType("join", args, i, value.QExpr); err != nil {
			return err, nil
		}
	}
	if len(args.Cells) == 0 {
		return value.NewQExpr(), nil
	}
	result := args.Cells[0]
	for _, q := range args.Cells[1:] {
		result = value.Join(result, q)
	}
	return result, nil
}
