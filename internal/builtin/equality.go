package builtin

import "github.com/unkiwii/ownlisp/internal/value"

// Eq implements "=?" and Neq implements "!=": structural equality via
// value.Eq, grounded on the original ownlisp's _bt_cmp built on lval_eq.
func Eq(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("=?", args, 2); err != nil {
		return err, nil
	}
	if value.Eq(args.Cells[0], args.Cells[1]) {
		return value.NewInteger(1), nil
	}
	return value.NewInteger(0), nil
}

func Neq(env value.Environment, args *value.Value) (*value.Value, error) {
	if err := checkArgCount("!=", args, 2); err != nil {
		return err, nil
	}
	if !value.Eq(args.Cells[0], args.Cells[1]) {
		return value.NewInteger(1), nil
	}
	return value.NewInteger(0), nil
}
