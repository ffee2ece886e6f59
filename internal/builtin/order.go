package builtin

import "github.com/unkiwii/ownlisp/internal/value"

func orderOp(name string, args *value.Value, cmp func(a, b int64) bool) (*value.Value, error) {
	if err := checkArgCount(name, args, 2); err != nil {
		return err, nil
	}
	if err := checkType(name, args, 0, value.Integer); err != nil {
		return err, nil
	}
	if err := checkType(name, args, 1, value.Integer); err != nil {
		return err, nil
	}
	if cmp(args.Cells[0].Num, args.Cells[1].Num) {
		return value.NewInteger(1), nil
	}
	return value.NewInteger(0), nil
}

func Gt(env value.Environment, args *value.Value) (*value.Value, error) {
	return orderOp(">", args, func(a, b int64) bool { return a > b })
}

func Gte(env value.Environment, args *value.Value) (*value.Value, error) {
	return orderOp(">=", args, func(a, b int64) bool { return a >= b })
}

func Lt(env value.Environment, args *value.Value) (*value.Value, error) {
	return orderOp("<", args, func(a, b int64) bool { return a < b })
}

func Lte(env value.Environment, args *value.Value) (*value.Value, error) {
	return orderOp("<=", args, func(a, b int64) bool { return a <= b })
}
