package builtin

import "github.com/unkiwii/ownlisp/internal/value"

const (
	nameAdd = "+"
	nameSub = "-"
	nameMul = "*"
	nameDiv = "/"
)

// arithOp implements +, -, *, / uniformly: every argument must be an
// Integer; a single argument to "-" negates it; otherwise the operator
// folds left starting from the first argument. Grounded on the original
// ownlisp's _bt_op and on sxpf/builtins/number.Add's fold-left shape.
func arithOp(name string, args *value.Value, apply func(acc, x int64) (int64, *value.Value)) (*value.Value, error) {
	if err := checkArgCountAtLeast(name, args, 1); err != nil {
		return err, nil
	}
	for i := range args.Cells {
		if err := checkType(name, args, i, value.Integer); err != nil {
			return err, nil
		}
	}

	if name == nameSub && len(args.Cells) == 1 {
		return value.NewInteger(-args.Cells[0].Num), nil
	}

	acc := args.Cells[0].Num
	for _, c := range args.Cells[1:] {
		var errv *value.Value
		acc, errv = apply(acc, c.Num)
		if errv != nil {
			return errv, nil
		}
	}
	return value.NewInteger(acc), nil
}

func Add(env value.Environment, args *value.Value) (*value.Value, error) {
	return arithOp(nameAdd, args, func(acc, x int64) (int64, *value.Value) { return acc + x, nil })
}

func Sub(env value.Environment, args *value.Value) (*value.Value, error) {
	return arithOp(nameSub, args, func(acc, x int64) (int64, *value.Value) { return acc - x, nil })
}

func Mul(env value.Environment, args *value.Value) (*value.Value, error) {
	return arithOp(nameMul, args, func(acc, x int64) (int64, *value.Value) { return acc * x, nil })
}

func Div(env value.Environment, args *value.Value) (*value.Value, error) {
	return arithOp(nameDiv, args, func(acc, x int64) (int64, *value.Value) {
		if x == 0 {
			return 0, value.NewError("division by zero")
		}
		return acc / x, nil
	})
}
