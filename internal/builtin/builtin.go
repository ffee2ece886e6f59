// Package builtin implements every reserved-symbol primitive and registers
// them into a root environment, grounded on t73f.de/r/sx's
// sxpf/builtins.CheckArgs/GetSymbol/GetNumber chained-error helper pattern
// and on the original ownlisp's LASSERT family of macros in builtins.c.
package builtin

import (
	"github.com/unkiwii/ownlisp/internal/value"
)

// checkArgCount asserts args has exactly n cells, returning an Error Value
// formatted like the original's LASSERT_NUM macro.
func checkArgCount(name string, args *value.Value, n int) *value.Value {
	if len(args.Cells) != n {
		return value.NewError("function '%s' passed incorrect number of arguments. got %d, expected %d.", name, len(args.Cells), n)
	}
	return nil
}

// checkArgCountRange asserts len(args.Cells) is min or max, per LASSERT_NUM_OR.
func checkArgCountRange(name string, args *value.Value, min, max int) *value.Value {
	n := len(args.Cells)
	if n != min && n != max {
		return value.NewError("function '%s' passed incorrect number of arguments. got %d, expected %d or %d.", name, n, min, max)
	}
	return nil
}

// checkArgCountAtLeast asserts args has at least n cells.
func checkArgCountAtLeast(name string, args *value.Value, n int) *value.Value {
	if len(args.Cells) < n {
		return value.NewError("function '%s' passed incorrect number of arguments. got %d, expected at least %d.", name, len(args.Cells), n)
	}
	return nil
}

// checkType asserts the argument at index pos has kind k, per LASSERT_TYPE.
func checkType(name string, args *value.Value, pos int, k value.Kind) *value.Value {
	if args.Cells[pos].Kind != k {
		return value.NewError("function '%s' passed incorrect type for argument %d. got '%s', expected '%s'.",
			name, pos, args.Cells[pos].Kind.String(), k.String())
	}
	return nil
}

// checkNotEmpty asserts the QExpr argument at index pos is non-empty, per
// LASSERT_NOT_EMPTY.
func checkNotEmpty(name string, args *value.Value, pos int) *value.Value {
	if len(args.Cells[pos].Cells) == 0 {
		return value.NewError("function '%s' passed {} for argument %d.", name, pos)
	}
	return nil
}

func errorf(format string, a ...any) *value.Value {
	return value.NewError(format, a...)
}
