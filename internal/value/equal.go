package value

// Eq reports structural equality between a and b, per the rules of the
// language's data model: same kind and same contents, recursively. Two
// builtins are equal iff they were registered under the same canonical
// name; two lambdas are equal iff their formals and bodies are
// structurally equal (captured environments are never compared).
func Eq(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.Num == b.Num
	case Error:
		return a.Err == b.Err
	case Symbol:
		return a.Sym == b.Sym
	case String:
		return a.Str == b.Str
	case SExpr, QExpr:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Eq(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case Function:
		if a.FKind != b.FKind {
			return false
		}
		if a.FKind == BuiltinFunc {
			return a.BuiltinName == b.BuiltinName
		}
		return Eq(a.Formals, b.Formals) && Eq(a.Body, b.Body)
	default:
		return false
	}
}
