package value

// Copy produces an independent deep copy of v. For Lambdas the captured
// environment is deep-copied too, so that later binding the copy's formals
// (as happens during partial application) never affects the original.
func Copy(v *Value) *Value {
	if v == nil {
		return nil
	}
	cp := &Value{Kind: v.Kind}
	switch v.Kind {
	case Integer:
		cp.Num = v.Num
	case Error:
		cp.Err = v.Err
	case Symbol:
		cp.Sym = v.Sym
	case String:
		cp.Str = v.Str
	case SExpr, QExpr:
		if v.Cells != nil {
			cp.Cells = make([]*Value, len(v.Cells))
			for i, c := range v.Cells {
				cp.Cells[i] = Copy(c)
			}
		}
	case Function:
		cp.FKind = v.FKind
		if v.FKind == BuiltinFunc {
			cp.BuiltinName = v.BuiltinName
			cp.Builtin = v.Builtin
		} else {
			cp.Formals = Copy(v.Formals)
			cp.Body = Copy(v.Body)
			if v.Env != nil {
				cp.Env = v.Env.Copy()
			}
		}
	}
	return cp
}
