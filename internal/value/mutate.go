package value

// Add appends child to an SExpr or QExpr, returning v for chaining. It
// mirrors the original lval_add: v must already be of a list kind.
func Add(v, child *Value) *Value {
	v.Cells = append(v.Cells, child)
	return v
}

// Pop removes and returns the i-th child of a list Value, shifting the
// remaining children down. The list itself survives with one less cell.
func Pop(v *Value, i int) *Value {
	child := v.Cells[i]
	v.Cells = append(v.Cells[:i], v.Cells[i+1:]...)
	return child
}

// Take is Pop followed by discarding the (now uninteresting) container.
// Go's GC reclaims v; Take exists so call sites read the same as the
// originating lval_take.
func Take(v *Value, i int) *Value { return Pop(v, i) }

// Join transfers every child of y to the end of x, in order, and returns x.
// y is left empty; it is not reused afterwards.
func Join(x, y *Value) *Value {
	x.Cells = append(x.Cells, y.Cells...)
	y.Cells = nil
	return x
}
