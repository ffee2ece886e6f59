package eval_test

import (
	"testing"

	"github.com/unkiwii/ownlisp/internal/env"
	"github.com/unkiwii/ownlisp/internal/eval"
	"github.com/unkiwii/ownlisp/internal/value"
)

func sym(s string) *value.Value { return value.NewSymbol(s) }
func num(n int64) *value.Value  { return value.NewInteger(n) }

func qexpr(cells ...*value.Value) *value.Value {
	q := value.NewQExpr()
	for _, c := range cells {
		value.Add(q, c)
	}
	return q
}

func sexpr(cells ...*value.Value) *value.Value {
	s := value.NewSExpr()
	for _, c := range cells {
		value.Add(s, c)
	}
	return s
}

func addBuiltin(e value.Environment, args *value.Value) (*value.Value, error) {
	total := int64(0)
	for _, c := range args.Cells {
		total += c.Num
	}
	return value.NewInteger(total), nil
}

func TestEvalPassthroughAndSymbolLookup(t *testing.T) {
	r := env.NewRoot()
	r.Put("x", num(5))

	if got := eval.Eval(r, num(1)); got.Num != 1 {
		t.Errorf("literal did not pass through: %v", got)
	}
	if got := eval.Eval(r, sym("x")); got.Num != 5 {
		t.Errorf("symbol lookup: got %v, want 5", got)
	}
}

func TestEvalSExprEmptyAndSingleton(t *testing.T) {
	r := env.NewRoot()

	empty := sexpr()
	if got := eval.Eval(r, empty); got.Kind != value.SExpr || len(got.Cells) != 0 {
		t.Errorf("empty sexpr should evaluate to itself: %v", got)
	}

	single := sexpr(num(7))
	if got := eval.Eval(r, single); got.Kind != value.Integer || got.Num != 7 {
		t.Errorf("singleton sexpr should collapse to its one child: %v", got)
	}
}

func TestEvalSExprShortCircuitsOnError(t *testing.T) {
	r := env.NewRoot()
	r.Put("+", value.NewBuiltin("+", addBuiltin))

	form := sexpr(sym("+"), sym("undefined"), num(1))
	got := eval.Eval(r, form)
	if got.Kind != value.Error {
		t.Fatalf("expected an Error result, got %v", got)
	}
	if want := "unbound symbol undefined"; got.Err != want {
		t.Errorf("Err = %q, want %q", got.Err, want)
	}
}

func TestEvalSExprHeadMustBeFunction(t *testing.T) {
	r := env.NewRoot()
	form := sexpr(num(1), num(2))
	got := eval.Eval(r, form)
	if got.Kind != value.Error {
		t.Fatalf("expected Error, got %v", got)
	}
	if want := "Integer does not start with a function"; got.Err != want {
		t.Errorf("Err = %q, want %q", got.Err, want)
	}
}

func TestEvalSExprCallsBuiltin(t *testing.T) {
	r := env.NewRoot()
	r.Put("+", value.NewBuiltin("+", addBuiltin))

	form := sexpr(sym("+"), num(1), num(2), num(3))
	got := eval.Eval(r, form)
	if got.Kind != value.Integer || got.Num != 6 {
		t.Errorf("got %v, want 6", got)
	}
}

func TestDefSecondArgNotEvaluatedWhenSymbol(t *testing.T) {
	r := env.NewRoot()
	// "def" itself isn't registered as a builtin here; we only check that
	// evalSExpr never tries (and fails) to look up the bare symbol "y" used
	// as the second argument of a definition form.
	defBuiltin := func(e value.Environment, args *value.Value) (*value.Value, error) {
		return value.NewSExpr(), nil
	}
	r.Put("def", value.NewBuiltin("def", defBuiltin))

	form := sexpr(sym("def"), sym("y"), num(1))
	got := eval.Eval(r, form)
	if got.Kind == value.Error {
		t.Fatalf("def form should not fail by looking up its own target symbol: %v", got)
	}
}

func makeLambda(parent value.Environment, formals *value.Value, body *value.Value) *value.Value {
	child := env.NewChild(parent, "lambda")
	return value.NewLambda(formals, body, child)
}

func TestCallLambdaFullApplication(t *testing.T) {
	r := env.NewRoot()
	r.Put("+", value.NewBuiltin("+", addBuiltin))

	formals := qexpr(sym("x"), sym("y"))
	body := qexpr(sym("+"), sym("x"), sym("y"))
	f := makeLambda(r, formals, body)

	args := sexpr(num(2), num(3))
	got, err := eval.Call(r, f, args)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got.Kind != value.Integer || got.Num != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestCallLambdaCurrying(t *testing.T) {
	r := env.NewRoot()
	r.Put("+", value.NewBuiltin("+", addBuiltin))

	formals := qexpr(sym("x"), sym("y"))
	body := qexpr(sym("+"), sym("x"), sym("y"))
	f := makeLambda(r, formals, body)

	// Call mutates its f/args arguments in place (see call.go's doc
	// comment), relying on its caller to already own an independent copy —
	// exactly what env.Get's "lookup always returns an independent deep
	// copy" contract guarantees in production. Mirror that here instead of
	// calling Call on f directly, so f itself stays untouched below.
	curried := value.Copy(f)

	partial, err := eval.Call(r, curried, sexpr(num(2)))
	if err != nil {
		t.Fatalf("partial Call returned error: %v", err)
	}
	if partial.Kind != value.Function || len(partial.Formals.Cells) != 1 {
		t.Fatalf("expected a partially-applied lambda with one remaining formal, got %v", partial)
	}

	got, err := eval.Call(r, partial, sexpr(num(3)))
	if err != nil {
		t.Fatalf("final Call returned error: %v", err)
	}
	if got.Kind != value.Integer || got.Num != 5 {
		t.Errorf("got %v, want 5", got)
	}

	// The original lambda must still be fully applicable in one shot,
	// proving currying a copy of it never mutated f itself.
	if len(f.Formals.Cells) != 2 {
		t.Errorf("original lambda was mutated by currying a copy of it: formals = %v", f.Formals)
	}
	full, err := eval.Call(r, value.Copy(f), sexpr(num(2), num(3)))
	if err != nil {
		t.Fatalf("full Call on original returned error: %v", err)
	}
	if full.Kind != value.Integer || full.Num != 5 {
		t.Errorf("full application of original lambda: got %v, want 5", full)
	}
}

func TestCallLambdaRestMarker(t *testing.T) {
	r := env.NewRoot()
	r.Put("list", value.NewBuiltin("list", func(e value.Environment, args *value.Value) (*value.Value, error) {
		return args, nil
	}))

	formals := qexpr(sym("x"), sym(value.RestMarker), sym("rest"))
	body := qexpr(sym("rest"))
	f := makeLambda(r, formals, body)

	args := sexpr(num(1), num(2), num(3))
	got, err := eval.Call(r, f, args)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got.Kind != value.QExpr || len(got.Cells) != 2 {
		t.Fatalf("rest should capture [2 3] as a QExpr, got %v", got)
	}
	if got.Cells[0].Num != 2 || got.Cells[1].Num != 3 {
		t.Errorf("got %v, want {2 3}", got)
	}
}

func TestCallLambdaRestMarkerExactArityBindsEmpty(t *testing.T) {
	r := env.NewRoot()
	formals := qexpr(sym("x"), sym(value.RestMarker), sym("rest"))
	body := qexpr(sym("rest"))
	f := makeLambda(r, formals, body)

	args := sexpr(num(1))
	got, err := eval.Call(r, f, args)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got.Kind != value.QExpr || len(got.Cells) != 0 {
		t.Errorf("rest should bind to an empty QExpr when args fill exactly the positional arity, got %v", got)
	}
}

func TestCallLambdaTooManyArguments(t *testing.T) {
	r := env.NewRoot()
	formals := qexpr(sym("x"))
	body := qexpr(sym("x"))
	f := makeLambda(r, formals, body)

	_, err := eval.Call(r, f, sexpr(num(1), num(2)))
	if err == nil {
		t.Fatal("expected an arity error")
	}
	if want := "function passed too many arguments. got 2, expected 1"; err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}
