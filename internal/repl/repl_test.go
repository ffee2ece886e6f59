package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/unkiwii/ownlisp/internal/builtin"
	"github.com/unkiwii/ownlisp/internal/env"
	"github.com/unkiwii/ownlisp/internal/repl"
)

func newTestREPL(input string) (*repl.REPL, *bytes.Buffer) {
	root := env.NewRoot()
	out := &bytes.Buffer{}
	builtin.Register(root, out)
	return repl.New(root, strings.NewReader(input), out), out
}

func TestReplSession(t *testing.T) {
	testcases := []struct {
		name  string
		input string
	}{
		{name: "arithmetic", input: "(+ 1 2 3)\n.exit\n"},
		{name: "define_and_call", input: "def {square} (\\ {x} {* x x})\n(square 5)\n.exit\n"},
		{name: "unbound_symbol_error", input: "nope\n.exit\n"},
		{name: "head_of_empty_is_error", input: "(head {})\n.exit\n"},
		{name: "help_command", input: ".help\n.exit\n"},
		{name: "println_writes_to_repl_out", input: `(println "hi" 1 2)` + "\n.exit\n"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			r, out := newTestREPL(tc.input)
			if err := r.Run(); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}

func TestReplEnvCommandListsBindings(t *testing.T) {
	r, out := newTestREPL("def {x} 1\n.env\n.exit\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "x: 1") {
		t.Errorf(".env output missing binding, got:\n%s", out.String())
	}
}

// TestPrintWritesToInjectedOut guards against "print"/"println"/"load"
// writing to the real process stdout instead of the REPL's own Out: every
// one of these builtins is registered with builtin.Register(root, out)
// sharing the exact io.Writer the REPL reads results from.
func TestPrintWritesToInjectedOut(t *testing.T) {
	r, out := newTestREPL(`(println "hi" 1 2)` + "\n.exit\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "hi 1 2") {
		t.Errorf("println output missing from injected Out, got:\n%s", out.String())
	}
}
