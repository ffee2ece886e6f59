package value

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String returns the standard printed representation of v.
func (v *Value) String() string {
	var sb strings.Builder
	_, _ = Print(&sb, v)
	return sb.String()
}

// Print writes the standard representation of v to w, returning the byte
// count written. An empty SExpr prints as "()"; the REPL itself skips empty
// top-level results, so they produce no output line there.
func Print(w io.Writer, v *Value) (int, error) {
	if v == nil {
		return 0, nil
	}
	switch v.Kind {
	case Integer:
		return io.WriteString(w, fmt.Sprintf("%d", v.Num))
	case Error:
		return io.WriteString(w, "Error: "+v.Err)
	case Symbol:
		return io.WriteString(w, v.Sym)
	case String:
		return printString(w, v.Str)
	case SExpr:
		return printExpr(w, v, '(', ')')
	case QExpr:
		return printExpr(w, v, '{', '}')
	case Function:
		if v.FKind == BuiltinFunc {
			return io.WriteString(w, "<builtin>")
		}
		return printLambda(w, v)
	default:
		return 0, fmt.Errorf("print: unknown kind %v", v.Kind)
	}
}

func printExpr(w io.Writer, v *Value, open, close byte) (int, error) {
	total := 0
	n, err := w.Write([]byte{open})
	total += n
	if err != nil {
		return total, err
	}
	for i, c := range v.Cells {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = Print(w, c)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = w.Write([]byte{close})
	total += n
	return total, err
}

func printLambda(w io.Writer, v *Value) (int, error) {
	total, err := io.WriteString(w, `(\ `)
	if err != nil {
		return total, err
	}
	n, err := Print(w, v.Formals)
	total += n
	if err != nil {
		return total, err
	}
	n, err = io.WriteString(w, " ")
	total += n
	if err != nil {
		return total, err
	}
	n, err = Print(w, v.Body)
	total += n
	if err != nil {
		return total, err
	}
	n, err = io.WriteString(w, ")")
	total += n
	return total, err
}

func printString(w io.Writer, s string) (int, error) {
	total, err := io.WriteString(w, `"`)
	if err != nil {
		return total, err
	}
	for i := 0; i < len(s); {
		ch, size := rune(s[i]), 1
		if ch >= utf8.RuneSelf {
			ch, size = utf8.DecodeRuneInString(s[i:])
		}
		var esc string
		switch ch {
		case '"':
			esc = `\"`
		case '\\':
			esc = `\\`
		case '\n':
			esc = `\n`
		case '\t':
			esc = `\t`
		case '\r':
			esc = `\r`
		default:
			if unicode.IsPrint(ch) {
				n, werr := io.WriteString(w, string(ch))
				total += n
				if werr != nil {
					return total, werr
				}
				i += size
				continue
			}
			esc = fmt.Sprintf("\\x%02x", ch)
		}
		n, werr := io.WriteString(w, esc)
		total += n
		if werr != nil {
			return total, werr
		}
		i += size
	}
	n, err := io.WriteString(w, `"`)
	total += n
	return total, err
}
