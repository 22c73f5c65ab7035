/*
File    : noctis/ast/print.go
*/
package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print renders m as canonical Noctis source text. Reparsing the output is
// expected to yield a structurally equal Module (spec §8 property 8): this
// is the "expected add-on" canonical pretty-printer, not part of the core
// lexer/parser contract.
func Print(w io.Writer, m *Module) error {
	var b strings.Builder

	for _, dep := range m.Depends {
		writeImport(&b, dep)
	}

	if m.Importable {
		fmt.Fprintf(&b, "module %s where\n\n", m.Name)
	}

	for _, td := range m.Types {
		fmt.Fprintf(&b, "type %s = %s\n\n", td.Name, td.Shadows)
	}

	for _, dd := range m.Datatypes {
		printDatatype(&b, dd)
	}

	for _, fn := range m.Functions {
		printFunction(&b, fn)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeImport writes one `import M`, `import M only x` or
// `import M except x` line for a single fingerprint. Fingerprints sharing a
// module name are not merged; each gets its own line, which reparses to
// the same fingerprint list.
func writeImport(b *strings.Builder, fingerprint string) {
	switch {
	case strings.HasSuffix(fingerprint, ".*"):
		fmt.Fprintf(b, "import %s\n", strings.TrimSuffix(fingerprint, ".*"))
	case strings.Contains(fingerprint, "!"):
		parts := strings.SplitN(fingerprint, "!", 2)
		fmt.Fprintf(b, "import %s except %s\n", parts[0], parts[1])
	case strings.Contains(fingerprint, "."):
		parts := strings.SplitN(fingerprint, ".", 2)
		fmt.Fprintf(b, "import %s only %s\n", parts[0], parts[1])
	}
}

func printDatatype(b *strings.Builder, dd *DatatypeDecl) {
	fmt.Fprintf(b, "datatype %s = ", dd.Name)
	for i, opt := range dd.Options {
		if i > 0 {
			b.WriteString(" or ")
		}
		b.WriteString(opt.Constructor)
		for _, f := range opt.Fields {
			b.WriteString(" ")
			b.WriteString(f.String())
		}
	}
	b.WriteString("\n\n")
}

func printFunction(b *strings.Builder, fn *Function) {
	if fn.Private {
		b.WriteString("private ")
	}
	if fn.Signature != nil {
		fmt.Fprintf(b, "%s takes ", fn.Signature.Name)
		for i, p := range fn.Signature.Params {
			if i > 0 {
				b.WriteString(" and ")
			}
			b.WriteString(p.String())
		}
		fmt.Fprintf(b, " returns %s\n", fn.Signature.ReturnType.String())
	}
	if fn.Docstring != "" {
		fmt.Fprintf(b, "`%s`\n", fn.Docstring)
	}
	for _, clause := range fn.Clauses {
		b.WriteString(fn.Name)
		for _, p := range clause.Params {
			b.WriteString(" ")
			b.WriteString(p)
		}
		b.WriteString(" = ")
		printExpr(b, clause.Body)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func printExpr(b *strings.Builder, e *Expr) {
	if e == nil {
		b.WriteString("Nothing")
		return
	}
	switch e.Kind {
	case ExprBinary:
		printExpr(b, e.Lhs)
		fmt.Fprintf(b, " %s ", e.Op)
		printExpr(b, e.Rhs)
	case ExprUnary:
		fmt.Fprintf(b, "%s ", e.Op)
		printExpr(b, e.Lhs)
	case ExprConditional:
		printExpr(b, e.Cond)
		b.WriteString(" ? ")
		printExpr(b, e.True)
		b.WriteString(" : ")
		printExpr(b, e.False)
	case ExprCoalesce:
		printExpr(b, e.Lhs)
		b.WriteString(" ?? ")
		printExpr(b, e.Rhs)
	case ExprCall:
		b.WriteString(e.Name)
		for _, arg := range e.Args {
			b.WriteString(" ")
			printExpr(b, arg)
		}
	case ExprListPair:
		b.WriteString("[")
		first := true
		for cur := e; cur != nil && cur.Kind == ExprListPair; cur = cur.Tail {
			if !first {
				b.WriteString(", ")
			}
			first = false
			printExpr(b, cur.Head)
		}
		b.WriteString("]")
	case ExprInt:
		fmt.Fprintf(b, "%d", e.IntValue)
	case ExprFloat:
		fmt.Fprintf(b, "%v", e.FloatValue)
	case ExprString:
		fmt.Fprintf(b, "%q", e.StringValue)
	case ExprBool:
		if e.BoolValue {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ExprNothing:
		b.WriteString("Nothing")
	case ExprAnything:
		b.WriteString("Anything")
	}
}
