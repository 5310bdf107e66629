// Package printer renders GradeLang's AST back to source text (for the
// `fmt` CLI command and for parse-print-parse round-trip tests) and renders
// runtime Values as percent-formatted text for the `run` REPL and the
// gradebook export/diff tooling. It is grounded on
// original_source/print_ast.cpp (AST rendering) and original_source/
// main.cpp's fmtPercent/printValueAsPercent (value rendering).
package printer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gradelang/gradelang/ast"
	"github.com/gradelang/gradelang/values"
)

// Print renders a single expression back to GradeLang source text.
func Print(expr ast.Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

// PrintProgram renders every category of prog as "name: expr", one per
// line, sorted by name for deterministic output.
func PrintProgram(prog ast.Program) string {
	names := make([]string, 0, len(prog))
	for name := range prog {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(Print(prog[name]))
		sb.WriteString("\n")
	}
	return sb.String()
}

func printExpr(sb *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Constant:
		sb.WriteString(formatLiteral(e))
	case *ast.CategoryRef:
		sb.WriteString(e.Name)
	case *ast.ListLiteral:
		printListLiteral(sb, e)
	case *ast.OpCall:
		printOpCall(sb, e)
	default:
		sb.WriteString(fmt.Sprintf("<unknown expr %T>", expr))
	}
}

func printListLiteral(sb *strings.Builder, lit *ast.ListLiteral) {
	sb.WriteString("{")
	for i, item := range lit.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		printExpr(sb, item.Value)
		if item.Weight != nil {
			sb.WriteString(":")
			printExpr(sb, item.Weight)
		}
	}
	sb.WriteString("}")
}

func printOpCall(sb *strings.Builder, call *ast.OpCall) {
	sb.WriteString(call.Name)
	sb.WriteString("(")
	for i, arg := range call.Args {
		if i > 0 {
			sb.WriteString(" ")
		}
		printExpr(sb, arg)
	}
	sb.WriteString(")")
}

// formatLiteral renders a Constant's embedded Value as the grammar's
// literal forms. Integer prints as a bare digit run (re-parses as
// INTEGER). Grade always prints with an explicit decimal point — even for
// a whole number like 1.0 — because a bare "1" would re-parse as an
// Integer constant instead of a Grade one, breaking the parse-print-parse
// round trip's structural equality.
func formatLiteral(c *ast.Constant) string {
	switch c.Value.Kind() {
	case values.Integer:
		return strconv.FormatUint(c.Value.AsInteger(), 10)
	case values.List:
		// A Constant never embeds a List in practice — list literals are
		// built by ListLiteral, not Constant — but render defensively
		// rather than panic.
		return "{}"
	default:
		s := strconv.FormatFloat(c.Value.AsGrade(), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
}
