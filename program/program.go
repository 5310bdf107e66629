// Package program implements Program, the core spec's data provider that
// owns a parsed set of category expressions and evaluates them against a
// Context on lookup.
package program

import (
	"github.com/gradelang/gradelang/ast"
	"github.com/gradelang/gradelang/eval"
	"github.com/gradelang/gradelang/parser"
	"github.com/gradelang/gradelang/values"
)

// Program is a DataProvider backed by a parsed ast.Program. A Program owns
// its expressions: nothing outside the Program holds a reference to them
// once the Program is discarded.
type Program struct {
	categories ast.Program
	source     string
	file       string
}

// Parse parses source into a Program. file names the origin for error
// messages (empty for inline/REPL input).
func Parse(source, file string) (*Program, error) {
	prog, err := parser.ParseProgram(source, file)
	if err != nil {
		return nil, err
	}
	return &Program{categories: prog, source: source, file: file}, nil
}

// Names returns every category name this Program defines, in no particular
// order.
func (p *Program) Names() []string {
	names := make([]string, 0, len(p.categories))
	for name := range p.categories {
		names = append(names, name)
	}
	return names
}

// Expr returns the owning expression for name, or nil if this Program does
// not define it.
func (p *Program) Expr(name string) ast.Expr {
	return p.categories[name]
}

// File reports the origin this Program was parsed from.
func (p *Program) File() string { return p.file }

// GetCategoryValue implements eval.DataProvider: it looks up name's
// expression and evaluates it against ctx. found=false (not an error) means
// this Program doesn't define name, so the Context should try the next
// provider.
func (p *Program) GetCategoryValue(name string, ctx *eval.Context) (values.Value, bool, error) {
	expr, ok := p.categories[name]
	if !ok {
		return values.Value{}, false, nil
	}
	v, err := eval.Eval(ctx, expr)
	if err != nil {
		return values.Value{}, false, err
	}
	return v, true, nil
}
