package ast

import "github.com/gradelang/gradelang/lexer"

// OpCall is a call to a named built-in operation with ordered arguments.
type OpCall struct {
	Name string
	Args []Expr
	pos  lexer.Position
}

// NewOpCall builds an OpCall naming op over the given ordered arguments.
func NewOpCall(name string, args []Expr, pos lexer.Position) *OpCall {
	return &OpCall{Name: name, Args: args, pos: pos}
}

// Dependencies unions the dependencies of every argument.
func (c *OpCall) Dependencies() map[string]struct{} {
	deps := make(map[string]struct{})
	for _, arg := range c.Args {
		deps = mergeDeps(deps, arg)
	}
	return deps
}

// Pos returns the call's identifier token position.
func (c *OpCall) Pos() lexer.Position { return c.pos }
