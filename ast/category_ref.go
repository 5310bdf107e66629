package ast

import "github.com/gradelang/gradelang/lexer"

// CategoryRef is a late-bound reference to another category, resolved
// against a Context at evaluation time.
type CategoryRef struct {
	Name string
	pos  lexer.Position
}

// NewCategoryRef builds a CategoryRef naming the given category.
func NewCategoryRef(name string, pos lexer.Position) *CategoryRef {
	return &CategoryRef{Name: name, pos: pos}
}

// Dependencies is the singleton set containing this reference's own name.
func (r *CategoryRef) Dependencies() map[string]struct{} {
	return map[string]struct{}{r.Name: {}}
}

// Pos returns the identifier token's position.
func (r *CategoryRef) Pos() lexer.Position { return r.pos }
