package ast

import "github.com/gradelang/gradelang/lexer"

// ListItem is one element of a ListLiteral: a value expression with an
// optional weight expression. A nil Weight means the default weight of 1.0.
type ListItem struct {
	Value  Expr
	Weight Expr
}

// ListLiteral is a `{ ... }` list constructor.
type ListLiteral struct {
	Items []ListItem
	pos   lexer.Position
}

// NewListLiteral builds a ListLiteral from the given items.
func NewListLiteral(items []ListItem, pos lexer.Position) *ListLiteral {
	return &ListLiteral{Items: items, pos: pos}
}

// Dependencies unions the dependencies of every item's value and weight
// sub-expression.
func (l *ListLiteral) Dependencies() map[string]struct{} {
	deps := make(map[string]struct{})
	for _, item := range l.Items {
		deps = mergeDeps(deps, item.Value)
		if item.Weight != nil {
			deps = mergeDeps(deps, item.Weight)
		}
	}
	return deps
}

// Pos returns the opening '{' token's position.
func (l *ListLiteral) Pos() lexer.Position { return l.pos }
