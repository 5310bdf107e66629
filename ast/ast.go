// Package ast defines GradeLang's expression tree: the parser's output and
// the evaluator's input. Expr is a small tagged union over four variants —
// Constant, CategoryRef, ListLiteral, and OpCall — kept as an interface so
// the evaluator can type-switch over them rather than carrying evaluation
// logic on the tree itself (the tree has no notion of a Context).
package ast

import "github.com/gradelang/gradelang/lexer"

// Expr is any node in a GradeLang expression tree.
type Expr interface {
	// Dependencies returns the set of category names reachable from this
	// expression, computable without evaluating it. Hosts use this for
	// scheduling and validation; the evaluator does not consult it.
	Dependencies() map[string]struct{}

	// Pos returns the position of the token that introduced this
	// expression, used for error reporting.
	Pos() lexer.Position
}

// Program is the parser's top-level output: a mapping from category name to
// its owning expression. The parser does not enforce uniqueness — a later
// category definition silently overwrites an earlier one in the map.
type Program map[string]Expr

// mergeDeps is a small helper used by the composite Expr variants to union
// their children's dependency sets.
func mergeDeps(dst map[string]struct{}, srcs ...Expr) map[string]struct{} {
	if dst == nil {
		dst = make(map[string]struct{})
	}
	for _, e := range srcs {
		for name := range e.Dependencies() {
			dst[name] = struct{}{}
		}
	}
	return dst
}
