package ast

import (
	"github.com/gradelang/gradelang/lexer"
	"github.com/gradelang/gradelang/values"
)

// Constant embeds a literal Value parsed directly from source: an INTEGER,
// UDOUBLE, or PERCENT token.
type Constant struct {
	Value values.Value
	pos   lexer.Position
}

// NewConstant builds a Constant expression carrying v.
func NewConstant(v values.Value, pos lexer.Position) *Constant {
	return &Constant{Value: v, pos: pos}
}

// Dependencies is always empty for a literal.
func (c *Constant) Dependencies() map[string]struct{} { return map[string]struct{}{} }

// Pos returns the literal token's position.
func (c *Constant) Pos() lexer.Position { return c.pos }
