// Package parser implements GradeLang's recursive-descent parser: token
// stream in, ast.Program out.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gradelang/gradelang/ast"
	"github.com/gradelang/gradelang/gerrors"
	"github.com/gradelang/gradelang/lexer"
	"github.com/gradelang/gradelang/values"
)

// Parser consumes a flat token stream and builds an ast.Program. It holds no
// state beyond its token cursor, so a single Parser value is only good for
// one parse; construct a new one per input.
type Parser struct {
	tokens []lexer.Token
	pos    int
	source string
	file   string
}

// New constructs a Parser over the given source text. file is used only for
// error messages (empty for inline/REPL input).
func New(source, file string) *Parser {
	return &Parser{
		tokens: lexer.Tokenize(source),
		source: source,
		file:   file,
	}
}

// ParseProgram parses source into an ast.Program. This is the package's main
// entry point; New plus the ParseProgram method is exposed for callers that already built a
// Parser (e.g. for testing cursor state).
func ParseProgram(source, file string) (ast.Program, error) {
	return New(source, file).ParseProgram()
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Type == lexer.EOF }
func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) *gerrors.SourceError {
	return gerrors.NewParseError(pos, p.source, p.file, fmt.Sprintf(format, args...))
}

// ParseProgram parses the whole token stream into an ast.Program:
//
//	program := (category)* EOF
//	category := IDENTIFIER ':' expr
func (p *Parser) ParseProgram() (ast.Program, error) {
	prog := ast.Program{}
	for !p.atEnd() {
		tok := p.cur()
		if tok.Type == lexer.UNKNOWN {
			return nil, p.errorf(tok.Pos, "unexpected token %q", tok.Literal)
		}
		if tok.Type != lexer.IDENTIFIER {
			return nil, p.errorf(tok.Pos, "expected category name, got %s", tok.Type)
		}
		name := p.advance().Literal

		colon := p.cur()
		if colon.Type != lexer.COLON {
			return nil, p.errorf(colon.Pos, "expected ':' after category name %q", name)
		}
		p.advance()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		prog[name] = expr
	}
	return prog, nil
}

// parseExpr implements:
//
//	expr := PERCENT | UDOUBLE | INTEGER
//	      | IDENTIFIER ( '(' arglist ')' )?
//	      | '{' listbody '}'
func (p *Parser) parseExpr() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.PERCENT:
		p.advance()
		body := strings.TrimSuffix(tok.Literal, "%")
		d, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return nil, p.errorf(tok.Pos, "invalid percent literal %q", tok.Literal)
		}
		return ast.NewConstant(values.NewGrade(d/100.0), tok.Pos), nil

	case lexer.UDOUBLE:
		p.advance()
		d, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf(tok.Pos, "invalid double literal %q", tok.Literal)
		}
		return ast.NewConstant(values.NewGrade(d), tok.Pos), nil

	case lexer.INTEGER:
		p.advance()
		n, err := strconv.ParseUint(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(tok.Pos, "invalid integer literal %q", tok.Literal)
		}
		return ast.NewConstant(values.NewInteger(n), tok.Pos), nil

	case lexer.IDENTIFIER:
		p.advance()
		if p.cur().Type == lexer.LPAREN {
			p.advance()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return ast.NewOpCall(tok.Literal, args, tok.Pos), nil
		}
		return ast.NewCategoryRef(tok.Literal, tok.Pos), nil

	case lexer.LBRACE:
		return p.parseListLiteral()

	case lexer.UNKNOWN:
		return nil, p.errorf(tok.Pos, "unexpected token %q", tok.Literal)

	case lexer.COLON:
		return nil, p.errorf(tok.Pos, "unexpected ':'")

	default:
		return nil, p.errorf(tok.Pos, "unexpected token %s", tok.Type)
	}
}

// parseArgList implements: arglist := (expr)*  — a space-separated,
// comma-free list of argument expressions, terminated by ')'.
func (p *Parser) parseArgList() ([]ast.Expr, error) {
	var args []ast.Expr
	for {
		if p.atEnd() {
			return nil, p.errorf(p.cur().Pos, "unexpected end of input inside call arguments")
		}
		if p.cur().Type == lexer.RPAREN {
			p.advance()
			return args, nil
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

// parseListLiteral implements:
//
//	'{' listbody '}'
//	listbody := (listitem)*
//	listitem := expr (':' expr)?
func (p *Parser) parseListLiteral() (ast.Expr, error) {
	open := p.advance() // consume '{'
	var items []ast.ListItem
	for {
		if p.atEnd() {
			return nil, p.errorf(p.cur().Pos, "unexpected end of input inside list literal")
		}
		if p.cur().Type == lexer.RBRACE {
			p.advance()
			return ast.NewListLiteral(items, open.Pos), nil
		}
		valueExpr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		var weightExpr ast.Expr
		if p.cur().Type == lexer.COLON {
			p.advance()
			weightExpr, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		items = append(items, ast.ListItem{Value: valueExpr, Weight: weightExpr})
	}
}
