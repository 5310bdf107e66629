// Package gerrors formats GradeLang parse and evaluation errors with source
// context — a file:line:col header, the offending source line, and a caret
// — in the style of the teacher compiler's error reporter.
package gerrors

import (
	"fmt"
	"strings"

	"github.com/gradelang/gradelang/lexer"
)

// Kind classifies a SourceError per the core spec's §7 error kinds.
// ArityError is folded into KindResolution: the dispatch does not
// distinguish "name unknown" from "no overload matches this arity", both
// surface as "operation not found".
type Kind int

const (
	KindParse Kind = iota
	KindResolution
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindResolution:
		return "ResolutionError"
	case KindType:
		return "TypeError"
	default:
		return "Error"
	}
}

// SourceError is a GradeLang error carrying the offending position and
// enough of the source to render a caret-pointed excerpt.
type SourceError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
	File    string
}

// NewParseError builds a ParseError at pos with the given reason.
func NewParseError(pos lexer.Position, source, file, reason string) *SourceError {
	return &SourceError{Kind: KindParse, Message: reason, Pos: pos, Source: source, File: file}
}

// NewResolutionError builds a ResolutionError (e.g. operation not found).
func NewResolutionError(reason string) *SourceError {
	return &SourceError{Kind: KindResolution, Message: reason}
}

// NewTypeError builds a TypeError (argument not castable to any overload).
func NewTypeError(reason string) *SourceError {
	return &SourceError{Kind: KindType, Message: reason}
}

// Error implements the error interface using an uncolored Format.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error. When color is true, the caret is wrapped in
// ANSI red-bold escapes and the message in bold, matching the teacher
// compiler's terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.Source == "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))
		return sb.String()
	}

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
