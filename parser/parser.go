/*
File    : noctis/parser/parser.go
*/

// Package parser implements a hand-written recursive-descent parser for
// Noctis with single-token lookahead and one-token pushback, producing the
// tagged-variant AST defined in package ast (spec §4.2).
package parser

import (
	"fmt"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/lexer"
	"github.com/noctis-lang/noctis/token"
)

// Error is the parser's base error type: a human-readable message plus the
// position of the offending token.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// SyntaxError is raised for mis-nested delimiters and unexpected operator
// tokens inside expression productions (spec §7). It wraps an Error and
// unwraps to it, so callers that only care about the generic contract can
// use errors.As with *Error, and the %s/.Error() output is identical.
type SyntaxError struct {
	Err *Error
}

func (e *SyntaxError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped *Error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// cursor walks a pre-tokenized slice with a single token of pushback, per
// the reference design's eager tokenization (spec §4.2).
type cursor struct {
	tokens       []token.Token
	index        int
	current      token.Token
	previous     token.Token
	havePrevious bool
	atEOF        bool
}

func newCursor(tokens []token.Token) *cursor {
	c := &cursor{tokens: tokens}
	c.advance()
	return c
}

// advance moves current into previous and pops the next token off the
// queue. At end of stream, current becomes the zero-valued EOF token.
func (c *cursor) advance() {
	c.previous = c.current
	c.havePrevious = true
	if c.index < len(c.tokens) {
		c.current = c.tokens[c.index]
		c.index++
		c.atEOF = false
	} else {
		c.current = token.Token{Kind: token.EOF}
		c.atEOF = true
	}
}

// revert pushes current back onto the queue and restores current from
// previous, clearing previous. Only ever used one level deep.
func (c *cursor) revert() {
	if !c.atEOF {
		c.index--
	}
	c.current = c.previous
	c.atEOF = false
	c.havePrevious = false
	c.previous = token.Token{}
}

// lookahead returns the queue head without consuming it.
func (c *cursor) lookahead() token.Token {
	if c.index < len(c.tokens) {
		return c.tokens[c.index]
	}
	return token.Token{Kind: token.EOF}
}

// Parser consumes a token stream and produces one ast.Module. It tracks
// definedTypes, definedFunctions and definedConstructors across the whole
// parse; the last two classify a bare identifier in BasicExpr as a
// datatype-option literal, a function call, or a free variable (spec §4.2).
type Parser struct {
	c *cursor

	definedTypes     map[string]bool
	definedFunctions map[string]bool
	// definedConstructors tracks datatype option constructor names. It is
	// a natural extension of definedTypes: spec §4.2 says BasicExpr must
	// tell a constructor reference apart from a function call or a free
	// variable, which needs its own side set since constructors and
	// functions share one namespace of bare identifiers.
	definedConstructors map[string]bool
}

// New builds a Parser over an already-tokenized source.
func New(tokens []token.Token) *Parser {
	return &Parser{
		c:                   newCursor(tokens),
		definedTypes:        make(map[string]bool),
		definedFunctions:    make(map[string]bool),
		definedConstructors: make(map[string]bool),
	}
}

// NewFromSource tokenizes src and builds a Parser over the result,
// surfacing any lexer failure as a *Error.
func NewFromSource(src string) (*Parser, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens), nil
}

// Parse tokenizes and parses src in one call: the "parse a source string"
// half of the contract in spec §1.
func Parse(src string) (*ast.Module, error) {
	p, err := NewFromSource(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseTokens parses an already-tokenized stream: the "parse a token
// stream" half of the contract in spec §1.
func ParseTokens(tokens []token.Token) (*ast.Module, error) {
	return New(tokens).Parse()
}

func (p *Parser) errorf(format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    p.c.current.Line,
		Column:  p.c.current.Column,
	}
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Err: p.errorf(format, args...)}
}
