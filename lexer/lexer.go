/*
File    : noctis/lexer/lexer.go
*/

// Package lexer converts Noctis source text into a token stream. It is
// driven by a small three-state machine (start, in-token, end) over a rune
// cursor that supports one rune of pushback, matching the reference design
// in spec §4.1.
package lexer

import (
	"fmt"

	"github.com/noctis-lang/noctis/token"
)

// Error is returned when the lexer cannot finish a token, which only
// happens for an unterminated string or docstring.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// symbolChars is the punctuation set recognized as Symbol-kind characters
// (spec §4.1 symbol-char class). Multi-character operators are assembled
// later by the parser from consecutive Symbol tokens.
const symbolChars = "<>,?[]()-=+*/%`\\!:#_"

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbolChar(r rune) bool {
	for _, s := range symbolChars {
		if s == r {
			return true
		}
	}
	return false
}

// cursor walks a rune slice and supports a single rune of pushback, the
// only lookahead the state machine ever needs (spec §4.1 step 1/2).
type cursor struct {
	runes  []rune
	pos    int
	line   int
	column int
}

func newCursor(source string) *cursor {
	return &cursor{runes: []rune(source), pos: 0, line: 1, column: 1}
}

func (c *cursor) hasMore() bool {
	return c.pos < len(c.runes)
}

// pop dequeues the next rune, advancing line/column bookkeeping.
func (c *cursor) pop() (rune, bool) {
	if !c.hasMore() {
		return 0, false
	}
	r := c.runes[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// unread pushes one rune back onto the front of the cursor. Only ever
// called with the rune most recently popped, so line/column bookkeeping
// simply walks backward.
func (c *cursor) unread(r rune) {
	c.pos--
	if r == '\n' {
		c.line--
	} else {
		c.column--
	}
}

// Tokenize converts source into an ordered token stream. It is total over
// any input string: malformed whitespace or unrecognized characters are
// silently skipped, and the only hard failure is an unterminated string or
// docstring. CommentConstant tokens are produced internally but discarded
// before the slice is returned (spec §3.1/§4.1).
func Tokenize(source string) ([]token.Token, *Error) {
	c := newCursor(source)
	var tokens []token.Token

	for c.hasMore() {
		tok, err := nextToken(c)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue // whitespace or unrecognized character: discarded, stay in Start
		}
		if tok.Kind == token.CommentConstant {
			continue // never reaches the parser
		}
		tokens = append(tokens, *tok)
	}
	return tokens, nil
}

// nextToken runs the Start -> InToken -> End loop for exactly one token,
// returning (nil, nil) if the character consumed in Start was whitespace
// or otherwise uninterpretable (and so no token was started at all).
func nextToken(c *cursor) (*token.Token, *Error) {
	startLine, startColumn := c.line, c.column
	ch, ok := c.pop()
	if !ok {
		return nil, nil
	}

	var kind token.Kind
	var lexeme []rune

	switch {
	case isAlpha(ch):
		kind = token.Identifier
		lexeme = append(lexeme, ch)
	case isDigit(ch):
		kind = token.IntConstant
		lexeme = append(lexeme, ch)
	case ch == '"':
		kind = token.StringConstant
		// opening quote excluded from the lexeme
	case ch == '#':
		kind = token.CommentConstant
		lexeme = append(lexeme, ch)
	case ch == '`':
		kind = token.DocstringConstant
		// opening back-tick excluded from the lexeme
	case isSymbolChar(ch):
		kind = token.Symbol
		lexeme = append(lexeme, ch)
	default:
		// whitespace, newline, or any other uninterpretable character:
		// discard and remain in Start.
		return nil, nil
	}

	switch kind {
	case token.Identifier:
		if err := scanIdentifier(c, &lexeme); err != nil {
			return nil, err
		}
		if token.IsKeyword(string(lexeme)) {
			kind = token.Keyword
		}
	case token.IntConstant:
		kind = scanNumber(c, &lexeme)
	case token.StringConstant:
		if err := scanDelimited(c, &lexeme, '"', startLine, startColumn, "unterminated string constant"); err != nil {
			return nil, err
		}
	case token.DocstringConstant:
		if err := scanDelimited(c, &lexeme, '`', startLine, startColumn, "unterminated docstring"); err != nil {
			return nil, err
		}
	case token.CommentConstant:
		scanComment(c, &lexeme)
	case token.Symbol:
		// A Symbol token is always exactly one character: no further
		// character is read, so the token ends here.
	}

	return &token.Token{Kind: kind, Lexeme: string(lexeme), Line: startLine, Column: startColumn}, nil
}

func scanIdentifier(c *cursor, lexeme *[]rune) *Error {
	for {
		r, ok := c.pop()
		if !ok {
			return nil
		}
		if !isAlpha(r) {
			c.unread(r)
			return nil
		}
		*lexeme = append(*lexeme, r)
	}
}

// scanNumber continues an IntConstant, promoting it to FloatConstant on the
// first '.' encountered (spec §4.1 InToken/IntConstant rules).
func scanNumber(c *cursor, lexeme *[]rune) token.Kind {
	kind := token.IntConstant
	for {
		r, ok := c.pop()
		if !ok {
			return kind
		}
		switch {
		case kind == token.IntConstant && r == '.':
			kind = token.FloatConstant
			*lexeme = append(*lexeme, r)
		case isDigit(r):
			*lexeme = append(*lexeme, r)
		default:
			c.unread(r)
			return kind
		}
	}
}

func scanDelimited(c *cursor, lexeme *[]rune, closing rune, line, column int, failMessage string) *Error {
	for {
		r, ok := c.pop()
		if !ok {
			return &Error{Message: failMessage, Line: line, Column: column}
		}
		if r == closing {
			return nil
		}
		// Newlines and backslashes pass through verbatim: no escape
		// processing in this design (spec §4.1, §9 open question).
		*lexeme = append(*lexeme, r)
	}
}

func scanComment(c *cursor, lexeme *[]rune) {
	for {
		r, ok := c.pop()
		if !ok {
			return
		}
		if r == '\n' {
			c.unread(r) // left for Start to skip as whitespace
			return
		}
		*lexeme = append(*lexeme, r)
	}
}
