/*
File    : noctis/token/token.go
*/

// Package token defines the vocabulary of the Noctis language: the set of
// token kinds the lexer produces and the reserved-word table the lexer and
// parser both consult.
package token

// Kind identifies the lexical category of a Token. It is a string (rather
// than an int) so that tests and error messages can print it directly,
// matching the teacher's TokenType convention.
type Kind string

const (
	// EOF marks the end of the token stream. The lexer never emits it as
	// part of Tokenize's returned slice; it exists purely for the parser's
	// Cursor to signal "nothing left".
	EOF Kind = "EOF"

	Identifier        Kind = "Identifier"
	Keyword           Kind = "Keyword"
	StringConstant    Kind = "StringConstant"
	DocstringConstant Kind = "DocstringConstant"
	CommentConstant   Kind = "CommentConstant" // filtered before Tokenize returns
	Symbol            Kind = "Symbol"
	IntConstant       Kind = "IntConstant"
	FloatConstant     Kind = "FloatConstant"
)

// Token is an immutable (kind, lexeme) pair produced by the lexer and
// consumed linearly by the parser. Line and Column are 1-indexed and are
// carried for diagnostics even though the core spec treats position
// tracking as optional.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// New constructs a Token without position metadata. Used freely in tests
// where position doesn't matter.
func New(kind Kind, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

// NewAt constructs a Token with full position metadata, as produced by the
// lexer during a real tokenize pass.
func NewAt(kind Kind, lexeme string, line, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

// Keywords is the reserved-word table from spec §6.1/§4.1: basic type
// names and statement keywords. Any Identifier-shaped lexeme found in this
// map is reclassified as Keyword by the lexer.
var Keywords = map[string]bool{
	// Basic types
	"Character": true,
	"String":    true,
	"Integer":   true,
	"Boolean":   true,
	"Float":     true,
	"Callable":  true,
	"Anything":  true,
	"Nothing":   true,
	"Error":     true,

	// Statements
	"import":  true,
	"module":  true,
	"where":   true,
	"takes":   true,
	"returns": true,
	"log":     true,
	"only":    true,
	"except":  true,
	"warn":    true,
	"true":    true,
	"false":   true,
	"type":    true,
	"datatype": true,
	"private":  true,
}

// IsKeyword reports whether lexeme belongs to the reserved-word set.
func IsKeyword(lexeme string) bool {
	return Keywords[lexeme]
}

// IsPrimitiveType reports whether name is one of the built-in type keywords
// usable in a signature or datatype field list.
func IsPrimitiveType(name string) bool {
	switch name {
	case "Character", "String", "Integer", "Boolean", "Float", "Callable", "Anything", "Nothing", "Error":
		return true
	default:
		return false
	}
}
