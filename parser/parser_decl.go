/*
File    : noctis/parser/parser_decl.go
*/
package parser

import (
	"unicode"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/token"
)

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsUpper(r)
}

// parseTypeDecl parses `type Name = Primitive` (spec §3.2).
func (p *Parser) parseTypeDecl() (*ast.TypeDecl, error) {
	p.c.advance() // consume "type"

	if p.c.current.Kind != token.Identifier || !startsUpper(p.c.current.Lexeme) {
		return nil, p.errorf("Expected a capitalized type name here but got %s", p.c.current.Lexeme)
	}
	name := p.c.current.Lexeme
	p.c.advance()

	if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "=") {
		return nil, p.errorf("Expected '=' in type declaration but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	if p.c.current.Kind != token.Keyword || !token.IsPrimitiveType(p.c.current.Lexeme) {
		return nil, p.errorf("Expected a primitive type name here but got %s", p.c.current.Lexeme)
	}
	shadows := p.c.current.Lexeme
	p.c.advance()

	p.definedTypes[name] = true
	return &ast.TypeDecl{Name: name, Shadows: shadows}, nil
}

// parseDatatypeDecl parses `datatype Name = Option (or Option)*`, where
// each Option is a constructor identifier followed by zero or more field
// type references (spec §3.2).
func (p *Parser) parseDatatypeDecl() (*ast.DatatypeDecl, error) {
	p.c.advance() // consume "datatype"

	if p.c.current.Kind != token.Identifier || !startsUpper(p.c.current.Lexeme) {
		return nil, p.errorf("Expected a capitalized datatype name here but got %s", p.c.current.Lexeme)
	}
	name := p.c.current.Lexeme
	p.c.advance()

	if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "=") {
		return nil, p.errorf("Expected '=' in datatype declaration but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	var options []*ast.DatatypeOption
	opt, err := p.parseDatatypeOption()
	if err != nil {
		return nil, err
	}
	options = append(options, opt)

	// "or" is not in the reserved-word table (spec §6.1); it is matched as
	// a plain Identifier lexeme.
	for p.c.current.Kind == token.Identifier && p.c.current.Lexeme == "or" {
		p.c.advance()
		opt, err := p.parseDatatypeOption()
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	p.definedTypes[name] = true
	for _, o := range options {
		p.definedConstructors[o.Constructor] = true
	}

	return &ast.DatatypeDecl{Name: name, Options: options}, nil
}

// parseDatatypeOption parses one constructor and its field types, e.g.
// `Circle Float` or `Rectangle Float Float`.
func (p *Parser) parseDatatypeOption() (*ast.DatatypeOption, error) {
	if p.c.current.Kind != token.Identifier || !startsUpper(p.c.current.Lexeme) {
		return nil, p.errorf("Expected a capitalized constructor name here but got %s", p.c.current.Lexeme)
	}
	constructor := p.c.current.Lexeme
	p.c.advance()

	var fields []*ast.Type
	for p.startsTypeRef() {
		t, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		fields = append(fields, t)
	}

	return &ast.DatatypeOption{Constructor: constructor, Fields: fields}, nil
}

// startsTypeRef reports whether the current token could begin a Type
// production, used to greedily collect a datatype option's field list
// without a separator.
func (p *Parser) startsTypeRef() bool {
	cur := p.c.current
	if cur.Kind == token.Symbol && (cur.Lexeme == "[" || cur.Lexeme == "(") {
		return true
	}
	if cur.Kind == token.Keyword {
		return token.IsPrimitiveType(cur.Lexeme)
	}
	if cur.Kind == token.Identifier {
		return startsUpper(cur.Lexeme) && p.definedTypes[cur.Lexeme]
	}
	return false
}
