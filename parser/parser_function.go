/*
File    : noctis/parser/parser_function.go
*/
package parser

import (
	"strings"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/token"
)

// parseTypeRef parses one Type production: a primitive or named type
// optionally suffixed with "?" for Optional, or a bracketed/parenthesized
// group (spec §3.2, §6.1).
func (p *Parser) parseTypeRef() (*ast.Type, error) {
	cur := p.c.current

	if cur.Kind == token.Symbol && (cur.Lexeme == "[" || cur.Lexeme == "(") {
		return p.parseGroupedType()
	}

	if cur.Kind == token.Keyword {
		if !token.IsPrimitiveType(cur.Lexeme) {
			return nil, p.errorf("Expected a type name here but got keyword %s", cur.Lexeme)
		}
	} else if cur.Kind != token.Identifier {
		return nil, p.errorf("Expected a type name here but got %s", cur.Lexeme)
	}

	name := cur.Lexeme
	p.c.advance()
	t := ast.Named(name)

	if p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "?" {
		t = ast.Optional(t)
		p.c.advance()
	}

	return t, nil
}

// parseGroupedType parses a parenthesized or bracketed type reference. A
// single-name "[ TypeName ]" is the literal list-type production and
// becomes a proper List type; anything more elaborate is accumulated
// verbatim into a GroupedType, matching the reference grammar's note that
// "(" and "[" open a type reference that is scanned up to its matching
// close (spec §3.2).
func (p *Parser) parseGroupedType() (*ast.Type, error) {
	open := p.c.current.Lexeme
	closing := "]"
	if open == "(" {
		closing = ")"
	}
	p.c.advance()

	var parts []string
	for !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == closing) {
		if p.c.atEOF {
			return nil, p.errorf("Expected closing %q in type reference", closing)
		}
		parts = append(parts, p.c.current.Lexeme)
		p.c.advance()
	}
	p.c.advance() // consume closing

	if open == "[" && len(parts) == 1 {
		return ast.List(ast.Named(parts[0])), nil
	}

	raw := open + " " + strings.Join(parts, " ") + " " + closing
	return ast.Grouped(raw), nil
}

// parseTypeList parses a "and"-separated list of at least one Type,
// used by Signature's parameter list.
func (p *Parser) parseTypeList() ([]*ast.Type, error) {
	var types []*ast.Type

	t, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	types = append(types, t)

	// "and" is not in the reserved-word table (spec §6.1); it is matched
	// as a plain Identifier lexeme.
	for p.c.current.Kind == token.Identifier && p.c.current.Lexeme == "and" {
		p.c.advance()
		t, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, nil
}

// parseSignature parses `Identifier "takes" TypeList "returns" Type`
// (spec §3.2, §6.3).
func (p *Parser) parseSignature() (*ast.Signature, error) {
	if p.c.current.Kind != token.Identifier {
		return nil, p.errorf("Expected function name in signature but got %s", p.c.current.Lexeme)
	}
	name := p.c.current.Lexeme
	p.c.advance()

	if !(p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "takes") {
		return nil, p.errorf("Expected 'takes' keyword here but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	params, err := p.parseTypeList()
	if err != nil {
		return nil, err
	}

	if !(p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "returns") {
		return nil, p.errorf("Expected 'returns' keyword here but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	ret, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}

	return &ast.Signature{Name: name, Params: params, ReturnType: ret}, nil
}

// parseFunction parses one FunctionDef: an optional `private` marker, an
// optional Signature, an optional docstring, and one or more clauses
// sharing the same name (spec §3.2). It does not register the function
// name anywhere; the caller (module top level, or a `where` clause) owns
// that bookkeeping.
func (p *Parser) parseFunction() (*ast.Function, error) {
	private := false
	if p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "private" {
		private = true
		p.c.advance()
	}

	if p.c.current.Kind != token.Identifier {
		return nil, p.errorf("Expected function name here but got %s", p.c.current.Lexeme)
	}
	name := p.c.current.Lexeme

	var sig *ast.Signature
	if p.c.lookahead().Kind == token.Keyword && p.c.lookahead().Lexeme == "takes" {
		s, err := p.parseSignature()
		if err != nil {
			return nil, err
		}
		sig = s
		name = s.Name
	}

	docstring := ""
	if p.c.current.Kind == token.DocstringConstant {
		docstring = p.c.current.Lexeme
		p.c.advance()
	}

	var clauses []*ast.Clause
	for p.c.current.Kind == token.Identifier && p.c.current.Lexeme == name {
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) == 0 {
		return nil, p.errorf("Function %s has no clauses", name)
	}

	return &ast.Function{Name: name, Signature: sig, Docstring: docstring, Private: private, Clauses: clauses}, nil
}

// parseClause parses one `name Param* "=" Expression` line.
func (p *Parser) parseClause() (*ast.Clause, error) {
	p.c.advance() // consume the repeated function-name identifier

	var params []string
	for {
		cur := p.c.current
		switch {
		case cur.Kind == token.Symbol && cur.Lexeme == "(":
			raw, err := p.parseParenPattern()
			if err != nil {
				return nil, err
			}
			params = append(params, raw)
			continue
		case cur.Kind == token.Keyword && token.IsPrimitiveType(cur.Lexeme):
			params = append(params, cur.Lexeme)
			p.c.advance()
			continue
		case cur.Kind == token.Identifier:
			params = append(params, cur.Lexeme)
			p.c.advance()
			continue
		}
		break
	}

	if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "=") {
		return nil, p.errorf("Expected '=' in function clause but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Clause{Params: params, Body: body}, nil
}

// parseParenPattern accumulates a parenthesized destructuring pattern,
// such as a constructor pattern `(Circle r)`, verbatim between matching
// parentheses.
func (p *Parser) parseParenPattern() (string, error) {
	p.c.advance() // consume "("

	var parts []string
	for !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == ")") {
		if p.c.atEOF {
			return "", p.errorf("Expected closing ')' in parameter pattern")
		}
		if p.c.current.Kind == token.StringConstant {
			parts = append(parts, `"`+p.c.current.Lexeme+`"`)
		} else {
			parts = append(parts, p.c.current.Lexeme)
		}
		p.c.advance()
	}
	p.c.advance() // consume ")"

	return "(" + strings.Join(parts, " ") + ")", nil
}
