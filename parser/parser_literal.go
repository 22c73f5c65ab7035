/*
File    : noctis/parser/parser_literal.go
*/
package parser

import (
	"strconv"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/token"
)

// canStartBasicExpr reports whether tok can begin a BasicExpr, used both
// to greedily collect call arguments and to stop a ListLiteral element.
func canStartBasicExpr(tok token.Token) bool {
	switch tok.Kind {
	case token.IntConstant, token.FloatConstant, token.StringConstant:
		return true
	case token.Identifier:
		// "and", "or", "not" are not in the reserved-word table (spec
		// §6.1) so they lex as plain identifiers, but they function as
		// BoolExpr operators. Excluding them from the argument-starter
		// set keeps `a and b` reaching parseBoolExpr's operator check
		// instead of being swallowed as an argument to `a`.
		switch tok.Lexeme {
		case "and", "or", "not":
			return false
		}
		return true
	case token.Keyword:
		switch tok.Lexeme {
		case "true", "false", "Nothing", "Anything":
			return true
		}
		return false
	case token.Symbol:
		return tok.Lexeme == "(" || tok.Lexeme == "["
	}
	return false
}

// parseBasicExpr is the leaf level of the expression grammar: constants,
// identifiers (function calls, datatype options, and free variables),
// parenthesized sub-expressions, and list literals (spec §3.2).
func (p *Parser) parseBasicExpr() (*ast.Expr, error) {
	cur := p.c.current

	switch cur.Kind {
	case token.IntConstant:
		v, err := strconv.ParseInt(cur.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf("Invalid integer constant: %s", cur.Lexeme)
		}
		p.c.advance()
		return ast.IntLit(v), nil

	case token.FloatConstant:
		v, err := strconv.ParseFloat(cur.Lexeme, 64)
		if err != nil {
			return nil, p.errorf("Invalid float constant: %s", cur.Lexeme)
		}
		p.c.advance()
		return ast.FloatLit(v), nil

	case token.StringConstant:
		p.c.advance()
		return ast.StringLit(cur.Lexeme), nil

	case token.Identifier:
		return p.parseIdentifierExpr(false)

	case token.Keyword:
		return p.parseKeywordConstant()

	case token.Symbol:
		switch cur.Lexeme {
		case "(":
			p.c.advance()
			inner, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == ")") {
				return nil, p.syntaxErrorf("Expected closing ')' but got %s", p.c.current.Lexeme)
			}
			p.c.advance()
			return inner, nil
		case "[":
			return p.parseListLiteral()
		default:
			return nil, p.syntaxErrorf("Unexpected symbol in expression: %s", cur.Lexeme)
		}

	default:
		return nil, p.errorf("Unexpected end of input in expression")
	}
}

// parseIdentifierExpr parses a bare identifier, greedily collecting
// juxtaposed arguments (the functional-call-by-application style implied
// by spec §3.2's FunctionReturn node), classifying the name against
// definedConstructors/definedFunctions, and consuming a trailing inline
// `where` helper binding if present (spec §5 supplemented feature). A name
// used as an argument is taken bare, so `f x y` applies f to x and y. With
// bare set, only the name itself is consumed.
func (p *Parser) parseIdentifierExpr(bare bool) (*ast.Expr, error) {
	name := p.c.current.Lexeme
	p.c.advance()

	var args []*ast.Expr
	for !bare && canStartBasicExpr(p.c.current) {
		var arg *ast.Expr
		var err error
		if p.c.current.Kind == token.Identifier {
			// A name that starts a new line (or has no position) and is
			// followed by "takes", or by parameter names and a lone "=",
			// heads the next clause or definition and ends the list.
			i, toks := p.c.index, p.c.tokens
			for i < len(toks) && (toks[i].Kind == token.Identifier || (toks[i].Kind == token.Keyword && token.IsPrimitiveType(toks[i].Lexeme))) {
				i++
			}
			newLine := p.c.current.Line == 0 || p.c.current.Line > p.c.previous.Line
			if newLine && i < len(toks) && ((i == p.c.index && toks[i].Kind == token.Keyword && toks[i].Lexeme == "takes") ||
				(toks[i].Kind == token.Symbol && toks[i].Lexeme == "=" && (i+1 == len(toks) || toks[i+1].Lexeme != "="))) {
				break
			}
			arg, err = p.parseIdentifierExpr(true)
		} else {
			arg, err = p.parseBasicExpr()
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	ref := ast.RefVariable
	switch {
	case p.definedConstructors[name]:
		ref = ast.RefDatatypeOption
	case p.definedFunctions[name]:
		ref = ast.RefFunctionCall
	}

	call := ast.Call(name, args, ref)

	if !bare && p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "where" {
		p.c.advance()
		helper, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		call.Where = helper
	}

	return call, nil
}

// parseKeywordConstant parses the four keyword literals: true, false,
// Nothing, and Anything.
func (p *Parser) parseKeywordConstant() (*ast.Expr, error) {
	cur := p.c.current
	switch cur.Lexeme {
	case "true":
		p.c.advance()
		return ast.BoolLit(true), nil
	case "false":
		p.c.advance()
		return ast.BoolLit(false), nil
	case "Nothing":
		p.c.advance()
		return ast.Nothing(), nil
	case "Anything":
		p.c.advance()
		return ast.AnythingLit(), nil
	default:
		return nil, p.errorf("Unexpected keyword in expression: %s", cur.Lexeme)
	}
}

// parseListLiteral parses `[e1, e2, ...]`, desugaring it into a
// right-nested chain of ListPair cons cells terminated by Nothing (spec
// §3.3 invariant).
func (p *Parser) parseListLiteral() (*ast.Expr, error) {
	p.c.advance() // consume "["

	var elems []*ast.Expr
	if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "]") {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)

		for p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "," {
			p.c.advance()
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
	}

	if !(p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "]") {
		return nil, p.syntaxErrorf("Expected closing ']' but got %s", p.c.current.Lexeme)
	}
	p.c.advance()

	list := ast.Nothing()
	for i := len(elems) - 1; i >= 0; i-- {
		list = ast.Pair(elems[i], list)
	}
	return list, nil
}
