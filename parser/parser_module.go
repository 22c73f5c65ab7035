/*
File    : noctis/parser/parser_module.go
*/
package parser

import (
	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/token"
)

// anonymousModuleName is used when a source has no `module ... where`
// header. The reference implementation minted a random name per parse
// (__ocls_NNNNNNNNN); spec §9 flags that as nondeterministic and asks for
// either a content-addressed name or an explicit, non-importable marker.
// We take the latter: an empty name paired with Importable = false, since
// Parser.Parse has no access to the raw source text to hash when built via
// ParseTokens.
const anonymousModuleName = ""

// Parse consumes the whole token stream and produces a Module: optional
// imports, an optional `module Name where` header, then a sequence of
// type, datatype, and function declarations (spec §3.1, §3.2).
func (p *Parser) Parse() (*ast.Module, error) {
	m := &ast.Module{Name: anonymousModuleName, Importable: false}

	if p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "import" {
		deps, err := p.parseImports()
		if err != nil {
			return nil, err
		}
		m.Depends = deps
	}

	if p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "module" {
		p.c.advance()
		if p.c.current.Kind != token.Identifier {
			return nil, p.errorf("Expected module name here but got %s", p.c.current.Lexeme)
		}
		m.Name = p.c.current.Lexeme
		m.Importable = true
		p.c.advance()
		if !(p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "where") {
			return nil, p.errorf("Expected 'where' keyword here but got %s", p.c.current.Lexeme)
		}
		p.c.advance()
	}

	for p.c.current.Kind == token.Identifier || p.c.current.Kind == token.Keyword {
		if p.c.current.Kind == token.Keyword {
			switch p.c.current.Lexeme {
			case "type":
				td, err := p.parseTypeDecl()
				if err != nil {
					return nil, err
				}
				m.Types = append(m.Types, td)
				continue
			case "datatype":
				dd, err := p.parseDatatypeDecl()
				if err != nil {
					return nil, err
				}
				m.Datatypes = append(m.Datatypes, dd)
				continue
			case "private":
				// falls through to function parsing below
			default:
				return nil, p.errorf("Unexpected keyword at module top level: %s", p.c.current.Lexeme)
			}
		}

		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		if p.definedFunctions[fn.Name] {
			return nil, p.errorf("Function %s is already defined in this module", fn.Name)
		}
		p.definedFunctions[fn.Name] = true
		m.Functions = append(m.Functions, fn)
	}

	if !p.c.atEOF {
		return nil, p.errorf("Unexpected token at module top level: %s", p.c.current.Lexeme)
	}

	return m, nil
}

// parseImports consumes zero or more `import M`, `import M only a, b`, or
// `import M except a, b` statements and returns their fingerprints (spec
// §3.2: "M.*", "M.name", "M!name").
func (p *Parser) parseImports() ([]string, error) {
	var deps []string

	for p.c.current.Kind == token.Keyword && p.c.current.Lexeme == "import" {
		p.c.advance()
		if p.c.current.Kind != token.Identifier {
			return nil, p.errorf("Expected module name in import statement but got %s", p.c.current.Lexeme)
		}
		name := p.c.current.Lexeme
		p.c.advance()

		if p.c.current.Kind == token.Keyword && (p.c.current.Lexeme == "only" || p.c.current.Lexeme == "except") {
			mode := p.c.current.Lexeme
			p.c.advance()

			names, err := p.parseIdentifierList()
			if err != nil {
				return nil, err
			}

			sep := "."
			if mode == "except" {
				sep = "!"
			}
			for _, n := range names {
				deps = append(deps, name+sep+n)
			}
			continue
		}

		deps = append(deps, name+".*")
	}

	return deps, nil
}

// parseIdentifierList parses a comma-separated list of at least one
// identifier, used by the selective-import clauses.
func (p *Parser) parseIdentifierList() ([]string, error) {
	if p.c.current.Kind != token.Identifier {
		return nil, p.errorf("Expected identifier here but got %s", p.c.current.Lexeme)
	}
	names := []string{p.c.current.Lexeme}
	p.c.advance()

	for p.c.current.Kind == token.Symbol && p.c.current.Lexeme == "," {
		p.c.advance()
		if p.c.current.Kind != token.Identifier {
			return nil, p.errorf("Expected identifier after comma but got %s", p.c.current.Lexeme)
		}
		names = append(names, p.c.current.Lexeme)
		p.c.advance()
	}

	return names, nil
}
