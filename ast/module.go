/*
File    : noctis/ast/module.go
*/
package ast

// Module is the root of every parse: a name, whether it can be imported by
// other modules, its import fingerprints, and its declarations in source
// order (spec §3.2, §6.2).
type Module struct {
	Name       string
	Importable bool
	Depends    []string // import fingerprints: "M.*", "M.name", "M!name"
	Types      []*TypeDecl
	Datatypes  []*DatatypeDecl
	Functions  []*Function
}

// TypeDecl is a `type Name = Primitive` alias declaration.
type TypeDecl struct {
	Name    string
	Shadows string
}

// DatatypeOption is one alternative of a `datatype` sum type: a
// constructor name and its ordered positional field types.
type DatatypeOption struct {
	Constructor string
	Fields      []*Type
}

// DatatypeDecl is a `datatype Name = Option (or Option)*` declaration.
type DatatypeDecl struct {
	Name    string
	Options []*DatatypeOption
}

// Signature is a function's optional `f takes T1 and T2 returns R` type
// annotation.
type Signature struct {
	Name       string
	Params     []*Type
	ReturnType *Type
}

// Clause is one `params = body` line of a function. A function with
// several clauses is defined by all of them in source order, implementing
// pattern-match overloading (spec glossary).
type Clause struct {
	// Params holds the clause's pattern parameters. Most are plain
	// identifiers; a datatype-constructor pattern like `Circle r` is
	// represented by the constructor name followed by its bound fields,
	// verbatim as written.
	Params []string
	Body   *Expr
}

// Function is a named, possibly-overloaded, possibly-documented function
// definition (spec §3.2).
type Function struct {
	Name      string
	Signature *Signature // nil when absent
	Docstring string     // "" when absent
	Private   bool
	Clauses   []*Clause
}
