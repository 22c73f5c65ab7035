/*
File    : noctis/ast/expr.go
*/
package ast

// ExprKind discriminates the variants of Expr (spec §3.2).
type ExprKind int

const (
	// ExprBinary covers every left-associative binary operator level:
	// bool (and/or), equality (==/!=), inequality (>=/<=/>/<), additive
	// (+/-), multiplicative (*/ %). Op carries the operator spelling.
	ExprBinary ExprKind = iota

	// ExprUnary covers the single prefix operator "not".
	ExprUnary

	// ExprConditional is the ternary `cond ? true : false`.
	ExprConditional

	// ExprCoalesce is the right-associative `lhs ?? rhs`.
	ExprCoalesce

	// ExprCall is a FunctionReturn node: a bare identifier with zero or
	// more arguments. Whether it denotes a free variable, a function
	// call, or a datatype-option construction is recorded by Reference.
	ExprCall

	// ExprListPair is a right-nested cons cell, terminated by a Nothing
	// literal (spec §3.3 invariant).
	ExprListPair

	ExprInt
	ExprFloat
	ExprString
	ExprBool
	ExprNothing
	ExprAnything
)

// Reference classifies what an ExprCall's Name resolves to, per the
// parser's definedConstructors/definedFunctions disambiguation (spec §4.2).
type Reference int

const (
	// RefVariable is the default: a free variable not matching any known
	// function or datatype constructor.
	RefVariable Reference = iota
	RefFunctionCall
	RefDatatypeOption
)

// Expr is the tagged-variant expression node. Only the fields relevant to
// Kind are populated; the rest are zero.
type Expr struct {
	Kind ExprKind

	// ExprBinary: Op is the operator spelling ("+", "and", "==", ...).
	// ExprUnary: Op is always "not".
	Op  string
	Lhs *Expr
	Rhs *Expr

	// ExprConditional
	Cond  *Expr
	True  *Expr
	False *Expr

	// ExprCall
	Name      string
	Args      []*Expr
	Reference Reference
	// Where holds an inline helper function bound alongside this call via
	// a `where` clause, if present (spec §3.2, §5 supplemented feature).
	Where *Function

	// ExprListPair
	Head *Expr
	Tail *Expr

	// Literal payloads
	IntValue    int64
	FloatValue  float64
	StringValue string
	BoolValue   bool
}

// Binary builds a left-associative binary expression node.
func Binary(op string, lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprBinary, Op: op, Lhs: lhs, Rhs: rhs}
}

// Unary builds a prefix expression node ("not" is the only one).
func Unary(op string, operand *Expr) *Expr {
	return &Expr{Kind: ExprUnary, Op: op, Lhs: operand}
}

// Conditional builds a ternary expression node.
func Conditional(cond, trueBranch, falseBranch *Expr) *Expr {
	return &Expr{Kind: ExprConditional, Cond: cond, True: trueBranch, False: falseBranch}
}

// Coalesce builds a `lhs ?? rhs` expression node.
func Coalesce(lhs, rhs *Expr) *Expr {
	return &Expr{Kind: ExprCoalesce, Lhs: lhs, Rhs: rhs}
}

// Call builds a FunctionReturn node for a bare identifier with arguments.
func Call(name string, args []*Expr, ref Reference) *Expr {
	return &Expr{Kind: ExprCall, Name: name, Args: args, Reference: ref}
}

// Pair builds one cons cell of a list literal.
func Pair(head, tail *Expr) *Expr {
	return &Expr{Kind: ExprListPair, Head: head, Tail: tail}
}

// Nothing builds the terminator of every ListPair chain, and doubles as
// the `Nothing` keyword-constant literal.
func Nothing() *Expr {
	return &Expr{Kind: ExprNothing}
}

// AnythingLit builds the `Anything` keyword-constant literal.
func AnythingLit() *Expr {
	return &Expr{Kind: ExprAnything}
}

func IntLit(v int64) *Expr       { return &Expr{Kind: ExprInt, IntValue: v} }
func FloatLit(v float64) *Expr   { return &Expr{Kind: ExprFloat, FloatValue: v} }
func StringLit(v string) *Expr   { return &Expr{Kind: ExprString, StringValue: v} }
func BoolLit(v bool) *Expr       { return &Expr{Kind: ExprBool, BoolValue: v} }
