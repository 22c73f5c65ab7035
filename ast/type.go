/*
File    : noctis/ast/type.go
*/

// Package ast defines the Noctis abstract syntax tree. Per the redesign
// direction in spec §9, nodes are tagged variants (a Kind enum plus the
// fields relevant to that variant) rather than a class hierarchy with
// virtual dispatch: callers switch on Kind, the same way callers of
// go/ast switch on the concrete type behind an Expr/Stmt interface.
package ast

// TypeKind discriminates the variants of Type (spec §3.2).
type TypeKind int

const (
	KindNothing TypeKind = iota
	KindAnything
	KindCharacter
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindCallable
	KindNamed    // a user type name: either a custom TypeDecl or a DatatypeDecl
	KindList     // List(Elem)
	KindOptional // Optional(Elem)
	KindErrorMsg // Error(Message)
	KindGrouped  // a parenthesized/bracketed compound type reference, kept verbatim
)

// Type is the tagged-variant node for every type reference in the tree:
// primitive leaves, Optional/List wrappers, Error messages, user type
// names, and grouped compound references (spec §3.2, §4.2 "Parenthesized
// signature items").
type Type struct {
	Kind TypeKind

	// Name holds the type name for KindNamed.
	Name string

	// Message holds the error text for KindErrorMsg.
	Message string

	// Raw holds the accumulated verbatim lexeme for KindGrouped, e.g.
	// "( List Integer )".
	Raw string

	// Elem holds the element type for KindList and the inner type for
	// KindOptional. Nil for every other kind.
	Elem *Type
}

// Named builds a primitive or user-named type node.
func Named(name string) *Type {
	switch name {
	case "Nothing":
		return &Type{Kind: KindNothing}
	case "Anything":
		return &Type{Kind: KindAnything}
	case "Character":
		return &Type{Kind: KindCharacter}
	case "String":
		return &Type{Kind: KindString}
	case "Integer":
		return &Type{Kind: KindInteger}
	case "Float":
		return &Type{Kind: KindFloat}
	case "Boolean":
		return &Type{Kind: KindBoolean}
	case "Callable":
		return &Type{Kind: KindCallable}
	default:
		return &Type{Kind: KindNamed, Name: name}
	}
}

// List builds a List(elem) type reference node.
func List(elem *Type) *Type {
	return &Type{Kind: KindList, Elem: elem}
}

// Optional wraps a type as Optional(inner), the only nullable wrapper in
// the type system (spec §3.3 invariant).
func Optional(inner *Type) *Type {
	return &Type{Kind: KindOptional, Elem: inner}
}

// ErrorOf builds an Error(message) type node.
func ErrorOf(message string) *Type {
	return &Type{Kind: KindErrorMsg, Message: message}
}

// Grouped builds a type node for a parenthesized/bracketed compound type
// reference, keeping the accumulated source text verbatim since the
// grammar treats it as an opaque type-reference lexeme (spec §4.2).
func Grouped(raw string) *Type {
	return &Type{Kind: KindGrouped, Raw: raw}
}

// String renders the canonical Noctis spelling of a type, used by the
// pretty-printer and by error messages.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindNothing:
		return "Nothing"
	case KindAnything:
		return "Anything"
	case KindCharacter:
		return "Character"
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindCallable:
		return "Callable"
	case KindNamed:
		return t.Name
	case KindList:
		return "[" + t.Elem.String() + "]"
	case KindOptional:
		return t.Elem.String() + "?"
	case KindErrorMsg:
		return "Error(" + t.Message + ")"
	case KindGrouped:
		return t.Raw
	default:
		return "<unknown type>"
	}
}
