/*
File    : noctis/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctis-lang/noctis/ast"
)

// S1: ternary body, implicit single parameter, no signature.
func TestParse_S1_TernaryFunctionBody(t *testing.T) {
	m, err := Parse("example t = t > 6 ? t + 5 : t")
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)

	fn := m.Functions[0]
	assert.Equal(t, "example", fn.Name)
	assert.Nil(t, fn.Signature)
	require.Len(t, fn.Clauses, 1)
	assert.Equal(t, []string{"t"}, fn.Clauses[0].Params)

	body := fn.Clauses[0].Body
	require.Equal(t, ast.ExprConditional, body.Kind)
	assert.Equal(t, ast.ExprBinary, body.Cond.Kind)
	assert.Equal(t, ">", body.Cond.Op)
	assert.Equal(t, ast.ExprBinary, body.True.Kind)
	assert.Equal(t, "+", body.True.Op)
	assert.Equal(t, "t", body.False.Name)
}

// S2: explicit module header makes the module importable.
func TestParse_S2_ModuleHeader(t *testing.T) {
	m, err := Parse("module Test where\nexample t = (t > 5) ? t : 8")
	require.NoError(t, err)

	assert.Equal(t, "Test", m.Name)
	assert.True(t, m.Importable)
	require.Len(t, m.Functions, 1)
	assert.Equal(t, ast.ExprConditional, m.Functions[0].Clauses[0].Body.Kind)
}

// S3: signature with Nothing param and a list return type; list-literal body.
func TestParse_S3_SignatureAndListLiteralBody(t *testing.T) {
	m, err := Parse("example takes Nothing returns [Integer]\nexample = [1, 2, 3]")
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)

	fn := m.Functions[0]
	require.NotNil(t, fn.Signature)
	require.Len(t, fn.Signature.Params, 1)
	assert.Equal(t, ast.KindNothing, fn.Signature.Params[0].Kind)
	assert.Equal(t, ast.KindList, fn.Signature.ReturnType.Kind)
	assert.Equal(t, "Integer", fn.Signature.ReturnType.Elem.String())

	require.Len(t, fn.Clauses, 1)
	assert.Empty(t, fn.Clauses[0].Params)

	body := fn.Clauses[0].Body
	require.Equal(t, ast.ExprListPair, body.Kind)
	assert.Equal(t, int64(1), body.Head.IntValue)
	assert.Equal(t, int64(2), body.Tail.Head.IntValue)
	assert.Equal(t, int64(3), body.Tail.Tail.Head.IntValue)
	assert.Equal(t, ast.ExprNothing, body.Tail.Tail.Tail.Kind)
}

// S4: selective and bare import fingerprints.
func TestParse_S4_ImportFingerprints(t *testing.T) {
	m, err := Parse("import Hyperion except a\nimport Ocellus only map\nmodule M where")
	require.NoError(t, err)

	assert.Equal(t, "M", m.Name)
	assert.Equal(t, []string{"Hyperion!a", "Ocellus.map"}, m.Depends)
}

// S5: no signature, multiplication body.
func TestParse_S5_NoSignatureMultiplyBody(t *testing.T) {
	m, err := Parse("square n = n * n")
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)

	fn := m.Functions[0]
	assert.Nil(t, fn.Signature)
	assert.Equal(t, []string{"n"}, fn.Clauses[0].Params)
	assert.Equal(t, "*", fn.Clauses[0].Body.Op)
}

// S6: a two-option datatype with differing field counts.
func TestParse_S6_DatatypeWithTwoOptions(t *testing.T) {
	m, err := Parse("datatype Shape = Circle Float or Rectangle Float Float")
	require.NoError(t, err)
	require.Len(t, m.Datatypes, 1)

	dt := m.Datatypes[0]
	assert.Equal(t, "Shape", dt.Name)
	require.Len(t, dt.Options, 2)
	assert.Equal(t, "Circle", dt.Options[0].Constructor)
	assert.Len(t, dt.Options[0].Fields, 1)
	assert.Equal(t, "Rectangle", dt.Options[1].Constructor)
	assert.Len(t, dt.Options[1].Fields, 2)
}

func TestParse_AnonymousModuleIsNotImportable(t *testing.T) {
	m, err := Parse("square n = n * n")
	require.NoError(t, err)
	assert.False(t, m.Importable)
	assert.Equal(t, "", m.Name)
}

func TestParse_DeclarationOrderIsPreserved(t *testing.T) {
	src := "type Kelvin = Float\n" +
		"datatype Shape = Circle Float\n" +
		"area s = s\n"
	m, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Types, 1)
	require.Len(t, m.Datatypes, 1)
	require.Len(t, m.Functions, 1)
}

func TestParse_DuplicateFunctionNameFails(t *testing.T) {
	// Contiguous same-name lines are additional clauses of one function
	// (pattern-match overloading); an intervening declaration forces two
	// distinct FunctionDef blocks, which collide.
	_, err := Parse("f x = x\ntype T = Integer\nf x = x\n")
	require.Error(t, err)
}

func TestParse_DatatypeConstructorDisambiguatesFromCall(t *testing.T) {
	src := "datatype Shape = Circle Float\n" +
		"radiusOf s = s\n" +
		"unit = Circle 1\n"
	m, err := Parse(src)
	require.NoError(t, err)

	var unit *ast.Function
	for _, fn := range m.Functions {
		if fn.Name == "unit" {
			unit = fn
		}
	}
	require.NotNil(t, unit)
	body := unit.Clauses[0].Body
	assert.Equal(t, ast.RefDatatypeOption, body.Reference)
	assert.Equal(t, "Circle", body.Name)
	require.Len(t, body.Args, 1)
	assert.Equal(t, int64(1), body.Args[0].IntValue)
}

func TestParse_BoolAndOrAreIdentifierLexemes(t *testing.T) {
	m, err := Parse("f a b = a and b\n")
	require.NoError(t, err)
	body := m.Functions[0].Clauses[0].Body
	require.Equal(t, ast.ExprBinary, body.Kind)
	assert.Equal(t, "and", body.Op)
}

func TestParse_CoalesceIsRightAssociative(t *testing.T) {
	m, err := Parse("f a b c = a ?? b ?? c\n")
	require.NoError(t, err)
	body := m.Functions[0].Clauses[0].Body
	require.Equal(t, ast.ExprCoalesce, body.Kind)
	assert.Equal(t, "a", body.Lhs.Name)
	require.Equal(t, ast.ExprCoalesce, body.Rhs.Kind)
	assert.Equal(t, "b", body.Rhs.Lhs.Name)
	assert.Equal(t, "c", body.Rhs.Rhs.Name)
}

func TestParse_LowAndHighInequalityDisambiguate(t *testing.T) {
	m, err := Parse("f a b = a >= b\n")
	require.NoError(t, err)
	assert.Equal(t, ">=", m.Functions[0].Clauses[0].Body.Op)

	m2, err := Parse("f a b = a > b\n")
	require.NoError(t, err)
	assert.Equal(t, ">", m2.Functions[0].Clauses[0].Body.Op)
}

func TestParse_MultiClauseFunctionKeepsEachClause(t *testing.T) {
	src := "pick a b = a\n" +
		"pick x y = y\n"
	m, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)
	assert.Len(t, m.Functions[0].Clauses, 2)
}

func TestParse_PrivateFunctionIsMarked(t *testing.T) {
	m, err := Parse("private helper x = x\n")
	require.NoError(t, err)
	require.Len(t, m.Functions, 1)
	assert.True(t, m.Functions[0].Private)
}

func TestParse_InlineWhereBindsHelperFunction(t *testing.T) {
	src := "f x = helper x where helper y = y\n"
	m, err := Parse(src)
	require.NoError(t, err)
	body := m.Functions[0].Clauses[0].Body
	require.NotNil(t, body.Where)
	assert.Equal(t, "helper", body.Where.Name)
}

func TestParse_GroupedSignatureTypeIsKeptVerbatim(t *testing.T) {
	m, err := Parse("f takes (List Integer) returns Integer\nf x = x\n")
	require.NoError(t, err)
	require.NotNil(t, m.Functions[0].Signature)
	param := m.Functions[0].Signature.Params[0]
	assert.Equal(t, ast.KindGrouped, param.Kind)
	assert.Equal(t, "( List Integer )", param.Raw)
}

func TestParse_MissingAssignmentProducesError(t *testing.T) {
	_, err := Parse("f x x\n")
	require.Error(t, err)
}

func TestParse_UnterminatedTernaryProducesSyntaxError(t *testing.T) {
	_, err := Parse("f x = x > 1 ? x\n")
	require.Error(t, err)
	_, ok := err.(*SyntaxError)
	assert.True(t, ok, "expected a *SyntaxError, got %T", err)
}

func TestParse_IsDeterministic(t *testing.T) {
	src := "example takes Nothing returns [Integer]\nexample = [1, 2, 3]\n"
	m1, err1 := Parse(src)
	m2, err2 := Parse(src)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, m1, m2)
}
