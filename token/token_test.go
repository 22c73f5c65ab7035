package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKeyword_RecognizesReservedWords(t *testing.T) {
	assert.True(t, IsKeyword("module"))
	assert.True(t, IsKeyword("takes"))
	assert.True(t, IsKeyword("Integer"))
	assert.True(t, IsKeyword("private"))
	assert.False(t, IsKeyword("square"))
	assert.False(t, IsKeyword(""))
}

func TestIsPrimitiveType_AcceptsOnlyBuiltins(t *testing.T) {
	for _, name := range []string{"Character", "String", "Integer", "Boolean", "Float", "Callable", "Anything", "Nothing", "Error"} {
		assert.True(t, IsPrimitiveType(name), "expected %s to be a primitive type", name)
	}
	assert.False(t, IsPrimitiveType("Shape"))
}

func TestNewAt_CarriesPosition(t *testing.T) {
	tok := NewAt(Identifier, "square", 3, 5)
	assert.Equal(t, Identifier, tok.Kind)
	assert.Equal(t, "square", tok.Lexeme)
	assert.Equal(t, 3, tok.Line)
	assert.Equal(t, 5, tok.Column)
}
