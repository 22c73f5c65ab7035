package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctis-lang/noctis/token"
)

type tokenizeCase struct {
	name     string
	input    string
	expected []token.Token
}

func stripPositions(tokens []token.Token) []token.Token {
	out := make([]token.Token, len(tokens))
	for i, t := range tokens {
		out[i] = token.New(t.Kind, t.Lexeme)
	}
	return out
}

func TestTokenize_Scenarios(t *testing.T) {
	cases := []tokenizeCase{
		{
			name:  "identifiers and symbols",
			input: `example t = t > 6 ? t + 5 : t`,
			expected: []token.Token{
				token.New(token.Identifier, "example"),
				token.New(token.Identifier, "t"),
				token.New(token.Symbol, "="),
				token.New(token.Identifier, "t"),
				token.New(token.Symbol, ">"),
				token.New(token.IntConstant, "6"),
				token.New(token.Symbol, "?"),
				token.New(token.Identifier, "t"),
				token.New(token.Symbol, "+"),
				token.New(token.IntConstant, "5"),
				token.New(token.Symbol, ":"),
				token.New(token.Identifier, "t"),
			},
		},
		{
			name:  "keywords are reclassified",
			input: `module Test where`,
			expected: []token.Token{
				token.New(token.Keyword, "module"),
				token.New(token.Identifier, "Test"),
				token.New(token.Keyword, "where"),
			},
		},
		{
			name:  "string constant excludes quotes",
			input: `"hello world"`,
			expected: []token.Token{
				token.New(token.StringConstant, "hello world"),
			},
		},
		{
			name:  "docstring constant excludes backticks",
			input: "`Squares a number.`",
			expected: []token.Token{
				token.New(token.DocstringConstant, "Squares a number."),
			},
		},
		{
			name:  "line comment is discarded",
			input: "square n = n * n # multiplies n by itself\nother",
			expected: []token.Token{
				token.New(token.Identifier, "square"),
				token.New(token.Identifier, "n"),
				token.New(token.Symbol, "="),
				token.New(token.Identifier, "n"),
				token.New(token.Symbol, "*"),
				token.New(token.Identifier, "n"),
				token.New(token.Identifier, "other"),
			},
		},
		{
			name:  "float with trailing dot",
			input: `3.`,
			expected: []token.Token{
				token.New(token.FloatConstant, "3."),
			},
		},
		{
			// '.' is not itself a symbol-char, so a leading dot is simply
			// discarded as an uninterpretable character rather than
			// starting a float token.
			name:  "leading dot is discarded, not a float",
			input: `.5`,
			expected: []token.Token{
				token.New(token.IntConstant, "5"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.input)
			require.Nil(t, err)
			assert.Equal(t, tc.expected, stripPositions(tokens))
		})
	}
}

func TestTokenize_DigitsNotAcceptedInIdentifierTail(t *testing.T) {
	tokens, err := Tokenize(`a1`)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{
		token.New(token.Identifier, "a"),
		token.New(token.IntConstant, "1"),
	}, stripPositions(tokens))
}

func TestTokenize_UnterminatedStringFails(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestTokenize_UnterminatedDocstringFails(t *testing.T) {
	_, err := Tokenize("`unterminated")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unterminated docstring")
}

func TestTokenize_NoCommentTokensEverLeak(t *testing.T) {
	tokens, err := Tokenize("# just a comment\nexample")
	require.Nil(t, err)
	for _, tok := range tokens {
		assert.NotEqual(t, token.CommentConstant, tok.Kind)
	}
	assert.Equal(t, []token.Token{token.New(token.Identifier, "example")}, stripPositions(tokens))
}

func TestTokenize_IsDeterministic(t *testing.T) {
	src := `import Hyperion except foo` + "\n" + `module M where` + "\n" + `f n = n * n`
	a, errA := Tokenize(src)
	b, errB := Tokenize(src)
	require.Nil(t, errA)
	require.Nil(t, errB)
	assert.Equal(t, a, b)
}

func TestTokenize_NoEscapeProcessing(t *testing.T) {
	tokens, err := Tokenize(`"a\b"`)
	require.Nil(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, `a\b`, tokens[0].Lexeme)
}
