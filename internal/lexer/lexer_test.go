package lexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwren0/jerry/internal/errors"
	"github.com/jwren0/jerry/internal/models"
	"github.com/jwren0/jerry/internal/stream"
)

func TestTokenize_Punctuation(t *testing.T) {
	tokens, err := TokenizeString("{}[]:,")
	require.NoError(t, err)

	expected := []models.Token{
		models.PunctToken('{'),
		models.PunctToken('}'),
		models.PunctToken('['),
		models.PunctToken(']'),
		models.PunctToken(':'),
		models.PunctToken(','),
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_StringKeepsQuotes(t *testing.T) {
	tokens, err := TokenizeString(`"hello"`)
	require.NoError(t, err)

	require.Len(t, tokens, 1)
	assert.Equal(t, models.StringToken(`"hello"`), tokens[0])
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.Token
	}{
		{
			name:     "integer",
			input:    "42",
			expected: models.IntToken(42),
		},
		{
			name:     "float",
			input:    "2.5",
			expected: models.FloatToken(2.5),
		},
		{
			name:     "zero",
			input:    "0",
			expected: models.IntToken(0),
		},
		{
			name:     "trailing dot parses as float",
			input:    "3.",
			expected: models.FloatToken(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeString(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.expected, tokens[0])
		})
	}
}

func TestTokenize_SkipsWhitespace(t *testing.T) {
	tokens, err := TokenizeString(" \t\n[ 1 ,\t2 ]\n")
	require.NoError(t, err)

	expected := []models.Token{
		models.PunctToken('['),
		models.IntToken(1),
		models.PunctToken(','),
		models.IntToken(2),
		models.PunctToken(']'),
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_Document(t *testing.T) {
	tokens, err := TokenizeString(`{"a": 1, "b": [2.5]}`)
	require.NoError(t, err)

	expected := []models.Token{
		models.PunctToken('{'),
		models.StringToken(`"a"`),
		models.PunctToken(':'),
		models.IntToken(1),
		models.PunctToken(','),
		models.StringToken(`"b"`),
		models.PunctToken(':'),
		models.PunctToken('['),
		models.FloatToken(2.5),
		models.PunctToken(']'),
		models.PunctToken('}'),
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, err := TokenizeString("")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = TokenizeString("  \n\t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tokens, err := TokenizeString(`"abc`)
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeOutOfBounds})
	assert.Nil(t, tokens, "no partial token sequence on failure")
}

func TestTokenize_BackslashDoesNotEscapeQuote(t *testing.T) {
	// The grammar has no escape sequences: the backslash is an ordinary
	// character and the first " still terminates the literal.
	tokens, err := TokenizeString(`"a\"`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, models.StringToken(`"a\"`), tokens[0])

	// With content after the early terminator, tokenizing continues and
	// trips over whatever follows.
	_, err = TokenizeString(`"a\"b"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeUnexpectedChar})
}

func TestTokenize_SecondDecimalPoint(t *testing.T) {
	tokens, err := TokenizeString("1.2.3")
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeInvalidNumber})
	// Position of the second dot
	assert.Contains(t, err.Error(), "index 3")
	assert.Nil(t, tokens)
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
	}{
		{
			name:  "unquoted object key",
			input: "{a:1}",
			index: 1,
		},
		{
			name:  "negative sign",
			input: "-1",
			index: 0,
		},
		{
			name:  "bare word",
			input: "[true]",
			index: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeString(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeUnexpectedChar})
			assert.Contains(t, err.Error(), fmt.Sprintf("index %d", tt.index))
			assert.Nil(t, tokens)
		})
	}
}

func TestTokenize_ReaderOwnsPosition(t *testing.T) {
	reader := stream.New([]rune("[1]"))
	_, err := Tokenize(reader)
	require.NoError(t, err)
	assert.True(t, reader.Exhausted(), "tokenizer should consume the whole reader")
	assert.Equal(t, reader.Len(), reader.Pos())
}
