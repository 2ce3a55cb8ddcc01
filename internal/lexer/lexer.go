// Package lexer turns raw text into an ordered sequence of tokens.
//
// The accepted grammar is a JSON subset: the structural characters
// { } [ ] : , double-quoted strings and unsigned numbers with at most one
// decimal point. There is no escape processing inside strings; a backslash
// before a quote does not protect it, so the literal ends at the first "
// encountered. Booleans, null, signs and exponents are not part of the
// grammar.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jwren0/jerry/internal/errors"
	"github.com/jwren0/jerry/internal/models"
	"github.com/jwren0/jerry/internal/stream"
)

const punctuation = "{}[]:,"

// Tokenize consumes the whole character reader and returns the token
// sequence. On any malformed input it returns an error and no tokens;
// there is never a partial result.
func Tokenize(reader *stream.Reader[rune]) ([]models.Token, error) {
	var tokens []models.Token

	for {
		skipWhitespace(reader)

		char, ok := reader.Peek()
		if !ok {
			break
		}

		var (
			token models.Token
			err   error
		)
		switch {
		case strings.ContainsRune(punctuation, char):
			if _, err := reader.Next(); err != nil {
				return nil, err
			}
			token = models.PunctToken(char)
		case char == '"':
			token, err = tokenizeString(reader)
		case unicode.IsDigit(char):
			token, err = tokenizeNumber(reader)
		default:
			return nil, errors.NewUnexpectedCharError(char, reader.Pos())
		}
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// TokenizeString tokenizes input held in a plain string.
func TokenizeString(input string) ([]models.Token, error) {
	return Tokenize(stream.New([]rune(input)))
}

// skipWhitespace advances the reader past any run of whitespace, stopping
// at the first non-whitespace character or the end of input.
func skipWhitespace(reader *stream.Reader[rune]) {
	for {
		char, ok := reader.Peek()
		if !ok || !unicode.IsSpace(char) {
			break
		}
		_, _ = reader.Next()
	}
}

// tokenizeString scans a string literal, keeping both quote characters in
// the token text. An unterminated literal fails with an out-of-bounds
// error when the reader runs dry before the closing quote.
func tokenizeString(reader *stream.Reader[rune]) (models.Token, error) {
	var literal strings.Builder
	literal.WriteRune('"')

	if err := stream.Consume(reader, '"'); err != nil {
		return models.Token{}, err
	}

	// Append until the closing quote has been appended too.
	for {
		char, err := reader.Next()
		if err != nil {
			return models.Token{}, err
		}
		literal.WriteRune(char)

		if char == '"' {
			break
		}
	}

	return models.StringToken(literal.String()), nil
}

// tokenizeNumber scans a run of digits with at most one decimal point and
// converts it. A second decimal point fails with an invalid-number error
// at the current position.
func tokenizeNumber(reader *stream.Reader[rune]) (models.Token, error) {
	var (
		literal strings.Builder
		isFloat bool
	)

scan:
	for {
		char, ok := reader.Peek()
		if !ok {
			break
		}

		switch {
		case unicode.IsDigit(char):
			_, _ = reader.Next()
			literal.WriteRune(char)
		case char == '.':
			if isFloat {
				return models.Token{}, errors.NewInvalidNumberError(reader.Pos(), nil)
			}
			isFloat = true
			_, _ = reader.Next()
			literal.WriteRune(char)
		default:
			break scan
		}
	}

	if isFloat {
		value, err := strconv.ParseFloat(literal.String(), 64)
		if err != nil {
			return models.Token{}, errors.NewInvalidNumberError(reader.Pos(), err)
		}
		return models.FloatToken(value), nil
	}

	value, err := strconv.ParseInt(literal.String(), 10, 64)
	if err != nil {
		return models.Token{}, errors.NewInvalidNumberError(reader.Pos(), err)
	}
	return models.IntToken(value), nil
}
