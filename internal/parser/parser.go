// Package parser builds a value tree from a token stream by recursive
// descent. A document is always an object or an array at the top level;
// bare scalars are rejected.
//
// Object parsing accepts an empty body: {} yields an empty Object. This
// deliberately diverges from the behavior observed in the original
// experiment, which tried to read } as a string key.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwren0/jerry/internal/errors"
	"github.com/jwren0/jerry/internal/lexer"
	"github.com/jwren0/jerry/internal/models"
	"github.com/jwren0/jerry/internal/stream"
)

// Parse consumes the token reader and returns the value tree. The reader
// must hold exactly one top-level object or array; anything left over
// after it fails with a trailing-tokens error.
func Parse(reader *stream.Reader[models.Token]) (models.Value, error) {
	token, ok := reader.Peek()
	if !ok {
		return nil, errors.NewInputError("token stream is empty", errors.ErrEmptyInput)
	}

	var (
		root models.Value
		err  error
	)
	switch {
	case token.IsPunct('{'):
		root, err = parseObject(reader)
	case token.IsPunct('['):
		root, err = parseArray(reader)
	default:
		return nil, errors.NewUnexpectedValueError(token)
	}
	if err != nil {
		return nil, err
	}

	// The top-level value must account for every token.
	if !reader.Exhausted() {
		trailing, _ := reader.Peek()
		return nil, errors.NewTrailingTokensError(trailing, reader.Pos())
	}

	return root, nil
}

// ParseTokens parses an already-tokenized sequence.
func ParseTokens(tokens []models.Token) (models.Value, error) {
	return Parse(stream.New(tokens))
}

// ParseString tokenizes and parses input held in a plain string.
func ParseString(input string) (models.Value, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}

	tokens, err := lexer.TokenizeString(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseFile tokenizes and parses the contents of the file at filePath.
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseString(string(data))
}

// parseValue dispatches on the peeked token to the matching value parser.
func parseValue(reader *stream.Reader[models.Token]) (models.Value, error) {
	token, ok := reader.Peek()
	if !ok {
		return nil, errors.NewOutOfBoundsError(reader.Pos(), reader.Len())
	}

	switch {
	case token.IsPunct('{'):
		return parseObject(reader)
	case token.IsPunct('['):
		return parseArray(reader)
	case token.Kind == models.TokenNumber:
		// Already converted by the tokenizer.
		if _, err := reader.Next(); err != nil {
			return nil, err
		}
		if token.IsFloat {
			return models.Float(token.Float), nil
		}
		return models.Integer(token.Int), nil
	case token.Kind == models.TokenString:
		return parseString(reader)
	default:
		return nil, errors.NewUnexpectedValueError(token)
	}
}

// parseString reads a string token and strips its quote delimiters.
func parseString(reader *stream.Reader[models.Token]) (models.String, error) {
	token, err := reader.Next()
	if err != nil {
		return "", err
	}
	if token.Kind != models.TokenString {
		return "", errors.NewUnexpectedValueError(token)
	}

	return models.String(token.Text[1 : len(token.Text)-1]), nil
}

// parseObject reads { key : value pairs } into an Object. A repeated key
// overwrites the previous value in place.
func parseObject(reader *stream.Reader[models.Token]) (models.Value, error) {
	object := models.NewObject()

	if err := stream.Consume(reader, models.PunctToken('{')); err != nil {
		return nil, err
	}

	// An immediately-closing brace is an empty object.
	if token, ok := reader.Peek(); ok && token.IsPunct('}') {
		_, _ = reader.Next()
		return object, nil
	}

	for {
		key, err := parseString(reader)
		if err != nil {
			return nil, err
		}
		if err := stream.Consume(reader, models.PunctToken(':')); err != nil {
			return nil, err
		}
		value, err := parseValue(reader)
		if err != nil {
			return nil, err
		}

		object.Set(string(key), value)

		if token, ok := reader.Peek(); ok && token.IsPunct(',') {
			_, _ = reader.Next()
			continue
		}
		break
	}

	if err := stream.Consume(reader, models.PunctToken('}')); err != nil {
		return nil, err
	}

	return object, nil
}

// parseArray reads [ values ] into an Array, which may be empty.
func parseArray(reader *stream.Reader[models.Token]) (models.Value, error) {
	array := models.Array{}

	if err := stream.Consume(reader, models.PunctToken('[')); err != nil {
		return nil, err
	}

	for {
		token, ok := reader.Peek()
		if !ok || token.IsPunct(']') {
			break
		}

		value, err := parseValue(reader)
		if err != nil {
			return nil, err
		}
		array = append(array, value)

		if token, ok := reader.Peek(); ok && token.IsPunct(',') {
			_, _ = reader.Next()
			continue
		}
		break
	}

	if err := stream.Consume(reader, models.PunctToken(']')); err != nil {
		return nil, err
	}

	return array, nil
}
