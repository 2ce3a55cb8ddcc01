package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrNoInput         = errors.New("no input provided: please specify a file or pipe data to stdin")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeOutOfBounds     ErrorType = "out_of_bounds"
	ErrorTypeUnexpectedChar  ErrorType = "unexpected_character"
	ErrorTypeInvalidNumber   ErrorType = "invalid_number"
	ErrorTypeMismatch        ErrorType = "mismatched_expectation"
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	ErrorTypeTrailingTokens  ErrorType = "trailing_tokens"
	ErrorTypeInput           ErrorType = "input"
	ErrorTypeConfig          ErrorType = "config"
	ErrorTypeOutput          ErrorType = "output"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewOutOfBoundsError creates a new error for reading past the end of a stream
func NewOutOfBoundsError(pos, size int) *AppError {
	return &AppError{
		Type:    ErrorTypeOutOfBounds,
		Message: fmt.Sprintf("read past end of stream at position %d (length %d)", pos, size),
	}
}

// NewUnexpectedCharError creates a new error for a character the tokenizer
// cannot classify
func NewUnexpectedCharError(char rune, pos int) *AppError {
	return &AppError{
		Type:    ErrorTypeUnexpectedChar,
		Message: fmt.Sprintf("unexpected character %q at index %d", char, pos),
	}
}

// NewInvalidNumberError creates a new error for a malformed numeric literal
func NewInvalidNumberError(pos int, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidNumber,
		Message: fmt.Sprintf("invalid numeric literal at index %d", pos),
		Err:     err,
	}
}

// NewMismatchError creates a new error for a structural element that did not
// match what the grammar requires
func NewMismatchError(expected, actual any) *AppError {
	return &AppError{
		Type:    ErrorTypeMismatch,
		Message: fmt.Sprintf("expected '%v', got '%v'", expected, actual),
	}
}

// NewUnexpectedValueError creates a new error for a token that cannot start a value
func NewUnexpectedValueError(token any) *AppError {
	return &AppError{
		Type:    ErrorTypeUnexpectedValue,
		Message: fmt.Sprintf("unexpected value: '%v'", token),
	}
}

// NewTrailingTokensError creates a new error for tokens remaining after a
// complete top-level value
func NewTrailingTokensError(token any, pos int) *AppError {
	return &AppError{
		Type:    ErrorTypeTrailingTokens,
		Message: fmt.Sprintf("unexpected trailing token '%v' at position %d", token, pos),
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeOutOfBounds:
			return fmt.Sprintf("Parse error: input ended unexpectedly (%s)", appErr.Message)
		case ErrorTypeUnexpectedChar, ErrorTypeInvalidNumber:
			return fmt.Sprintf("Tokenize error: %s", appErr.Message)
		case ErrorTypeMismatch, ErrorTypeUnexpectedValue, ErrorTypeTrailingTokens:
			return fmt.Sprintf("Parse error: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Config error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide a document to parse."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file or pipe data to stdin."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with content to parse."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
