// Package stream provides a positional, forward-only reader over a fixed
// sequence of elements. Both the tokenizer (over runes) and the parser
// (over tokens) drive their input through a Reader.
package stream

import (
	"github.com/jwren0/jerry/internal/errors"
)

// Reader wraps an ordered, finite sequence and a cursor into it. The cursor
// only ever moves forward; there is no rewind or reset.
type Reader[T any] struct {
	data   []T
	cursor int
}

// New creates a Reader positioned at the start of data.
func New[T any](data []T) *Reader[T] {
	return &Reader[T]{data: data}
}

// Peek returns the element at the cursor without advancing. The second
// return value is false when the cursor is at or past the end.
func (r *Reader[T]) Peek() (T, bool) {
	if r.cursor >= len(r.data) {
		var zero T
		return zero, false
	}
	return r.data[r.cursor], true
}

// Next returns the element at the cursor and advances past it. It fails
// with an out-of-bounds error when the cursor is at or past the end.
func (r *Reader[T]) Next() (T, error) {
	if r.cursor >= len(r.data) {
		var zero T
		return zero, errors.NewOutOfBoundsError(r.cursor, len(r.data))
	}
	next := r.data[r.cursor]
	r.cursor++
	return next, nil
}

// Pos returns the current cursor position.
func (r *Reader[T]) Pos() int {
	return r.cursor
}

// Len returns the total length of the underlying sequence.
func (r *Reader[T]) Len() int {
	return len(r.data)
}

// Exhausted reports whether the cursor has reached the end of the sequence.
func (r *Reader[T]) Exhausted() bool {
	return r.cursor >= len(r.data)
}

// Consume advances the reader and checks the element it read against
// expected. A mismatch is an error; so is reading past the end.
func Consume[T comparable](r *Reader[T], expected T) error {
	actual, err := r.Next()
	if err != nil {
		return err
	}
	if actual != expected {
		return errors.NewMismatchError(expected, actual)
	}
	return nil
}
