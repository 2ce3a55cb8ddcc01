// Package models defines the lexical and tree types shared by the
// tokenizer, the parser and the output formatter.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TokenKind discriminates the variants of Token.
type TokenKind int

const (
	// TokenPunct is one of the structural characters { } [ ] : ,
	TokenPunct TokenKind = iota
	// TokenString is a string literal, stored with both quote characters.
	// The quotes are stripped by the parser, not the tokenizer.
	TokenString
	// TokenNumber is an integer or float, already converted from text.
	TokenNumber
)

// Token is one lexical unit produced by the tokenizer. Exactly the fields
// belonging to Kind are meaningful; the rest stay zero. All fields are
// comparable so tokens can be matched with stream.Consume.
type Token struct {
	Kind    TokenKind
	Punct   rune    // TokenPunct
	Text    string  // TokenString, including surrounding quotes
	Int     int64   // TokenNumber with IsFloat false
	Float   float64 // TokenNumber with IsFloat true
	IsFloat bool
}

// PunctToken creates a punctuation token.
func PunctToken(char rune) Token {
	return Token{Kind: TokenPunct, Punct: char}
}

// StringToken creates a string-literal token. text must include both
// quote characters.
func StringToken(text string) Token {
	return Token{Kind: TokenString, Text: text}
}

// IntToken creates an integer number token.
func IntToken(value int64) Token {
	return Token{Kind: TokenNumber, Int: value}
}

// FloatToken creates a floating-point number token.
func FloatToken(value float64) Token {
	return Token{Kind: TokenNumber, Float: value, IsFloat: true}
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(char rune) bool {
	return t.Kind == TokenPunct && t.Punct == char
}

// String renders the token the way it appeared in the input, for use in
// error messages.
func (t Token) String() string {
	switch t.Kind {
	case TokenPunct:
		return string(t.Punct)
	case TokenString:
		return t.Text
	case TokenNumber:
		if t.IsFloat {
			return strconv.FormatFloat(t.Float, 'g', -1, 64)
		}
		return strconv.FormatInt(t.Int, 10)
	}
	return "<invalid token>"
}

// Value is one node of the parsed tree: *Object, Array, String, Integer
// or Float. Every node marshals to standard JSON.
type Value interface {
	json.Marshaler
	valueNode()
}

// String is a string leaf, stored without quote delimiters.
type String string

// Integer is a whole-number leaf.
type Integer int64

// Float is a floating-point leaf.
type Float float64

// Array is an ordered sequence of values. It may be empty.
type Array []Value

// Object is a mapping from string keys to values. Insertion order is
// preserved for first-seen keys; setting an existing key overwrites the
// value in place without changing the key's position.
type Object struct {
	keys  []string
	items map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{items: make(map[string]Value)}
}

// Set inserts or overwrites the value for key. A repeated key keeps its
// original position (last write wins, no error).
func (o *Object) Set(key string, value Value) {
	if _, exists := o.items[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.items[key] = value
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.items[key]
	return value, ok
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

func (String) valueNode()  {}
func (Integer) valueNode() {}
func (Float) valueNode()   {}
func (Array) valueNode()   {}
func (*Object) valueNode() {}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON implements json.Marshaler.
func (i Integer) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// MarshalJSON implements json.Marshaler. An empty array marshals as [],
// never null.
func (a Array) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Value(a))
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(o.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
