// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/emphatic/source"
	"github.com/bufbuild/emphatic/token"
)

// ErrInvalidSource is a sentinel error that is returned by compilations that
// encountered syntax errors but whose configured ErrorReporter always returned
// nil.
var ErrInvalidSource = errors.New("parse failed: invalid contract source")

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the location and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Location
	Unwrap() error
}

// ParseError is the single error kind produced by the parser. It records
// which token violated an expectation, or that input ended early.
type ParseError struct {
	// Index of the offending token in its stream. When EOF is set, this is the
	// length of the stream.
	Token int
	// Set if the parser ran out of tokens.
	EOF bool
	// The offending token's text; empty when EOF is set.
	Lexeme string
	Pos    source.Location
	Err    error
}

var _ ErrorWithPos = (*ParseError)(nil)

// Errorf constructs a ParseError for the token at index i in stream.
func Errorf(stream *token.Stream, i int, format string, args ...any) *ParseError {
	return &ParseError{
		Token:  i,
		EOF:    !stream.Has(i),
		Lexeme: stream.Text(i),
		Pos:    stream.Location(i),
		Err:    fmt.Errorf(format, args...),
	}
}

// Error implements [error].
func (e *ParseError) Error() string {
	if e.EOF {
		return fmt.Sprintf("%v: end of input: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("%v: token %d: %v", e.Pos, e.Token, e.Err)
}

// GetPosition implements [ErrorWithPos].
func (e *ParseError) GetPosition() source.Location {
	return e.Pos
}

// Unwrap implements [ErrorWithPos]. The returned error does not include
// location information.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message returns just the human-readable message of this error.
func (e *ParseError) Message() string {
	return e.Err.Error()
}
