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

package token

import (
	"fmt"
	"strings"

	"github.com/bufbuild/emphatic/source"
	"github.com/bufbuild/emphatic/token/keyword"
)

// Token is a single classified lexeme.
type Token struct {
	// The literal text of this token.
	Text string
	Kind Kind
	// Byte offset of the start of this token in its file.
	Offset int
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}

// Stream is the ordered sequence of tokens lexed from one file.
type Stream struct {
	File   *source.File
	Tokens []Token
}

// Len returns the number of tokens in this stream.
func (s *Stream) Len() int {
	return len(s.Tokens)
}

// Has returns whether i is the index of a token in this stream.
func (s *Stream) Has(i int) bool {
	return i >= 0 && i < len(s.Tokens)
}

// At returns the token at i, or the zero token if there is none.
func (s *Stream) At(i int) Token {
	if !s.Has(i) {
		return Token{}
	}
	return s.Tokens[i]
}

// Is returns whether the token at i has the given kind.
func (s *Stream) Is(i int, kind Kind) bool {
	return s.Has(i) && s.Tokens[i].Kind == kind
}

// IsIdent returns whether the token at i is an identifier or keyword.
func (s *Stream) IsIdent(i int) bool { return s.Is(i, Ident) }

// IsNumber returns whether the token at i is a numeric literal.
func (s *Stream) IsNumber(i int) bool { return s.Is(i, Number) }

// IsString returns whether the token at i is a string literal.
func (s *Stream) IsString(i int) bool { return s.Is(i, String) }

// IsDirective returns whether the token at i is a directive line.
func (s *Stream) IsDirective(i int) bool { return s.Is(i, Directive) }

// Char returns the symbol at i if it is a single-character [Punct], and zero
// otherwise.
func (s *Stream) Char(i int) byte {
	if !s.Is(i, Punct) || len(s.Tokens[i].Text) != 1 {
		return 0
	}
	return s.Tokens[i].Text[0]
}

// Text returns the lexeme at i, or "" if there is none.
func (s *Stream) Text(i int) string {
	return s.At(i).Text
}

// Keyword resolves the identifier at i to a keyword.
//
// Returns [keyword.Unknown] for non-identifiers and ordinary names.
func (s *Stream) Keyword(i int) keyword.Keyword {
	if !s.IsIdent(i) {
		return keyword.Unknown
	}
	return keyword.Lookup(s.Tokens[i].Text)
}

// Join concatenates the lexemes in [start, end) separated by single spaces,
// except that directives are separated from their neighbors by newlines so
// that each stays on a line of its own.
//
// This is the canonical form of captured code; it is not a faithful copy of
// the original bytes. Lexing the result yields the same tokens again.
func (s *Stream) Join(start, end int) string {
	start = max(start, 0)
	end = min(end, len(s.Tokens))

	var out strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			if s.Tokens[i].Kind == Directive || s.Tokens[i-1].Kind == Directive {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
		out.WriteString(s.Tokens[i].Text)
	}
	return out.String()
}

// Location returns the location of the token at i. Indices past the end of
// the stream resolve to the end of the file.
func (s *Stream) Location(i int) source.Location {
	if !s.Has(i) {
		return s.File.EOF()
	}
	return s.File.Location(s.Tokens[i].Offset)
}

// Describe returns a short, quoted description of the token at i for use in
// diagnostics.
func (s *Stream) Describe(i int) string {
	if !s.Has(i) {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", s.Tokens[i].Text)
}
