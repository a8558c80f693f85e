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

package parser

import (
	"github.com/bufbuild/emphatic/token"
	"github.com/bufbuild/emphatic/token/keyword"
)

// Cursor is a position in a token stream.
//
// Every production takes the cursor it advances explicitly, so independent
// parses never share state. A cursor only moves forward, except for
// [Cursor.Back], which the code scanner uses to leave an unmatched closing
// bracket for its caller.
type Cursor struct {
	stream *token.Stream
	idx    int
}

// NewCursor returns a cursor at the start of stream.
func NewCursor(stream *token.Stream) *Cursor {
	return &Cursor{stream: stream}
}

// Stream returns the stream this cursor walks.
func (c *Cursor) Stream() *token.Stream {
	return c.stream
}

// Index returns the index of the next token to be consumed.
func (c *Cursor) Index() int {
	return c.idx
}

// Done returns whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.idx >= c.stream.Len()
}

// Advance consumes the current token.
func (c *Cursor) Advance() {
	c.idx++
}

// Back un-consumes the most recently consumed token.
func (c *Cursor) Back() {
	if c.idx > 0 {
		c.idx--
	}
}

// Char returns the current token if it is a single-character symbol.
func (c *Cursor) Char() byte { return c.stream.Char(c.idx) }

// Text returns the current lexeme.
func (c *Cursor) Text() string { return c.stream.Text(c.idx) }

// IsIdent returns whether the current token is an identifier or keyword.
func (c *Cursor) IsIdent() bool { return c.stream.IsIdent(c.idx) }

// IsDirective returns whether the current token is a directive line.
func (c *Cursor) IsDirective() bool { return c.stream.IsDirective(c.idx) }

// Keyword resolves the current token to a keyword.
func (c *Cursor) Keyword() keyword.Keyword { return c.stream.Keyword(c.idx) }

// IsScope returns whether the current token is the scope-resolution symbol.
func (c *Cursor) IsScope() bool {
	return c.stream.Is(c.idx, token.Punct) && c.Text() == "::"
}
