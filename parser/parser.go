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
	"log/slog"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/internal/lexer"
	"github.com/bufbuild/emphatic/reporter"
	"github.com/bufbuild/emphatic/source"
	"github.com/bufbuild/emphatic/token"
)

// Parse lexes and parses file with the default lexer rules.
//
// On failure, the returned error is a [*reporter.ParseError].
func Parse(file *source.File, opts Options) (*ast.File, error) {
	return ParseStream(lexer.Default().Lex(file), opts)
}

// ParseStream parses an already-lexed stream.
//
// On failure, the returned error is a [*reporter.ParseError].
func ParseStream(stream *token.Stream, opts Options) (*ast.File, error) {
	p := &parser{stream: stream, opts: opts, log: opts.logger()}
	c := NewCursor(stream)

	root := &ast.Scope{Kind: ast.Root}
	if err := p.parseScope(c, root); err != nil {
		return nil, err
	}
	if !c.Done() {
		// parseScope only stops early at a '}'.
		return nil, p.errorf(c.Index(), "unexpected '}' outside of any namespace")
	}

	p.log.Debug("parsed file",
		slog.String("path", stream.File.Path()),
		slog.Int("tokens", stream.Len()),
		slog.Int("decls", len(root.Children)))
	return &ast.File{Path: stream.File.Path(), Root: root}, nil
}

// parser holds the per-parse configuration. All position state lives in the
// Cursor passed to each production.
type parser struct {
	stream *token.Stream
	opts   Options
	log    *slog.Logger
}

func (p *parser) errorf(i int, format string, args ...any) *reporter.ParseError {
	return reporter.Errorf(p.stream, i, format, args...)
}

// requireIdent returns the current identifier without consuming it, or an
// error whose message is what followed by the offending token.
func (p *parser) requireIdent(c *Cursor, what string) (string, error) {
	if !c.IsIdent() {
		return "", p.errorf(c.Index(), "%s, found %s", what, p.stream.Describe(c.Index()))
	}
	return c.Text(), nil
}

// takeIdent is requireIdent followed by consuming the identifier.
func (p *parser) takeIdent(c *Cursor, what string) (string, error) {
	name, err := p.requireIdent(c, what)
	if err != nil {
		return "", err
	}
	c.Advance()
	return name, nil
}

// requireChar consumes the symbol ch, or returns an error whose message is
// what followed by the offending token.
func (p *parser) requireChar(c *Cursor, ch byte, what string) error {
	if c.Char() != ch {
		return p.errorf(c.Index(), "%s, found %s", what, p.stream.Describe(c.Index()))
	}
	c.Advance()
	return nil
}
