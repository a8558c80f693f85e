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

// Package lexer converts source text into a [token.Stream] by trying an
// ordered table of pattern rules at each offset.
package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/emphatic/source"
	"github.com/bufbuild/emphatic/token"
)

// Rule is one entry in a [Lexer]'s rule table.
type Rule struct {
	// Name is used only for debugging output.
	Name string

	// Pattern must be anchored at the start of input; use [NewRule] to build
	// one from an unanchored expression.
	Pattern *regexp.Regexp

	// The kind of token produced. Ignored for Skip rules.
	Kind token.Kind

	// If set, matches are consumed but no token is produced.
	Skip bool

	// If set, the rule only applies when nothing but spaces and tabs precede
	// the current offset on its line.
	LineStart bool
}

// NewRule compiles pattern into a rule anchored at the current offset.
//
// Panics if pattern is not a valid regular expression.
func NewRule(name, pattern string, kind token.Kind) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`),
		Kind:    kind,
	}
}

// String implements [fmt.Stringer].
func (r Rule) String() string {
	flags := ""
	if r.Skip {
		flags += " skip"
	}
	if r.LineStart {
		flags += " line-start"
	}
	return fmt.Sprintf("%s: %s -> %v%s", r.Name, r.Pattern, r.Kind, flags)
}

// Lexer is a priority-ordered table of rules.
//
// At each offset, rules are tried in order and the first one that matches a
// non-empty prefix wins, regardless of whether a later rule would match more.
// If none match, a single character is emitted as a [token.Punct], so lexing
// never fails.
type Lexer struct {
	Rules []Rule
}

// Default returns a lexer with the standard rule table for contract files.
func Default() *Lexer {
	whitespace := NewRule("Whitespace", `[ \t\r\n\f\v]+`, token.Unrecognized)
	whitespace.Skip = true
	lineComment := NewRule("LineComment", `//[^\n]*`, token.Unrecognized)
	lineComment.Skip = true
	blockComment := NewRule("BlockComment", `/\*(?s:.*?)\*/`, token.Unrecognized)
	blockComment.Skip = true
	directive := NewRule("Directive", `#[^\r\n]*`, token.Directive)
	directive.LineStart = true

	return &Lexer{Rules: []Rule{
		whitespace,
		lineComment,
		blockComment,
		NewRule("Ident", `[A-Za-z_][A-Za-z0-9_]*`, token.Ident),
		NewRule("Number", `[0-9]+(?:\.[0-9]+)?`, token.Number),
		// Literals may span lines.
		NewRule("String", `"(?:[^"\\]|\\(?s:.))*"`, token.String),
		NewRule("Char", `'(?:[^'\\]|\\(?s:.))*'`, token.String),
		directive,
		NewRule("Scope", `::`, token.Punct),
	}}
}

// Add appends a rule with the lowest priority, still above the single
// character fallback.
func (l *Lexer) Add(rule Rule) {
	l.Rules = append(l.Rules, rule)
}

// Lex runs lexical analysis on file and returns a new token stream.
//
// The result is a pure function of the rule table and the file's text.
func (l *Lexer) Lex(file *source.File) *token.Stream {
	lex := &lexer{Lexer: l, Stream: &token.Stream{File: file}, lineStart: true}
	lex.loop()
	return lex.Stream
}

// Tokenize is a convenience wrapper that lexes text with the default rules.
func Tokenize(path, text string) *token.Stream {
	return Default().Lex(source.NewFile(path, text))
}

// lexer is the book-keeping for a single call to [Lexer.Lex].
type lexer struct {
	*Lexer
	*token.Stream

	cursor int
	// Whether only spaces and tabs lie between the start of the current
	// line and the cursor.
	lineStart bool
}

func (l *lexer) loop() {
	for !l.done() {
		rule, n := l.match()
		if n == 0 {
			_, n = utf8.DecodeRuneInString(l.rest())
			l.push(n, token.Punct)
			continue
		}
		if rule.Skip {
			l.advance(n)
			continue
		}
		l.push(n, rule.Kind)
	}
}

// match finds the first rule matching at the cursor, and the length of its
// match.
func (l *lexer) match() (*Rule, int) {
	rest := l.rest()
	for i := range l.Rules {
		rule := &l.Rules[i]
		if rule.LineStart && !l.lineStart {
			continue
		}
		if loc := rule.Pattern.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return rule, loc[1]
		}
	}
	return nil, 0
}

// push pushes a new token of the given byte length onto the stream.
func (l *lexer) push(length int, kind token.Kind) {
	l.Tokens = append(l.Tokens, token.Token{
		Text:   l.rest()[:length],
		Kind:   kind,
		Offset: l.cursor,
	})
	l.advance(length)
}

// advance moves the cursor forward by n bytes, tracking whether it remains
// at the start of a line.
func (l *lexer) advance(n int) {
	text := l.rest()[:n]
	if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
		l.lineStart = true
		text = text[nl+1:]
	}
	l.lineStart = l.lineStart && strings.Trim(text, " \t") == ""
	l.cursor += n
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.File.Text()[l.cursor:]
}

// done returns whether or not we're done lexing.
func (l *lexer) done() bool {
	return l.cursor >= len(l.File.Text())
}
