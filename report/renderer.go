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

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/emphatic/reporter"
	"github.com/bufbuild/emphatic/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each error.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool
}

// Render renders a single error. file is the source the error refers to; if
// it is nil, or the error carries no position, the source snippet is omitted.
func (r Renderer) Render(err error, file *source.File) string {
	if err == nil {
		return ""
	}
	s := newStyleSheet(r)

	var perr *reporter.ParseError
	if !errors.As(err, &perr) {
		return s.level.Render("error") + s.message.Render(": "+err.Error())
	}

	if r.Compact {
		return fmt.Sprintf("%v: %s%s", perr.Pos,
			s.level.Render("error"), s.message.Render(": "+perr.Message()))
	}

	var out strings.Builder
	out.WriteString(s.level.Render("error"))
	out.WriteString(s.message.Render(": " + perr.Message()))
	out.WriteByte('\n')

	line := file.Line(perr.Pos.Line)
	if file == nil || (line == "" && !perr.EOF) {
		fmt.Fprintf(&out, "%s %v", s.accent.Render("-->"), perr.Pos)
		return out.String()
	}

	number := " " + strconv.Itoa(perr.Pos.Line)
	gutter := strings.Repeat(" ", len(number))
	bar := s.accent.Render("|")

	fmt.Fprintf(&out, "%s%s %v\n", gutter, s.accent.Render("-->"), perr.Pos)
	fmt.Fprintf(&out, "%s %s\n", gutter, bar)

	var text strings.Builder
	stringWidth(0, line, &text)
	fmt.Fprintf(&out, "%s %s %s\n", s.accent.Render(number), bar, strings.TrimRight(text.String(), " "))

	start, width := underline(line, perr)
	fmt.Fprintf(&out, "%s %s %s%s", gutter, bar,
		strings.Repeat(" ", start), s.level.Render(strings.Repeat("^", width)))
	return out.String()
}

// RenderAll writes each error to out, separated by blank lines unless Compact
// is set, followed by a summary line. files maps paths to their sources and
// may be nil. Returns the number of errors rendered.
func (r Renderer) RenderAll(out io.Writer, errs []error, files map[string]*source.File) (int, error) {
	var count int
	for _, err := range errs {
		if err == nil {
			continue
		}
		count++

		var file *source.File
		var ewp reporter.ErrorWithPos
		if errors.As(err, &ewp) {
			file = files[ewp.GetPosition().Path]
		}

		if _, err := fmt.Fprintln(out, r.Render(err, file)); err != nil {
			return count, err
		}
		if !r.Compact {
			if _, err := fmt.Fprintln(out); err != nil {
				return count, err
			}
		}
	}

	if count == 0 || r.Compact {
		return count, nil
	}
	s := newStyleSheet(r)
	_, err := fmt.Fprintln(out, s.summary.Render("encountered "+pluralize(count, "error")))
	return count, err
}

// underline returns the display column at which the caret underline starts,
// and how wide it is.
func underline(line string, perr *reporter.ParseError) (start, width int) {
	prefix := line
	if col := perr.Pos.Column - 1; col >= 0 {
		prefix = runePrefix(line, col)
	}
	start = stringWidth(0, prefix, nil)

	// Tokens never span lines, except for directives, which run to the end of
	// the line anyway.
	lexeme, _, _ := strings.Cut(perr.Lexeme, "\n")
	width = stringWidth(start, lexeme, nil) - start
	return start, max(width, 1)
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}
