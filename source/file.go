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

package source

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/btree"
)

// File is a source code file being parsed.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Maps the byte offset at which each line starts to its 1-indexed line
	// number.
	lines btree.Map[int, int]
	// The byte offset at which each line starts, by line number minus one.
	starts []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is only used in diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// LineCount returns the number of lines in this file. An empty file has one
// (empty) line.
func (f *File) LineCount() int {
	if f == nil {
		return 1
	}
	f.index()
	return len(f.starts)
}

// Location resolves a byte offset into a full Location.
//
// Offsets past the end of the file are clamped to the end of the file.
func (f *File) Location(offset int) Location {
	if f == nil || offset <= 0 {
		return Location{Path: f.Path(), Offset: 0, Line: 1, Column: 1}
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}

	start, line := f.lineStart(offset)
	return Location{
		Path:   f.path,
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(f.text[start:offset]) + 1,
	}
}

// Line returns the given 1-indexed line, without its trailing newline.
//
// Returns "" for lines that do not exist.
func (f *File) Line(line int) string {
	if f == nil || line < 1 {
		return ""
	}
	f.index()
	if line > len(f.starts) {
		return ""
	}

	text := f.text[f.starts[line-1]:]
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[:nl]
	}
	return strings.TrimSuffix(text, "\r")
}

// EOF returns the location immediately after the last non-space rune in the
// file.
func (f *File) EOF() Location {
	eof := strings.LastIndexFunc(f.Text(), func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if eof == -1 {
		return f.Location(0)
	}
	_, size := utf8.DecodeRuneInString(f.text[eof:])
	return f.Location(eof + size)
}

// lineStart finds the start offset and number of the line containing offset.
func (f *File) lineStart(offset int) (start, line int) {
	f.index()

	iter := f.lines.Iter()
	if !iter.Seek(offset) {
		// Past the start of the last line.
		iter.Last()
		return iter.Key(), iter.Value()
	}
	if iter.Key() != offset {
		iter.Prev()
	}
	return iter.Key(), iter.Value()
}

func (f *File) index() {
	f.once.Do(func() {
		f.starts = append(f.starts, 0)
		for i := 0; i < len(f.text); i++ {
			if f.text[i] == '\n' {
				f.starts = append(f.starts, i+1)
			}
		}
		for i, start := range f.starts {
			f.lines.Set(start, i+1)
		}
	})
}

// Location is a user-displayable location within a source code file.
type Location struct {
	// The path of the file this location points into.
	Path string

	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. Columns are measured
	// in runes.
	Line, Column int
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}
