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

package source_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/emphatic/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.cpt", "concept A : B {\n  int x;\n};\n")
	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{8, 1, 9},
		{15, 1, 16},
		{16, 2, 1},
		{18, 2, 3},
		{25, 3, 1},
		{100, 4, 1},
	}
	for _, tt := range tests {
		loc := file.Location(tt.offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.col, loc.Column, "offset %d", tt.offset)
		assert.Equal(t, "a.cpt", loc.Path)
	}
	assert.Equal(t, "a.cpt:2:3", file.Location(18).String())
}

func TestLocationRunes(t *testing.T) {
	t.Parallel()

	file := source.NewFile("", "// héllo\nx")
	loc := file.Location(len("// héllo"))
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 9, loc.Column)
	assert.Equal(t, "1:9", loc.String())
}

func TestLine(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.cpt", "first\r\nsecond\nthird")
	assert.Equal(t, 3, file.LineCount())
	assert.Equal(t, "first", file.Line(1))
	assert.Equal(t, "second", file.Line(2))
	assert.Equal(t, "third", file.Line(3))
	assert.Empty(t, file.Line(4))
	assert.Empty(t, file.Line(0))
}

func TestLineMany(t *testing.T) {
	t.Parallel()

	var text strings.Builder
	for i := range 5000 {
		fmt.Fprintf(&text, "line %d\n", i+1)
	}
	file := source.NewFile("a.cpt", text.String())
	// The trailing newline starts one last, empty line.
	assert.Equal(t, 5001, file.LineCount())
	for _, n := range []int{1, 2, 2500, 4999, 5000} {
		assert.Equal(t, fmt.Sprintf("line %d", n), file.Line(n))
	}
	assert.Empty(t, file.Line(5001))
	assert.Empty(t, file.Line(5002))

	offset := strings.Index(file.Text(), "line 4321")
	loc := file.Location(offset)
	assert.Equal(t, 4321, loc.Line)
	assert.Equal(t, 1, loc.Column)
	assert.Equal(t, "line 4321", file.Line(loc.Line))
}

func TestEOF(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.cpt", "using X = int;\n\n  \n")
	eof := file.EOF()
	assert.Equal(t, 1, eof.Line)
	assert.Equal(t, 15, eof.Column)

	empty := source.NewFile("b.cpt", "   ")
	assert.Equal(t, source.Location{Path: "b.cpt", Line: 1, Column: 1}, empty.EOF())

	var nilFile *source.File
	assert.Equal(t, "", nilFile.Text())
	assert.Equal(t, 1, nilFile.Location(10).Line)
}
