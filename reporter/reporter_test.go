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

package reporter_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/emphatic/internal/lexer"
	"github.com/bufbuild/emphatic/reporter"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	stream := lexer.Tokenize("foo.cpt", "concept Foo\n  Shape { };")
	err := reporter.Errorf(stream, 2, "expected %q", ":")
	assert.Equal(t, `foo.cpt:2:3: token 2: expected ":"`, err.Error())
	assert.Equal(t, `expected ":"`, err.Message())
	assert.Equal(t, 2, err.GetPosition().Line)
	assert.False(t, err.EOF)
	assert.Equal(t, "Shape", err.Lexeme)

	eof := reporter.Errorf(stream, stream.Len(), "unexpected end")
	assert.True(t, eof.EOF)
	assert.Empty(t, eof.Lexeme)
	assert.Equal(t, "foo.cpt:2:13: end of input: unexpected end", eof.Error())

	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, error(err), &ewp)
	assert.Equal(t, "expected \":\"", errors.Unwrap(ewp).Error())
}

func TestHandlerDefault(t *testing.T) {
	t.Parallel()

	stream := lexer.Tokenize("foo.cpt", "x")
	h := reporter.NewHandler(nil)
	first := reporter.Errorf(stream, 0, "first")
	second := reporter.Errorf(stream, 0, "second")

	assert.Equal(t, first, h.HandleError(first))
	assert.Equal(t, first, h.HandleError(second), "first error is latched")
	assert.Equal(t, first, h.Error())
}

func TestHandlerContinue(t *testing.T) {
	t.Parallel()

	stream := lexer.Tokenize("foo.cpt", "x")
	var seen []string
	var warned int
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			seen = append(seen, errors.Unwrap(err).Error())
			return nil
		},
		func(reporter.ErrorWithPos) { warned++ },
	)
	h := reporter.NewHandler(rep)

	require.NoError(t, h.HandleError(reporter.Errorf(stream, 0, "a")))
	require.NoError(t, h.HandleError(reporter.Errorf(stream, 0, "b")))
	h.HandleWarning(reporter.Errorf(stream, 0, "w"))

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, 1, warned)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
	assert.NoError(t, h.ReporterError())

	// Errors without positions always abort.
	assert.ErrorIs(t, h.HandleError(io.ErrUnexpectedEOF), io.ErrUnexpectedEOF)
	assert.ErrorIs(t, h.Error(), io.ErrUnexpectedEOF)
}
