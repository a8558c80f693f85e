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

package emphatic

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/parser"
	"github.com/bufbuild/emphatic/reporter"
	"github.com/bufbuild/emphatic/source"
)

// Compiler handles parsing tasks, turning contract source files into syntax
// trees.
type Compiler struct {
	// Resolves path/file names into source code. This is how the compiler
	// loads the files to be parsed. This field is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when parsing. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error reporter. If unspecified a default reporter is used. A
	// default reporter fails the compilation after encountering any errors.
	Reporter reporter.Reporter
	// Options passed to the parser for every file.
	Options parser.Options
}

// Compile parses the given file names. The compiler's resolver is used to
// locate their source code.
//
// The returned slice has one entry per name, in the same order. If any file
// fails to parse, the result is nil and the error is either the one the
// Reporter aborted with or [reporter.ErrInvalidSource].
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*ast.File, error) {
	if len(files) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	if log := c.Options.Logger; log != nil {
		log.Debug("compiling", "files", len(files), "parallelism", par)
	}

	h := reporter.NewHandler(c.Reporter)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(par)

	results := make([]*ast.File, len(files))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := c.compile(name)
			if err != nil {
				// A nil return means the reporter wants the other files to
				// keep going.
				return h.HandleError(err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := h.Error(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Compiler) compile(name string) (*ast.File, error) {
	sr, err := c.Resolver.FindFileByPath(name)
	if err != nil {
		return nil, err
	}

	file := sr.File
	if file == nil {
		file, err = load(name, sr.Source)
		if err != nil {
			return nil, err
		}
	}
	return parser.Parse(file, c.Options)
}

// load reads a file's contents out of r, closing it if it can be closed.
func load(name string, r io.Reader) (*source.File, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: resolver returned no source", name)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return source.NewFile(name, string(data)), nil
}
