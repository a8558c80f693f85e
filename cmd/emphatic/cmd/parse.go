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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/bufbuild/emphatic"
	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/printer"
	"github.com/bufbuild/emphatic/reporter"
	"github.com/bufbuild/emphatic/source"
	"github.com/bufbuild/emphatic/walk"
)

func (a *app) parseCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [file|glob]...",
		Short: "Parse files and print their syntax trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
			}
			out, err := printer.ForMode(a.cfg.Format)
			if err != nil {
				return err
			}

			paths, err := a.inputs(args)
			if err != nil {
				return err
			}
			files, err := a.compile(cmd.Context(), cmd.ErrOrStderr(), paths...)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out, files)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: echo or yaml (default from config, else echo)")
	return cmd
}

// inputs expands command line arguments, or the configured include
// patterns if there are none, into file paths.
func (a *app) inputs(args []string) ([]string, error) {
	root, patterns := ".", args
	if len(args) == 0 {
		root, patterns = a.root, a.cfg.Include
	}

	paths, err := emphatic.ExpandGlobs(root, patterns...)
	if err != nil {
		return nil, err
	}
	paths, err = emphatic.ExcludeGlobs(a.root, paths, a.cfg.Exclude...)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files match %q", patterns)
	}
	return paths, nil
}

// compile parses paths in parallel. Every file's first syntax error is
// rendered to stderr, in which case errReported is returned.
func (a *app) compile(ctx context.Context, stderr io.Writer, paths ...string) ([]*ast.File, error) {
	var (
		mu      sync.Mutex
		sources = make(map[string]*source.File)
		errs    []reporter.ErrorWithPos
	)

	resolver := emphatic.ResolverFunc(func(path string) (emphatic.SearchResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return emphatic.SearchResult{}, err
		}
		file := source.NewFile(path, string(data))

		mu.Lock()
		defer mu.Unlock()
		sources[path] = file
		return emphatic.SearchResult{File: file}, nil
	})
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
		return nil
	}, nil)

	compiler := emphatic.Compiler{
		Resolver:       resolver,
		MaxParallelism: a.cfg.MaxParallelism,
		Reporter:       rep,
		Options:        a.parserOptions(),
	}
	files, err := compiler.Compile(ctx, paths...)
	if errors.Is(err, reporter.ErrInvalidSource) {
		// Compile returns once every file is done, so errs is complete.
		if _, err := a.renderer().RenderAll(stderr, sortErrors(errs), sources); err != nil {
			return nil, err
		}
		return nil, errReported
	}
	return files, err
}

// print renders each file to out. When there are several, each is preceded
// by a comment naming it.
func (a *app) print(out io.Writer, r printer.Renderer, files []*ast.File) error {
	var stats struct{ contracts, namespaces, members int }
	for _, file := range files {
		text, err := r.Render(file.Root)
		if err != nil {
			return err
		}

		if len(files) > 1 {
			header := "// " + file.Path + "\n"
			if _, ok := r.(printer.YAML); ok {
				header = "--- # " + file.Path + "\n"
			}
			if _, err := io.WriteString(out, header); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, text); err != nil {
			return err
		}

		_ = walk.Nodes(file.Root, func(n ast.Node) error {
			switch n := n.(type) {
			case *ast.Contract:
				stats.contracts++
				stats.members += len(n.Variables) + len(n.Functions)
			case *ast.Scope:
				if n.Kind == ast.Namespace {
					stats.namespaces++
				}
			}
			return nil
		})
	}

	a.log.Debug("parsed",
		"files", len(files),
		"contracts", stats.contracts,
		"members", stats.members,
		"namespaces", stats.namespaces)
	return nil
}

// sortErrors orders errors by file, so output does not depend on which
// goroutine finished first.
func sortErrors(errs []reporter.ErrorWithPos) []error {
	slices.SortFunc(errs, func(a, b reporter.ErrorWithPos) int {
		return strings.Compare(a.GetPosition().Path, b.GetPosition().Path)
	})
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}
