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
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bufbuild/emphatic/printer"
)

func (a *app) watchCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch [file|glob]...",
		Short: "Parse files, then parse them again whenever they change",
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
			return a.watch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), out, paths)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: echo or yaml (default from config, else echo)")
	return cmd
}

// watch parses every path once, then re-parses each one that is written to
// until ctx is done.
//
// Directories are watched rather than files, since editors often replace a
// file instead of writing to it.
func (a *app) watch(ctx context.Context, stdout, stderr io.Writer, r printer.Renderer, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool)
	for _, path := range paths {
		path = filepath.Clean(path)
		watched[path] = true
		dir := filepath.Dir(path)
		if slices.Contains(w.WatchList(), dir) {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	a.refresh(ctx, stdout, stderr, r, paths...)
	a.log.Info("watching for changes", "files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !watched[path] || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			a.log.Debug("file changed", "file", path, "op", ev.Op.String())
			a.refresh(ctx, stdout, stderr, r, path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "error", err)
		}
	}
}

// refresh parses and prints paths. Errors are reported and otherwise
// ignored, so that watching continues.
func (a *app) refresh(ctx context.Context, stdout, stderr io.Writer, r printer.Renderer, paths ...string) {
	files, err := a.compile(ctx, stderr, paths...)
	switch {
	case errors.Is(err, errReported):
		return
	case err != nil:
		a.log.Error("parse failed", "error", err)
		return
	}

	if err := a.print(stdout, r, files); err != nil {
		a.log.Error("printing failed", "error", err)
	}
	a.log.Info("parsed", "files", len(files))
}
