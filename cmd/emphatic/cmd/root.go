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

// Package cmd implements the emphatic command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bufbuild/emphatic/config"
	"github.com/bufbuild/emphatic/internal/logging"
	"github.com/bufbuild/emphatic/parser"
	"github.com/bufbuild/emphatic/report"
)

// errReported is returned by commands whose errors have already been
// printed.
var errReported = errors.New("errors were reported")

// app holds state shared by every subcommand.
type app struct {
	cfgFile string
	flags   struct {
		debug, strict, color bool
		logFile              string
	}

	cfg config.Config
	// Directory that relative include and exclude patterns are resolved
	// against.
	root string
	log  *logging.Logger
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	root, a := newRootCommand()
	defer a.close()

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return err
}

// NewRootCommand builds the emphatic command and its subcommands.
func NewRootCommand() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "emphatic",
		Short: "Parse contract declaration files",
		Long: `emphatic parses files that declare concepts: named contracts listing the
functions, variables, and type aliases a derived type must provide. Classes,
structs, and namespaces may appear around them; preprocessor directives are
passed through unchanged.

Files are given on the command line as paths or ** globs. With no arguments,
the include patterns from the configuration file are used.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "configuration file (.toml, .yaml, or .yml)")
	flags.BoolVar(&a.flags.debug, "debug", false, "log each construct as it is parsed")
	flags.BoolVar(&a.flags.strict, "strict-brackets", false, "require matching bracket kinds in captured code")
	flags.StringVar(&a.flags.logFile, "log-file", "", "also write JSON logs to this file")
	flags.BoolVar(&a.flags.color, "color", false, "colorize diagnostics")

	root.AddCommand(a.parseCommand(), a.tokensCommand(), a.watchCommand())
	return root, a
}

// setup loads the configuration, applies flag overrides, and opens the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	a.root = "."
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.root = filepath.Dir(a.cfgFile)
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		a.cfg.Debug = a.flags.debug
	}
	if flags.Changed("strict-brackets") {
		a.cfg.StrictBrackets = a.flags.strict
	}
	if flags.Changed("log-file") {
		a.cfg.LogFile = a.flags.logFile
	}
	if flags.Changed("color") {
		a.cfg.Color = a.flags.color
	}

	log, err := logging.New(logging.Options{
		Writer:  cmd.ErrOrStderr(),
		LogFile: a.cfg.LogFile,
	})
	if err != nil {
		return err
	}
	log.SetDebug(a.cfg.Debug)
	a.log = log
	a.log.Debug("configured", "config", a.cfgFile, "strict_brackets", a.cfg.StrictBrackets, "format", a.cfg.Format)
	return nil
}

// close releases the log file, if any. Commands do not call this, since
// cobra skips post-run hooks when a command fails.
func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

func (a *app) parserOptions() parser.Options {
	return parser.Options{
		StrictBrackets: a.cfg.StrictBrackets,
		Logger:         a.log.Logger,
	}
}

func (a *app) renderer() report.Renderer {
	return report.Renderer{Colorize: a.cfg.Color}
}

// readFile is os.ReadFile, except that "-" reads from in.
func readFile(path string, in io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(in)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
