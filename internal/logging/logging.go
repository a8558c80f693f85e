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

// Package logging builds the structured loggers used by the command line
// tools.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures [New].
type Options struct {
	// Human-readable logs are written here. Defaults to os.Stderr.
	Writer io.Writer
	// If set, logs are also appended to this file as JSON lines.
	LogFile string
	// Minimum level for every handler. Defaults to a fresh LevelVar at
	// info level.
	Level *slog.LevelVar
}

// Logger is a [slog.Logger] that owns the files its handlers write to.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar

	closers []io.Closer
}

// New builds a logger that fans out to a text handler and, when requested,
// a JSON log file.
func New(opts Options) (*Logger, error) {
	level := opts.Level
	if level == nil {
		level = new(slog.LevelVar)
	}
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(writer, handlerOpts)}

	logger := &Logger{Level: level}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logger.closers = append(logger.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
	}

	logger.Logger = slog.New(slogmulti.Fanout(handlers...))
	return logger, nil
}

// SetDebug switches the logger between debug and info level.
func (l *Logger) SetDebug(debug bool) {
	if debug {
		l.Level.Set(slog.LevelDebug)
	} else {
		l.Level.Set(slog.LevelInfo)
	}
}

// Close closes any log files opened by [New].
func (l *Logger) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.closers = nil
	return first
}
