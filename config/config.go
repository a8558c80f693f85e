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

// Package config loads the settings shared by the emphatic command line
// tools from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Config holds every setting that may be given in a configuration file.
// Command line flags take precedence over these values.
type Config struct {
	// Enables debug logging of each construct the parser recognizes.
	Debug bool `toml:"debug" yaml:"debug"`
	// Requires opening and closing brackets in captured code to be of the
	// same kind.
	StrictBrackets bool `toml:"strict_brackets" yaml:"strict_brackets"`
	// Output format for parsed files: "echo" or "yaml".
	Format string `toml:"format" yaml:"format"`
	// Glob patterns, relative to the configuration file, selecting the files
	// to parse when none are named on the command line.
	Include []string `toml:"include" yaml:"include"`
	// Glob patterns removing files from Include.
	Exclude []string `toml:"exclude" yaml:"exclude"`
	// Maximum number of files parsed at once; zero means GOMAXPROCS.
	MaxParallelism int `toml:"max_parallelism" yaml:"max_parallelism"`
	// If set, logs are also written to this file as JSON.
	LogFile string `toml:"log_file" yaml:"log_file"`
	// Whether to colorize diagnostics.
	Color bool `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:  "echo",
		Include: []string{"**/*.cpt"},
	}
}

// Load reads the file at path, detecting its format from the extension.
// Settings missing from the file keep their [Default] values.
func Load(path string) (Config, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat is like [Load], but with an explicit format.
func LoadFormat(path string, format Format) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, errors.New("config: file path cannot be empty")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}
	cfg, err := Parse(content, format)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// DetectFormat guesses a file's format from its extension, defaulting to
// TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes content on top of [Default] and validates the result.
// Unknown keys are an error.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %v", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has an acceptable value.
func (c Config) Validate() error {
	switch c.Format {
	case "echo", "yaml":
	default:
		return fmt.Errorf("format must be \"echo\" or \"yaml\", got %q", c.Format)
	}
	if c.MaxParallelism < 0 {
		return fmt.Errorf("max_parallelism must not be negative, got %d", c.MaxParallelism)
	}
	return nil
}
