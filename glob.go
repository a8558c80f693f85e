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
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandGlobs resolves patterns, which may use `**` to match any number of
// directories, to the regular files they match. Relative patterns are taken
// relative to root. A pattern without glob metacharacters names a file
// directly and must exist.
//
// The result is sorted and free of duplicates.
func ExpandGlobs(root string, patterns ...string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}

		if !hasMeta(pattern) {
			if _, err := os.Stat(pattern); err != nil {
				return nil, err
			}
			paths = append(paths, pattern)
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// ExcludeGlobs removes every path matching one of patterns. Patterns are
// matched relative to root, like [ExpandGlobs].
func ExcludeGlobs(root string, paths []string, patterns ...string) ([]string, error) {
	patterns = slices.Clone(patterns)
	for i, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			patterns[i] = filepath.Join(root, pattern)
		}
		if !doublestar.ValidatePathPattern(patterns[i]) {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return slices.DeleteFunc(slices.Clone(paths), func(path string) bool {
		return slices.ContainsFunc(patterns, func(pattern string) bool {
			ok, _ := doublestar.PathMatch(pattern, filepath.Clean(path))
			return ok
		})
	}), nil
}

func hasMeta(path string) bool {
	return slices.ContainsFunc([]rune(path), func(r rune) bool {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
		return false
	})
}
