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

package emphatic_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/emphatic"
)

func makeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, path := range paths {
		full := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o600))
	}
	return root
}

func TestExpandGlobs(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "a.cpt", "b.txt", "x/c.cpt", "x/y/d.cpt", "z/e.cpt")
	rel := func(paths []string) []string {
		for i, p := range paths {
			r, err := filepath.Rel(root, p)
			require.NoError(t, err)
			paths[i] = filepath.ToSlash(r)
		}
		return paths
	}

	got, err := emphatic.ExpandGlobs(root, "**/*.cpt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.cpt", "x/c.cpt", "x/y/d.cpt", "z/e.cpt"}, rel(got))

	got, err = emphatic.ExpandGlobs(root, "x/**/*.cpt", "b.txt", "x/c.cpt")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "x/c.cpt", "x/y/d.cpt"}, rel(got))

	got, err = emphatic.ExpandGlobs(root, filepath.Join(root, "z", "*.cpt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"z/e.cpt"}, rel(got))

	// Directories are never matched.
	got, err = emphatic.ExpandGlobs(root, "*")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.cpt", "b.txt"}, rel(got))

	_, err = emphatic.ExpandGlobs(root, "nope.cpt")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = emphatic.ExpandGlobs(root, "[*.cpt")
	assert.ErrorContains(t, err, "bad pattern")
}

func TestExcludeGlobs(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "a.cpt", "x/c.cpt", "x/y/d.cpt", "vendor/v.cpt")
	all, err := emphatic.ExpandGlobs(root, "**/*.cpt")
	require.NoError(t, err)
	require.Len(t, all, 4)

	patterns := []string{"vendor/**", "x/y/*.cpt"}
	kept, err := emphatic.ExcludeGlobs(root, all, patterns...)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.cpt"), filepath.Join(root, "x", "c.cpt")}, kept)
	assert.Len(t, all, 4)
	assert.Equal(t, []string{"vendor/**", "x/y/*.cpt"}, patterns)

	_, err = emphatic.ExcludeGlobs(root, all, "[")
	assert.ErrorContains(t, err, "bad pattern")
}
