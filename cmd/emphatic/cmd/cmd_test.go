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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// syncBuffer is a bytes.Buffer safe for use by a command running on another
// goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func run(ctx context.Context, stdin string, stdout, stderr *syncBuffer, args ...string) error {
	root, a := newRootCommand()
	defer a.close()

	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut syncBuffer
	err = run(context.Background(), stdin, &out, &errOut, args...)
	return out.String(), errOut.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestTokens(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.cpt": "#pragma once\nconcept A : B { };\n"})
	stdout, _, err := execute(t, "", "tokens", filepath.Join(dir, "a.cpt"))
	require.NoError(t, err)
	assert.Equal(t, `0: Directive : "#pragma once"
1: Ident : "concept"
2: Ident : "A"
3: Punct : ":"
4: Ident : "B"
5: Punct : "{"
6: Punct : "}"
7: Punct : ";"
`, stdout)

	stdout, _, err = execute(t, `using T = "x"; // done`, "tokens", "-")
	require.NoError(t, err)
	assert.Equal(t, `0: Ident : "using"
1: Ident : "T"
2: Punct : "="
3: String : ""x""
4: Punct : ";"
`, stdout)

	_, _, err = execute(t, "", "tokens")
	assert.Error(t, err)
}

func TestParseEcho(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.cpt": "concept A : B {\n  int n = 1;\n  void F() = required;\n};\n",
		"b.cpt": "namespace x { struct S { }; }\n",
	})
	path := filepath.Join(dir, "a.cpt")

	stdout, stderr, err := execute(t, "", "parse", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "concept A : B {\n  int n = 1;\n  void F() = required;\n};\n", stdout)

	stdout, _, err = execute(t, "", "parse", filepath.Join(dir, "*.cpt"))
	require.NoError(t, err)
	assert.Equal(t, ""+
		"// "+path+"\n"+
		"concept A : B {\n  int n = 1;\n  void F() = required;\n};\n"+
		"// "+filepath.Join(dir, "b.cpt")+"\n"+
		"namespace x {\n  struct S { };\n}\n", stdout)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"bad.cpt":    "concept A B { };\n",
		"good.cpt":   "struct S { };\n",
		"strict.cpt": "concept A : B { int x = f(1]; };\n",
	})

	stdout, stderr, err := execute(t, "", "parse", filepath.Join(dir, "*.cpt"))
	require.ErrorIs(t, err, errReported)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error: expected ':' after contract name 'A', found 'B'\n"+
		"  --> "+filepath.Join(dir, "bad.cpt")+":1:11\n")
	assert.Contains(t, stderr, " 1 | concept A B { };\n   |           ^\n")
	assert.Contains(t, stderr, "encountered 1 error\n")

	_, stderr, err = execute(t, "", "--strict-brackets", "parse", filepath.Join(dir, "*.cpt"))
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error: ']' does not close '('")
	assert.Contains(t, stderr, "encountered 2 errors\n")
	// Errors are sorted by file.
	assert.Less(t, strings.Index(stderr, "bad.cpt"), strings.Index(stderr, "strict.cpt"))

	_, _, err = execute(t, "", "parse", filepath.Join(dir, "missing.cpt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "parse", filepath.Join(dir, "*.none"))
	assert.ErrorContains(t, err, "no input files match")

	_, _, err = execute(t, "", "parse", "--format", "json", filepath.Join(dir, "good.cpt"))
	assert.ErrorContains(t, err, `unknown output format "json"`)
}

func TestParseWithConfig(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"emphatic.toml": `
format = "yaml"
include = ["src/**/*.cpt"]
exclude = ["src/skip/**"]
max_parallelism = 1
`,
		"src/a.cpt":      "struct S { int x; };\n",
		"src/skip/b.cpt": "this does not parse",
	})
	cfg := filepath.Join(dir, "emphatic.toml")

	stdout, _, err := execute(t, "", "parse", "--config", cfg)
	require.NoError(t, err)

	var doc struct {
		Kind     string `yaml:"kind"`
		Children []map[string]string
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "root", doc.Kind)
	assert.Equal(t, []map[string]string{{"kind": "struct", "name": "S", "body": "int x ;"}}, doc.Children)

	stdout, _, err = execute(t, "", "parse", "--config", cfg, "--format", "echo")
	require.NoError(t, err)
	assert.Equal(t, "struct S { int x ; };\n", stdout)

	_, _, err = execute(t, "", "parse", "--config", filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDebugLogFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.cpt": "concept A : B { };\n"})
	logFile := filepath.Join(dir, "log.json")

	_, stderr, err := execute(t, "", "--debug", "--log-file", logFile, "parse", filepath.Join(dir, "a.cpt"))
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="defining contract" name=A base=B`)
	assert.Contains(t, stderr, "msg=parsed files=1 contracts=1 members=0 namespaces=0")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"defining contract"`)
}

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.cpt": "struct A { };\n"})
	path := filepath.Join(dir, "a.cpt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, "", &stdout, &stderr, "watch", path)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "watching for changes")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "struct A { };\n", stdout.String())

	require.NoError(t, os.WriteFile(path, []byte("class B { int y; };\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "class B { int y ; };\n")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("class C {\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "expected '}' to end class body, found end of input")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
