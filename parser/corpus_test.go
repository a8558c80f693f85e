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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/emphatic/internal/corpora"
	"github.com/bufbuild/emphatic/parser"
	"github.com/bufbuild/emphatic/printer"
	"github.com/bufbuild/emphatic/source"
)

// TestCorpus parses every file under testdata. Successful parses are echoed
// to <file>.echo and failures are written to <file>.err.
//
// Run with EMPHATIC_REFRESH=<glob> to regenerate the expected outputs.
func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "EMPHATIC_REFRESH",
		Extension: "cpt",
		Outputs: []corpora.Output{
			{Extension: "echo"},
			{Extension: "err"},
		},
		Test: func(t *testing.T, path, text string) []string {
			file, err := parser.Parse(source.NewFile(path, text), parser.Options{})
			if err != nil {
				return []string{"", err.Error() + "\n"}
			}
			echo, err := printer.Echo{}.Render(file.Root)
			require.NoError(t, err)
			return []string{echo, ""}
		},
	}
	corpus.Run(t)
}
