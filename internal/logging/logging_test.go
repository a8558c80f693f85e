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

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/emphatic/internal/logging"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	require.NoError(t, err)
	defer logger.Close()

	logger.Debug("hidden")
	logger.Info("shown", "n", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown n=1")

	logger.SetDebug(true)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=\"now visible\"")
}

func TestLogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emphatic.log")
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, LogFile: path})
	require.NoError(t, err)

	logger.Warn("fanout", "file", "a.cpt")
	require.NoError(t, logger.Close())

	assert.Contains(t, buf.String(), "msg=fanout file=a.cpt")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "fanout", record["msg"])
	assert.Equal(t, "a.cpt", record["file"])
}

func TestLogFileError(t *testing.T) {
	t.Parallel()

	_, err := logging.New(logging.Options{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.ErrorContains(t, err, "opening log file")
}
