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

package keyword_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/emphatic/token/keyword"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for kw := range keyword.All() {
		assert.True(t, kw.IsValid())
		assert.Equal(t, kw, keyword.Lookup(kw.String()))
	}

	assert.Equal(t, keyword.Unknown, keyword.Lookup("unknown"))
	assert.Equal(t, keyword.Unknown, keyword.Lookup("Concept"))
	assert.Equal(t, keyword.Unknown, keyword.Lookup(""))
	assert.False(t, keyword.Unknown.IsValid())
}

func TestClasses(t *testing.T) {
	t.Parallel()

	var decls, quals, bodies int
	for kw := range keyword.All() {
		if kw.IsDeclaration() {
			decls++
		}
		if kw.IsQualifier() {
			quals++
		}
		if kw.IsFunctionBody() {
			bodies++
		}
	}
	assert.Equal(t, 5, decls)
	assert.Equal(t, 3, quals)
	assert.Equal(t, 2, bodies)
	assert.Equal(t, decls+quals+bodies, keyword.Total-1)
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "namespace", keyword.Namespace.String())
	assert.Equal(t, "keyword.Namespace", fmt.Sprintf("%#v", keyword.Namespace))
	assert.Equal(t, "Keyword(200)", keyword.Keyword(200).String())
}
