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

package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/walk"
)

func tree() *ast.Scope {
	return &ast.Scope{
		Kind: ast.Root,
		Children: []ast.Node{
			&ast.Passthrough{Text: "#pragma once"},
			&ast.Scope{
				Kind: ast.Namespace,
				Name: "ns",
				Children: []ast.Node{
					&ast.Contract{
						Name:    "C",
						Base:    "B",
						Aliases: []*ast.Alias{{Name: "T", Target: "int"}},
					},
				},
			},
			&ast.OpaqueType{Kind: ast.Struct, Name: "S"},
		},
	}
}

func describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Scope:
		return "scope:" + n.Name
	case *ast.Passthrough:
		return "pp"
	case *ast.Contract:
		return "contract:" + n.Name
	case *ast.Alias:
		return "alias:" + n.Name
	case *ast.OpaqueType:
		return "opaque:" + n.Name
	default:
		return fmt.Sprintf("%T", n)
	}
}

func TestEnterAndExit(t *testing.T) {
	t.Parallel()

	var events []string
	err := walk.EnterAndExit(tree(),
		func(n ast.Node) error {
			events = append(events, "+"+describe(n))
			return nil
		},
		func(n ast.Node) error {
			events = append(events, "-"+describe(n))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+scope:", "+pp", "-pp",
		"+scope:ns", "+contract:C", "+alias:T", "-alias:T", "-contract:C", "-scope:ns",
		"+opaque:S", "-opaque:S", "-scope:",
	}, events)
}

func TestSkipAndStop(t *testing.T) {
	t.Parallel()

	var seen []string
	err := walk.Nodes(tree(), func(n ast.Node) error {
		seen = append(seen, describe(n))
		if _, ok := n.(*ast.Contract); ok {
			return walk.SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"scope:", "pp", "scope:ns", "contract:C", "opaque:S"}, seen)

	stop := errors.New("stop")
	seen = nil
	err = walk.Nodes(tree(), func(n ast.Node) error {
		seen = append(seen, describe(n))
		if _, ok := n.(*ast.Contract); ok {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"scope:", "pp", "scope:ns", "contract:C"}, seen)
}
