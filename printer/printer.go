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

// Package printer renders syntax trees back to text.
//
// Two renderers are provided: [Echo], which re-emits a tree in the grammar
// it was parsed from, and [YAML], which dumps its structure.
package printer

import (
	"fmt"

	"github.com/bufbuild/emphatic/ast"
)

// Renderer converts a node, and everything under it, to text.
type Renderer interface {
	Render(node ast.Node) (string, error)
}

var (
	_ Renderer = Echo{}
	_ Renderer = YAML{}
)

// Modes lists the names accepted by [ForMode].
var Modes = []string{"echo", "yaml"}

// ForMode returns the renderer with the given name.
func ForMode(name string) (Renderer, error) {
	switch name {
	case "echo":
		return Echo{}, nil
	case "yaml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", name, Modes)
	}
}
