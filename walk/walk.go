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

// Package walk provides helper functions for traversing a syntax tree.
package walk

import (
	"errors"

	"github.com/bufbuild/emphatic/ast"
)

// SkipChildren may be returned by an enter function to skip visiting the
// children of a node. The node's exit function is still called.
var SkipChildren = errors.New("skip children")

// Nodes walks the tree rooted at node in pre-order, calling fn for each node.
// If fn returns an error, the walk stops and that error is returned.
func Nodes(node ast.Node, fn func(ast.Node) error) error {
	return EnterAndExit(node, fn, nil)
}

// EnterAndExit walks the tree rooted at node, calling enter before a node's
// children are visited and exit after. exit may be nil.
//
// The children of a [*ast.Scope] are its declarations and the children of a
// [*ast.Contract] are its aliases; all other nodes are leaves.
func EnterAndExit(node ast.Node, enter, exit func(ast.Node) error) error {
	err := enter(node)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		if err := children(node, enter, exit); err != nil {
			return err
		}
	}

	if exit != nil {
		return exit(node)
	}
	return nil
}

func children(node ast.Node, enter, exit func(ast.Node) error) error {
	switch node := node.(type) {
	case *ast.Scope:
		for _, child := range node.Children {
			if err := EnterAndExit(child, enter, exit); err != nil {
				return err
			}
		}
	case *ast.Contract:
		for _, alias := range node.Aliases {
			if err := EnterAndExit(alias, enter, exit); err != nil {
				return err
			}
		}
	}
	return nil
}
