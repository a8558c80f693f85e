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

package parser

import (
	"fmt"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/token/keyword"
)

// parseScope appends declarations to scope until the input ends or a '}' is
// next. The '}' is not consumed.
func (p *parser) parseScope(c *Cursor, scope *ast.Scope) error {
	for !c.Done() && c.Char() != '}' {
		if c.IsDirective() {
			scope.Children = append(scope.Children, &ast.Passthrough{Text: c.Text()})
			c.Advance()
			continue
		}

		if _, err := p.requireIdent(c, "declarations must begin with a keyword"); err != nil {
			return err
		}

		at := c.Index()
		kw := c.Keyword()
		c.Advance()

		var (
			node ast.Node
			err  error
		)
		switch kw {
		case keyword.Concept:
			node, err = p.parseContract(c)
		case keyword.Class, keyword.Struct:
			node, err = p.parseOpaque(c, kw)
		case keyword.Namespace:
			node, err = p.parseNamespace(c)
		case keyword.Using:
			node, err = p.parseAlias(c)
		default:
			err = p.errorf(at, "unknown keyword '%s'", p.stream.Text(at))
		}
		if err != nil {
			return err
		}
		scope.Children = append(scope.Children, node)
	}
	return nil
}

// parseOpaque parses a class or struct after its keyword, capturing the body
// without interpreting it.
func (p *parser) parseOpaque(c *Cursor, kw keyword.Keyword) (*ast.OpaqueType, error) {
	node := &ast.OpaqueType{Kind: ast.Class}
	if kw == keyword.Struct {
		node.Kind = ast.Struct
	}
	if c.IsIdent() {
		node.Name = c.Text()
		c.Advance()
	}

	if err := p.requireChar(c, '{', fmt.Sprintf("a %s must be defined in braces", kw)); err != nil {
		return nil, err
	}
	body, err := p.scanCode(c, false, true)
	if err != nil {
		return nil, err
	}
	node.Body = body
	if err := p.requireChar(c, '}', fmt.Sprintf("expected '}' to end %s body", kw)); err != nil {
		return nil, err
	}
	if err := p.requireChar(c, ';', fmt.Sprintf("expected ';' after %s body", kw)); err != nil {
		return nil, err
	}

	p.log.Debug("opaque type", "kind", node.Kind, "name", node.Name)
	return node, nil
}

// parseNamespace parses a namespace after its keyword, recursing into its
// body.
func (p *parser) parseNamespace(c *Cursor) (*ast.Scope, error) {
	scope := &ast.Scope{Kind: ast.Namespace}
	if c.IsIdent() {
		scope.Name = c.Text()
		c.Advance()
	}

	if err := p.requireChar(c, '{', "a namespace must be defined in braces"); err != nil {
		return nil, err
	}
	p.log.Debug("entering namespace", "name", scope.Name)
	if err := p.parseScope(c, scope); err != nil {
		return nil, err
	}
	if err := p.requireChar(c, '}', fmt.Sprintf("expected '}' to end namespace '%s'", scope.Name)); err != nil {
		return nil, err
	}
	return scope, nil
}

// parseAlias parses a using declaration after its keyword.
func (p *parser) parseAlias(c *Cursor) (*ast.Alias, error) {
	if _, err := p.requireIdent(c, "expected the new type name after 'using'"); err != nil {
		return nil, err
	}
	name, err := p.parseType(c)
	if err != nil {
		return nil, err
	}
	if err := p.requireChar(c, '=', fmt.Sprintf("expected '=' after 'using %s'", name)); err != nil {
		return nil, err
	}
	at := c.Index()
	target, err := p.scanCode(c, false, false)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, p.errorf(at, "expected a type after 'using %s =', found %s", name, p.stream.Describe(at))
	}

	p.log.Debug("alias", "name", name, "target", target)
	return &ast.Alias{Name: name, Target: target}, nil
}
