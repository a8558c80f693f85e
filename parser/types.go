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
	"slices"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/token/keyword"
)

// parseType consumes a type name such as `const std::vector<T>&` and returns
// its lexemes joined by single spaces.
func (p *parser) parseType(c *Cursor) (string, error) {
	start := c.Index()
	if c.Keyword() == keyword.Const {
		c.Advance()
	}

	for {
		if c.Keyword() == keyword.Typename {
			c.Advance()
		}
		if c.Keyword() == keyword.Template {
			c.Advance()
		}

		if _, err := p.takeIdent(c, "expected a type name"); err != nil {
			return "", err
		}

		if c.Char() == '<' {
			c.Advance()
			if _, err := p.scanCode(c, true, false); err != nil {
				return "", err
			}
			if err := p.requireChar(c, '>', "expected '>' to close template arguments"); err != nil {
				return "", err
			}
		}

		if !c.IsScope() {
			break
		}
		c.Advance()
	}

	for c.Char() == '&' || c.Char() == '*' {
		c.Advance()
	}

	return p.stream.Join(start, c.Index()), nil
}

// parseParams consumes a parameter list up to, but not including, its closing
// ')'.
func (p *parser) parseParams(c *Cursor) ([]ast.Param, error) {
	var params []ast.Param
	for c.Char() != ')' {
		if len(params) > 0 {
			if err := p.requireChar(c, ',', "expected ',' between parameters"); err != nil {
				return nil, err
			}
		}

		typ, err := p.parseType(c)
		if err != nil {
			return nil, err
		}

		param := ast.Param{Type: typ}
		if c.IsIdent() {
			param.Name = c.Text()
			c.Advance()
		}
		params = append(params, param)
	}
	return params, nil
}

// parseIDList consumes consecutive identifiers and returns them sorted and
// de-duplicated.
func (p *parser) parseIDList(c *Cursor) []string {
	var ids []string
	for c.IsIdent() {
		ids = append(ids, c.Text())
		c.Advance()
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
