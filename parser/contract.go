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

// parseContract parses the rest of a contract after its `concept` keyword.
func (p *parser) parseContract(c *Cursor) (*ast.Contract, error) {
	name, err := p.takeIdent(c, "expected a contract name after 'concept'")
	if err != nil {
		return nil, err
	}
	if err := p.requireChar(c, ':', fmt.Sprintf("expected ':' after contract name '%s'", name)); err != nil {
		return nil, err
	}
	base, err := p.takeIdent(c, fmt.Sprintf("expected a base type name for contract '%s'", name))
	if err != nil {
		return nil, err
	}
	if err := p.requireChar(c, '{', "expected '{' to begin contract body"); err != nil {
		return nil, err
	}

	p.log.Debug("defining contract", "name", name, "base", base)
	contract := &ast.Contract{Name: name, Base: base}

	for c.Char() != '}' {
		if _, err := p.requireIdent(c, "expected a function, variable, or 'using' in contract body"); err != nil {
			return nil, err
		}

		if c.Keyword() == keyword.Using {
			c.Advance()
			alias, err := p.parseAlias(c)
			if err != nil {
				return nil, err
			}
			contract.Aliases = append(contract.Aliases, alias)
			continue
		}

		member, isFunc, err := p.parseMember(c)
		if err != nil {
			return nil, err
		}
		if isFunc {
			contract.Functions = append(contract.Functions, member)
		} else {
			contract.Variables = append(contract.Variables, member)
		}
	}
	c.Advance() // Skip the '}'.

	if err := p.requireChar(c, ';', fmt.Sprintf("expected ';' after contract '%s'", name)); err != nil {
		return nil, err
	}
	return contract, nil
}

// parseMember parses a function or variable declaration in a contract body.
func (p *parser) parseMember(c *Cursor) (member *ast.Member, isFunc bool, err error) {
	typ, err := p.parseType(c)
	if err != nil {
		return nil, false, err
	}
	name, err := p.takeIdent(c, fmt.Sprintf("expected a member name after type '%s'", typ))
	if err != nil {
		return nil, false, err
	}
	member = &ast.Member{Type: typ, Name: name}

	if c.Char() != '(' {
		return member, false, p.parseVariable(c, member)
	}
	return member, true, p.parseFunction(c, member)
}

// parseVariable parses what follows a variable's name.
func (p *parser) parseVariable(c *Cursor, member *ast.Member) error {
	switch c.Char() {
	case ';':
		c.Advance()
	case '=':
		c.Advance()
		at := c.Index()
		init, err := p.scanCode(c, false, false)
		if err != nil {
			return err
		}
		if init == "" {
			return p.errorf(at, "expected an initializer for '%s', found %s", member.Name, p.stream.Describe(at))
		}
		member.Initializer = init
	default:
		return p.errorf(c.Index(), "expected ';' or '=' after variable '%s', found %s",
			member.Name, p.stream.Describe(c.Index()))
	}

	p.log.Debug("contract variable", "type", member.Type, "name", member.Name, "init", member.Initializer)
	return nil
}

// parseFunction parses what follows a function's name, starting at its '('.
func (p *parser) parseFunction(c *Cursor, member *ast.Member) error {
	c.Advance() // Skip the '('.

	params, err := p.parseParams(c)
	if err != nil {
		return err
	}
	member.Params = params
	if err := p.requireChar(c, ')', "expected ')' to close parameter list"); err != nil {
		return err
	}
	member.Attributes = p.parseIDList(c)

	switch c.Char() {
	case '=':
		c.Advance()
		at := c.Index()
		switch c.Keyword() {
		case keyword.Required:
			member.Body.Kind = ast.BodyRequired
		case keyword.Default:
			member.Body.Kind = ast.BodyDefault
		default:
			return p.errorf(at, "functions can only be set to 'required' or 'default', found %s",
				p.stream.Describe(at))
		}
		c.Advance()
		what := fmt.Sprintf("expected ';' after '= %s'", member.Body.Kind)
		if err := p.requireChar(c, ';', what); err != nil {
			return err
		}
	case '{':
		c.Advance()
		code, err := p.scanCode(c, false, true)
		if err != nil {
			return err
		}
		if err := p.requireChar(c, '}', "expected '}' to end function body"); err != nil {
			return err
		}
		if code != "" {
			member.Body = ast.Body{Kind: ast.BodyInline, Code: code}
		}
	default:
		return p.errorf(c.Index(), "expected '{' or '=' after signature of '%s', found %s",
			member.Name, p.stream.Describe(c.Index()))
	}

	p.log.Debug("contract function",
		"type", member.Type, "name", member.Name,
		"params", len(member.Params), "body", member.Body.Kind)
	return nil
}
