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

package printer

import (
	"fmt"
	"strings"

	"github.com/bufbuild/emphatic/ast"
	"github.com/bufbuild/emphatic/walk"
)

// Echo re-emits a tree using the surface grammar: one declaration per line,
// nested namespaces and contract members indented. Captured code is printed
// as it was stored. Code that spans lines, because it holds a directive, is
// printed on lines of its own between its opening and closing punctuation.
type Echo struct {
	// Indent is the string used for one level of nesting. Defaults to two
	// spaces.
	Indent string
}

// Render implements [Renderer].
func (e Echo) Render(node ast.Node) (string, error) {
	p := &echo{indent: e.Indent}
	if p.indent == "" {
		p.indent = "  "
	}
	if err := walk.EnterAndExit(node, p.enter, p.exit); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

type echo struct {
	out    strings.Builder
	indent string
	depth  int
}

func (p *echo) line(format string, args ...any) {
	for range p.depth {
		p.out.WriteString(p.indent)
	}
	fmt.Fprintf(&p.out, format, args...)
	p.out.WriteByte('\n')
}

// code prints head, text and tail on one line, or on separate lines with
// text indented one level deeper when text spans several lines.
func (p *echo) code(head, text, tail string) {
	if !strings.Contains(text, "\n") {
		p.line("%s %s%s", head, text, tail)
		return
	}
	p.line("%s", head)
	p.depth++
	for l := range strings.SplitSeq(text, "\n") {
		p.line("%s", l)
	}
	p.depth--
	p.line("%s", strings.TrimSpace(tail))
}

func (p *echo) enter(node ast.Node) error {
	switch node := node.(type) {
	case *ast.Passthrough:
		p.line("%s", node.Text)
	case *ast.Scope:
		if node.Kind != ast.Namespace {
			break
		}
		if node.Name == "" {
			p.line("namespace {")
		} else {
			p.line("namespace %s {", node.Name)
		}
		p.depth++
	case *ast.OpaqueType:
		if node.Body == "" {
			p.line("%s %s { };", node.Kind, node.Name)
		} else {
			p.code(fmt.Sprintf("%s %s {", node.Kind, node.Name), node.Body, " };")
		}
	case *ast.Alias:
		p.code(fmt.Sprintf("using %s =", node.Name), node.Target, ";")
	case *ast.Contract:
		p.line("concept %s : %s {", node.Name, node.Base)
		p.depth++
	default:
		return fmt.Errorf("printer: unexpected node type %T", node)
	}
	return nil
}

func (p *echo) exit(node ast.Node) error {
	switch node := node.(type) {
	case *ast.Scope:
		if node.Kind != ast.Namespace {
			break
		}
		p.depth--
		p.line("}")
	case *ast.Contract:
		// Aliases have already been printed as children.
		for _, v := range node.Variables {
			if v.Initializer == "" {
				p.line("%s %s;", v.Type, v.Name)
			} else {
				p.code(fmt.Sprintf("%s %s =", v.Type, v.Name), v.Initializer, ";")
			}
		}
		for _, f := range node.Functions {
			if f.Body.Kind == ast.BodyInline {
				p.code(signature(f)+" {", f.Body.Code, " }")
			} else {
				p.line("%s", signature(f))
			}
		}
		p.depth--
		p.line("};")
	}
	return nil
}

// signature renders a function member. Bodies other than inline code are
// included.
func signature(f *ast.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s(", f.Type, f.Name)
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.Type)
		if param.Name != "" {
			b.WriteByte(' ')
			b.WriteString(param.Name)
		}
	}
	b.WriteByte(')')
	for _, attr := range f.Attributes {
		b.WriteByte(' ')
		b.WriteString(attr)
	}

	switch f.Body.Kind {
	case ast.BodyRequired, ast.BodyDefault:
		fmt.Fprintf(&b, " = %s;", f.Body.Kind)
	case ast.BodyInline:
	default:
		b.WriteString(" { }")
	}
	return b.String()
}
