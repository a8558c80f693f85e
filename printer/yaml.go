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
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/emphatic/ast"
)

// YAML dumps the structure of a tree as a YAML document.
type YAML struct{}

// Render implements [Renderer].
func (YAML) Render(node ast.Node) (string, error) {
	doc, err := toYAML(node)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("printer: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("printer: %w", err)
	}
	return buf.String(), nil
}

// yamlNode is the serialized form of every [ast.Node]; which fields are set
// depends on Kind.
type yamlNode struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name,omitempty"`
	Text   string `yaml:"text,omitempty"`
	Base   string `yaml:"base,omitempty"`
	Body   string `yaml:"body,omitempty"`
	Target string `yaml:"target,omitempty"`

	Children  []*yamlNode   `yaml:"children,omitempty"`
	Aliases   []*yamlNode   `yaml:"aliases,omitempty"`
	Variables []*yamlMember `yaml:"variables,omitempty"`
	Functions []*yamlMember `yaml:"functions,omitempty"`
}

type yamlMember struct {
	Type        string      `yaml:"type"`
	Name        string      `yaml:"name"`
	Params      []yamlParam `yaml:"params,omitempty"`
	Attributes  []string    `yaml:"attributes,omitempty,flow"`
	Body        string      `yaml:"body,omitempty"`
	Code        string      `yaml:"code,omitempty"`
	Initializer string      `yaml:"initializer,omitempty"`
}

type yamlParam struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`
}

func toYAML(node ast.Node) (*yamlNode, error) {
	switch node := node.(type) {
	case *ast.Passthrough:
		return &yamlNode{Kind: "directive", Text: node.Text}, nil
	case *ast.Scope:
		out := &yamlNode{Kind: node.Kind.String(), Name: node.Name}
		for _, child := range node.Children {
			y, err := toYAML(child)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, y)
		}
		return out, nil
	case *ast.OpaqueType:
		return &yamlNode{Kind: node.Kind.String(), Name: node.Name, Body: node.Body}, nil
	case *ast.Alias:
		return &yamlNode{Kind: "using", Name: node.Name, Target: node.Target}, nil
	case *ast.Contract:
		out := &yamlNode{Kind: "concept", Name: node.Name, Base: node.Base}
		for _, alias := range node.Aliases {
			out.Aliases = append(out.Aliases, &yamlNode{Kind: "using", Name: alias.Name, Target: alias.Target})
		}
		for _, v := range node.Variables {
			out.Variables = append(out.Variables, toYAMLMember(v, false))
		}
		for _, f := range node.Functions {
			out.Functions = append(out.Functions, toYAMLMember(f, true))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("printer: unexpected node type %T", node)
	}
}

func toYAMLMember(m *ast.Member, function bool) *yamlMember {
	out := &yamlMember{
		Type:        m.Type,
		Name:        m.Name,
		Attributes:  m.Attributes,
		Code:        m.Body.Code,
		Initializer: m.Initializer,
	}
	if function {
		out.Body = m.Body.Kind.String()
	}
	for _, p := range m.Params {
		out.Params = append(out.Params, yamlParam(p))
	}
	return out
}
