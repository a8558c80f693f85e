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

package ast

import "slices"

// Node is a node in the syntax tree: one of [*Passthrough], [*Scope],
// [*OpaqueType], [*Alias], or [*Contract].
type Node interface {
	isNode()
}

var (
	_ Node = (*Passthrough)(nil)
	_ Node = (*Scope)(nil)
	_ Node = (*OpaqueType)(nil)
	_ Node = (*Alias)(nil)
	_ Node = (*Contract)(nil)
)

// File is the result of parsing one source file.
type File struct {
	Path string
	Root *Scope
}

// Passthrough is a directive line, kept verbatim.
type Passthrough struct {
	Text string
}

// Scope is an ordered list of declarations: either the root of a file or
// the body of a namespace.
type Scope struct {
	Kind ScopeKind
	// Empty for the root scope and anonymous namespaces.
	Name     string
	Children []Node
}

// OpaqueType is a class or struct whose body is captured without being
// parsed.
type OpaqueType struct {
	Kind TypeKind
	Name string
	// The tokens between the braces, joined by single spaces.
	Body string
}

// Alias is a `using Name = Target;` declaration.
type Alias struct {
	Name string
	// Either a type or arbitrary code; it is not interpreted.
	Target string
}

// Contract is a named set of members that a type derived from Base must
// provide.
type Contract struct {
	Name, Base string

	Aliases   []*Alias
	Variables []*Member
	Functions []*Member
}

// Member is a variable or function declared in a [Contract].
type Member struct {
	Type, Name string

	// Function parameters; nil for variables.
	Params []Param
	// Function attributes such as const or noexcept, sorted and free of
	// duplicates.
	Attributes []string
	Body       Body

	// The initializer of a variable, or "" if there is none.
	Initializer string
}

// HasAttribute returns whether this member was declared with the given
// attribute.
func (m *Member) HasAttribute(attr string) bool {
	_, found := slices.BinarySearch(m.Attributes, attr)
	return found
}

// Body is the body of a [Member].
type Body struct {
	Kind BodyKind
	// Set only for BodyInline: the tokens between the braces, joined by
	// single spaces.
	Code string
}

// Param is one function parameter.
type Param struct {
	Type string
	// Empty for unnamed parameters.
	Name string
}

func (*Passthrough) isNode() {}
func (*Scope) isNode()       {}
func (*OpaqueType) isNode()  {}
func (*Alias) isNode()       {}
func (*Contract) isNode()    {}
