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

// Package parser turns a token stream into an [ast.File].
//
// The grammar is small and deliberately restricted:
//
//	FILE      := { DECL }
//	DECL      := DIRECTIVE
//	           | "concept" ID ":" ID "{" { MEMBER } "}" ";"
//	           | ("class" | "struct") [ID] "{" CODE* "}" ";"
//	           | "namespace" [ID] "{" { DECL } "}"
//	           | "using" TYPE "=" CODE
//	MEMBER    := "using" TYPE "=" CODE
//	           | TYPE ID "(" PARAMS ")" { ID } ( "=" ("required" | "default") ";" | "{" CODE* "}" )
//	           | TYPE ID ( ";" | "=" CODE )
//	TYPE      := ["const"] NAME { "::" NAME } { "&" | "*" }
//	NAME      := ["typename"] ["template"] ID [ "<" CODE ">" ]
//	PARAMS    := [ TYPE [ID] { "," TYPE [ID] } ]
//
// CODE is any run of tokens with balanced brackets, ending at a top-level
// ";" or just before an unmatched closing bracket. Class and struct bodies,
// inline function bodies, alias targets, and initializers are all captured as
// CODE without further interpretation.
//
// Parsing is fail-fast: the first unmet expectation produces a
// [reporter.ParseError] naming the offending token, and no partial tree is
// returned.
package parser
