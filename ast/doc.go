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

// Package ast defines the syntax tree produced by parsing contract files.
//
// The tree is a closed set of node types implementing [Node]; only the types
// in this package implement it. Every node owns its children by value or by
// a single pointer, and children appear in the order they were declared in
// the source, which renderers rely on. Nodes are never modified after the
// parser finishes the construct they describe.
//
// Optional names are represented by the empty string.
package ast

//go:generate go run github.com/bufbuild/emphatic/internal/enum kinds.yaml
