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

// Package token provides the flat token stream produced by the lexer and the
// classifier predicates the parser uses to inspect it.
//
// A [Stream] is immutable once the lexer has built it. All predicates take a
// token index and tolerate out-of-range indices, answering as if the index
// named a token of no class and no text; this lets parsing code probe one
// token past the end of input without bounds checks.
package token

//go:generate go run github.com/bufbuild/emphatic/internal/enum kind.yaml
