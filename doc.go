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

// Package emphatic provides the entry point for parsing contract files:
// source text declaring concepts (contracts that a derived type must
// satisfy), namespaces, opaque classes and structs, and type aliases.
//
// Parsing a file happens in two steps:
//  1. Split the source text into tokens.
//     Also see: lexer.Tokenize
//  2. Build a syntax tree from the tokens.
//     Also see: parser.Parse
//
// This package does both, for any number of files, taking advantage of
// multiple CPU cores: files are independent of one another, so each one is
// parsed on its own goroutine while a single file's parse stays sequential.
//
// # Resolvers
//
// A [Resolver] is how the compiler locates its inputs. It answers a query for
// a path with either a reader over the source text or an already loaded
// [source.File]. [SourceResolver] loads files from the file system, searching
// a list of import paths.
//
// # Compiler
//
// A [Compiler] accepts a list of file names and produces one [ast.File] per
// name, in the same order. Only the Resolver field is required:
//
//	compiler := emphatic.Compiler{
//	    Resolver: &emphatic.SourceResolver{},
//	}
//
// By default the compiler fails fast at the first syntax error in any file.
// A [reporter.Reporter] that returns nil for each error lets the other files
// finish, so every file's first error is seen.
package emphatic
