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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bufbuild/emphatic/internal/lexer"
)

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file, one per line",
		Long: `Print the tokens of a file, one per line, as

  <index>: <kind> : "<lexeme>"

Indices match the token numbers in parse errors. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, err := readFile(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			stream := lexer.Tokenize(path, text)
			a.log.Debug("tokenized", "file", path, "tokens", stream.Len())

			out := cmd.OutOrStdout()
			for i, tok := range stream.Tokens {
				if _, err := fmt.Fprintf(out, "%d: %v : \"%s\"\n", i, tok.Kind, tok.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
