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

package report

import "github.com/charmbracelet/lipgloss"

type styleSheet struct {
	level, message, accent, summary lipgloss.Style
}

func newStyleSheet(r Renderer) styleSheet {
	if !r.Colorize {
		plain := lipgloss.NewStyle()
		return styleSheet{plain, plain, plain, plain}
	}

	return styleSheet{
		// Red.
		level: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		// Bright white.
		message: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		// Blue. Used for "accents" such as line numbers and the gutter, to
		// clearly separate them from the source code.
		accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		// Red, for the closing error count.
		summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}
