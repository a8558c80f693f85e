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

var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// scanCode advances c past the next balanced run of code and returns its
// lexemes joined as by [token.Stream.Join].
//
// Scanning stops:
//   - after a ';' with no brackets open, unless multiLine is set. The ';' is
//     consumed but not included in the result.
//   - before a closing bracket with no matching open bracket. That bracket is
//     left for the caller to consume.
//   - at the end of input.
//
// '<' and '>' only count as brackets if matchAngle is set; otherwise they are
// ordinary symbols, as in comparisons.
func (p *parser) scanCode(c *Cursor, matchAngle, multiLine bool) (string, error) {
	start := c.Index()
	end := -1
	var open []byte

scan:
	for !c.Done() {
		ch := c.Char()
		c.Advance()

		switch ch {
		case ';':
			if !multiLine && len(open) == 0 {
				end = c.Index() - 1
				break scan
			}
		case '<':
			if matchAngle {
				open = append(open, ch)
			}
		case '(', '[', '{':
			open = append(open, ch)
		case '>':
			if !matchAngle {
				break
			}
			fallthrough
		case ')', ']', '}':
			if len(open) == 0 {
				c.Back()
				break scan
			}
			top := open[len(open)-1]
			if p.opts.StrictBrackets && closers[top] != ch {
				return "", p.errorf(c.Index()-1, "'%c' does not close '%c'", ch, top)
			}
			open = open[:len(open)-1]
		}
	}

	if end < 0 {
		end = c.Index()
	}
	code := p.stream.Join(start, end)
	p.log.Debug("scanned code",
		"start", start, "end", end,
		"angle", matchAngle, "multiline", multiLine,
		"code", code)
	return code, nil
}
