// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔍 RenderDiff returns a line diff of before and after, headed by path.
// Only changed lines are shown; an empty string means no change.
func RenderDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	enc := newLineEncoder()
	a, b := enc.encode(before), enc.encode(after)

	var out strings.Builder
	out.WriteString("--- a/" + path + "\n")
	out.WriteString("+++ b/" + path + "\n")
	if enc.full {
		out.WriteString("(too many distinct lines to diff)\n")
		return out.String()
	}

	diffs := diffmatchpatch.New().DiffMainRunes(a, b, false)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, r := range d.Text {
			line := enc.lines[r]
			out.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}

// lineEncoder maps each distinct line to one rune so the diff runs per line.
// Runes skip the surrogate range, which does not survive conversion to string.
type lineEncoder struct {
	runes map[string]rune
	lines map[rune]string
	next  rune
	full  bool
}

func newLineEncoder() *lineEncoder {
	return &lineEncoder{
		runes: make(map[string]rune),
		lines: make(map[rune]string),
		next:  1,
	}
}

func (e *lineEncoder) encode(text string) []rune {
	var out []rune
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		r, ok := e.runes[line]
		if !ok {
			if e.next > unicode.MaxRune {
				e.full = true
				return nil
			}
			r = e.next
			e.runes[line] = r
			e.lines[r] = line
			e.next++
			if e.next == 0xD800 {
				e.next = 0xE000
			}
		}
		out = append(out, r)
	}
	return out
}
