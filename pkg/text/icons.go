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

package text

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// iconPattern matches <i class="fas fa-name extra classes" ...>...</i> on one line.
var iconPattern = regexp.MustCompile(`<i\s+class="(fas|far|fa)\s+fa-([a-z0-9-]+)(?:\s+([^"]+))?".*?</i>`)

// 🎯 Match is one occurrence of old icon markup
type Match struct {
	Start  int    // Byte offset of the opening <i
	End    int    // Byte offset just past the closing </i>
	Prefix string // fas, far or fa
	Name   string // Identifier without the fa- prefix
	Extra  string // Trailing classes, untrimmed, possibly empty
}

// Identifier returns the mapping key for the match.
func (m Match) Identifier() string {
	return "fa-" + m.Name
}

// FindMatches returns every old icon occurrence in content, in order.
func FindMatches(content string) []Match {
	locs := iconPattern.FindAllStringSubmatchIndex(content, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		m := Match{
			Start:  loc[0],
			End:    loc[1],
			Prefix: content[loc[2]:loc[3]],
			Name:   content[loc[4]:loc[5]],
		}
		if loc[6] >= 0 {
			m.Extra = content[loc[6]:loc[7]]
		}
		matches = append(matches, m)
	}
	return matches
}

// RenderComponent returns the self-closing component markup for a replacement.
func RenderComponent(component, extra string) string {
	return fmt.Sprintf(`<%s class="%s" />`, component, strings.TrimSpace(extra))
}

// 🔄 IconRewriter replaces old icon markup with component markup
type IconRewriter struct {
	mapper Mapper
}

// 🏭 NewIconRewriter creates a rewriter backed by mapper
func NewIconRewriter(mapper Mapper) *IconRewriter {
	return &IconRewriter{mapper: mapper}
}

// ReplaceText rewrites every mapped occurrence in content. Unmapped
// occurrences are left byte-identical and listed in Missing.
func (r *IconRewriter) ReplaceText(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	src := string(originalContent)
	matches := FindMatches(src)
	if len(matches) == 0 {
		return result, nil
	}

	logger := zerolog.Ctx(ctx)

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m.Start])
		last = m.End

		component, ok := r.mapper.Lookup(m.Identifier())
		if !ok {
			result.Missing = append(result.Missing, m.Identifier())
			b.WriteString(src[m.Start:m.End])
			continue
		}

		logger.Debug().Str("icon", m.Identifier()).Str("component", component).Msg("replacing icon")
		b.WriteString(RenderComponent(component, m.Extra))
		result.ReplacementCount++
	}
	b.WriteString(src[last:])

	if result.ReplacementCount > 0 {
		result.WasModified = true
		result.ModifiedContent = []byte(b.String())
	}

	return result, nil
}
