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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/iconshift/pkg/mapping"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrStartMarkerNotFound = errors.Base("start marker not found")
	ErrEndMarkerNotFound   = errors.Base("end marker not found")
)

// 📦 TableSource provides what the generated icon table is built from
type TableSource interface {
	Components() []string
	Entries() []mapping.Entry
}

// 🧩 TableSplicer replaces an inline icon table with generated imports and a
// lookup function. The span ends at the first end marker after the start
// marker; nested braces in the table are not understood.
type TableSplicer struct {
	StartMarker string
	EndMarker   string
	ImportFrom  string
}

// SpliceTable swaps the marked span of content for the generated table.
func (s *TableSplicer) SpliceTable(ctx context.Context, content io.Reader, source TableSource) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	src := string(originalContent)

	start := strings.Index(src, s.StartMarker)
	if start == -1 {
		return nil, errors.WithStack(ErrStartMarkerNotFound)
	}

	rel := strings.Index(src[start:], s.EndMarker)
	if rel == -1 {
		return nil, errors.WithStack(ErrEndMarkerNotFound)
	}
	end := start + rel + len(s.EndMarker)

	zerolog.Ctx(ctx).Debug().
		Int("start", start).
		Int("end", end).
		Msg("splicing icon table")

	generated := RenderTable(source.Components(), source.Entries(), s.ImportFrom)

	return &ReplacementResult{
		WasModified:      true,
		ReplacementCount: 1,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(src[:start] + generated + src[end:]),
	}, nil
}

// RenderImports returns a multi-line named import of every component.
func RenderImports(components []string, importFrom string) string {
	return fmt.Sprintf("import {\n  %s\n} from '%s';", strings.Join(components, ",\n  "), importFrom)
}

// RenderTable returns the import statement followed by a getIconComponent
// function mapping old identifiers to component references.
func RenderTable(components []string, entries []mapping.Entry, importFrom string) string {
	pairs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.New == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%q: %s", e.Old, e.New))
	}

	var b strings.Builder
	b.WriteString("\n// Import Lucide icons directly\n")
	b.WriteString(RenderImports(components, importFrom))
	b.WriteString("\n\n// Function to get Lucide icon component by name\n")
	b.WriteString("function getIconComponent(iconName) {\n")
	b.WriteString("  const components = {\n")
	b.WriteString("    " + strings.Join(pairs, ", ") + "\n")
	b.WriteString("  };\n")
	b.WriteString("  \n")
	b.WriteString("  return components[iconName] || null;\n")
	b.WriteString("}\n")
	return b.String()
}
