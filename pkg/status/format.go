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

package status

import (
	"fmt"
)

// FileFormatter defines how file outcomes and summaries are worded
type FileFormatter interface {
	// FormatFileOperation formats a file outcome message
	FormatFileOperation(e Entry) string

	// FormatSummary formats the totals of a run
	FormatSummary(s Summary) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFileOperation(e Entry) string {
	switch e.Status {
	case StatusUpdated:
		if e.Special {
			return fmt.Sprintf("📝 Rebuilt icon table in %s", e.Path)
		}
		return fmt.Sprintf("📝 Replaced %d icons in %s", e.Replacements, e.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", e.Path)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", e.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", e.Path)
	}
}

// FormatSummary formats run totals
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	return fmt.Sprintf("%d files: %d updated, %d unchanged, %d failed, %d skipped (%d icons replaced, %d unmapped)",
		s.Files, s.Updated, s.Unchanged, s.Failed, s.Skipped, s.Replacements, s.Missing)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
