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
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what a run did to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUpdated              // File was rewritten
	StatusUnchanged            // File was visited but nothing was replaced
	StatusFailed               // Reading, transforming or writing failed
	StatusSkipped              // File was deliberately not processed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 Entry records the outcome for one file
type Entry struct {
	Path         string     // Path as shown to the user
	Status       FileStatus // Outcome
	Special      bool       // Whether this is the icon table file
	Replacements int        // Icons replaced
	Missing      []string   // Identifiers without a mapping, per occurrence
	Error        error      // Failure cause for StatusFailed
}

// 📈 Summary counts outcomes across a run
type Summary struct {
	Files        int
	Updated      int
	Unchanged    int
	Failed       int
	Skipped      int
	Replacements int
	Missing      int
}

// 🔧 Tracker collects per-file outcomes for the closing report
type Tracker struct {
	formatter FileFormatter

	mu      sync.Mutex
	entries []Entry
}

// 🏭 NewTracker creates a tracker using formatter for log lines
func NewTracker(formatter FileFormatter) *Tracker {
	return &Tracker{
		formatter: formatter,
	}
}

// Track records an outcome.
func (t *Tracker) Track(ctx context.Context, e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, e)

	msg := t.formatter.FormatFileOperation(e)
	if e.Error != nil {
		msg = t.formatter.FormatError(e.Error)
	}
	zerolog.Ctx(ctx).Debug().
		Str("path", e.Path).
		Str("status", e.Status.String()).
		Msg(msg)
}

// Entries returns every tracked outcome in order.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Entry(nil), t.entries...)
}

// Summary totals the tracked outcomes.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s Summary
	for _, e := range t.entries {
		s.Files++
		s.Replacements += e.Replacements
		s.Missing += len(e.Missing)
		switch e.Status {
		case StatusUpdated:
			s.Updated++
		case StatusUnchanged:
			s.Unchanged++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// FormatSummary renders the one-line summary with the tracker's formatter.
func (t *Tracker) FormatSummary() string {
	return t.formatter.FormatSummary(t.Summary())
}

// 🧾 Render draws a table of every tracked file
func (t *Tracker) Render() (string, error) {
	entries := t.Entries()
	if len(entries) == 0 {
		return "", nil
	}

	data := pterm.TableData{{"File", "Status", "Replaced", "Unmapped"}}
	for _, e := range entries {
		data = append(data, []string{
			e.Path,
			e.Status.String(),
			fmt.Sprintf("%d", e.Replacements),
			fmt.Sprintf("%d", len(e.Missing)),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary table: %w", err)
	}
	if color.NoColor {
		out = pterm.RemoveColorFromString(out)
	}
	return out, nil
}
