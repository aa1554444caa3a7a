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

package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLine(symbol, path, status, detail string) string {
	return fmt.Sprintf("%s %-35s %-15s %s", symbol, path, status, detail)
}

func TestLogger(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "src/pages/index.astro",
					Status:       "updated",
					IsModified:   true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				fileLine("⟳", "src/pages/index.astro", "updated", "2 replaced"),
			},
		},
		{
			name: "log_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:    "/tmp/site",
					Mapping: "fontawesome_to_lucide_mapping.json",
					Entries: 3,
				})
			},
			wantLogs: []string{
				"iconshift • migrating /tmp/site",
				"",
				"◆ fontawesome_to_lucide_mapping.json • write",
			},
		},
		{
			name: "log_dry_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRun(context.Background(), RunOperation{
					Root:     "/tmp/site",
					Mapping:  "map.json",
					IsDryRun: true,
				})
			},
			wantLogs: []string{
				"iconshift • migrating /tmp/site",
				"",
				"◆ map.json • dry-run",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_items",
			op: func(t *testing.T, logger *Logger) {
				logger.Item("src/a.astro")
				logger.Item("src/b.js")
			},
			wantLogs: []string{
				"- src/a.astro",
				"- src/b.js",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.InfoLevel)

	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "updated_file",
			op: FileOperation{
				Path:         "src/a.astro",
				Status:       "updated",
				IsModified:   true,
				Replacements: 3,
			},
			want: fileLine("⟳", "src/a.astro", "updated", "3 replaced"),
		},
		{
			name: "updated_with_unmapped",
			op: FileOperation{
				Path:         "src/a.astro",
				Status:       "updated",
				IsModified:   true,
				Replacements: 1,
				Missing:      2,
			},
			want: fileLine("⟳", "src/a.astro", "updated", "1 replaced, 2 unmapped"),
		},
		{
			name: "unmapped_only",
			op: FileOperation{
				Path:    "src/b.js",
				Status:  "unchanged",
				Missing: 1,
			},
			want: fileLine("!", "src/b.js", "unchanged", "0 replaced, 1 unmapped"),
		},
		{
			name: "failed_file",
			op: FileOperation{
				Path:     "src/c.js",
				Status:   "failed",
				IsFailed: true,
			},
			want: fileLine("✗", "src/c.js", "failed", "0 replaced"),
		},
		{
			name: "special_file",
			op: FileOperation{
				Path:       "src/components/StatsCard.astro",
				Status:     "updated",
				IsModified: true,
				IsSpecial:  true,
			},
			want: fileLine("⟳", "src/components/StatsCard.astro", "updated", "icon table"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			logger.LogFileOperation(context.Background(), tt.op)

			output := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.want, output, "formatted output should match")
		})
	}
}

func TestLoggerMirrorsAtDebug(t *testing.T) {
	tests := []struct {
		name      string
		level     zerolog.Level
		wantEmpty bool
	}{
		{name: "hidden_at_info", level: zerolog.InfoLevel, wantEmpty: true},
		{name: "shown_at_debug", level: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zbuf := &bytes.Buffer{}
			logger := NewWithZerolog(io.Discard, zerolog.New(zbuf).Level(tt.level))

			ctx := context.Background()
			logger.StartRun(ctx, RunOperation{Root: "site", Mapping: "map.json"})
			logger.Info("info message")
			logger.Warning("warning message")
			logger.Error("error message")
			logger.Success("success message")
			logger.LogFileOperation(ctx, FileOperation{Path: "src/a.astro", Status: "updated"})
			logger.EndRun(ctx, 3)

			if tt.wantEmpty {
				assert.Empty(t, zbuf.String(), "console lines should not reach zerolog above debug")
				return
			}
			for _, want := range []string{"info message", "warning message", "error message", "success message", "file operation", "starting migration"} {
				assert.Contains(t, zbuf.String(), want)
			}
		})
	}
}

func TestEndRunReportsFiles(t *testing.T) {
	zbuf := &bytes.Buffer{}
	logger := NewWithZerolog(io.Discard, zerolog.New(zbuf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	logger.EndRun(ctx, 5)
	assert.Empty(t, zbuf.String(), "ending without a run logs nothing")

	logger.StartRun(ctx, RunOperation{Root: "site", Mapping: "map.json"})
	zbuf.Reset()
	logger.EndRun(ctx, 3)

	assert.Contains(t, zbuf.String(), `"files":3`)
	assert.Contains(t, zbuf.String(), `"message":"migration complete"`)
	assert.Contains(t, zbuf.String(), `"root":"site"`)
}
