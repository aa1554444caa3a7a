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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 15 // Width for status text
)

// 🎯 FileOperation represents the outcome of rewriting one file
type FileOperation struct {
	Path         string // File path
	Status       string // Operation status
	IsModified   bool   // Whether the file was rewritten
	IsFailed     bool   // Whether reading or writing failed
	IsSpecial    bool   // Whether this is the special icon table file
	Replacements int    // Number of icons replaced
	Missing      int    // Number of icons left without a mapping
}

// 📦 RunOperation describes a migration run for logging
type RunOperation struct {
	Root     string // Directory being migrated
	Mapping  string // Mapping file path
	Entries  int    // Number of mapping entries
	IsDryRun bool   // Whether writes are suppressed
}

// 🎯 Logger handles console output. Every console line is mirrored into
// zerolog at debug level.
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger that mirrors into an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case op.Missing > 0:
		symbol = '!'
		symbolColor = color.FgYellow
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	detail := fmt.Sprintf("%d replaced", op.Replacements)
	if op.Missing > 0 {
		detail += fmt.Sprintf(", %d unmapped", op.Missing)
	}
	if op.IsSpecial {
		detail = "icon table"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		color.New(color.Faint).Sprint(detail))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Debug().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_failed", op.IsFailed).
		Bool("is_special", op.IsSpecial).
		Int("replacements", op.Replacements).
		Int("missing", op.Missing).
		Msg("file operation")
}

// 📝 StartRun starts a new migration run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op

	mode := "write"
	if op.IsDryRun {
		mode = "dry-run"
	}

	l.writeHeader("migrating " + op.Root)

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Mapping),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(mode))

	l.zlog.Debug().
		Str("root", op.Root).
		Str("mapping", op.Mapping).
		Int("entries", op.Entries).
		Bool("dry_run", op.IsDryRun).
		Msg("starting migration")
}

// 📝 EndRun ends the current migration run; files is the number of files
// the run processed
func (l *Logger) EndRun(ctx context.Context, files int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	l.zlog.Debug().
		Str("root", l.currentRun.Root).
		Int("files", files).
		Msg("migration complete")

	l.currentRun = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// writeHeader prints the run banner; callers hold l.mu
func (l *Logger) writeHeader(msg string) {
	name := color.New(color.Bold, color.FgCyan).Sprint("iconshift")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
}

// 📝 Item logs a list entry under the previous message
func (l *Logger) Item(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "  - %s\n", msg)
	l.zlog.Debug().Msg(msg)
}

// 📝 Raw writes preformatted text to the console only
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
