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
	"bytes"
	"context"
	"path/filepath"

	"github.com/walteh/iconshift/pkg/log"
	"github.com/walteh/iconshift/pkg/scan"
	"github.com/walteh/iconshift/pkg/status"
	"github.com/walteh/iconshift/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔄 NewMigrateOperation creates the operation that migrates a whole tree
func NewMigrateOperation(ctx context.Context, opts Options) (Operation, error) {
	base, err := NewBaseOperation(ctx, opts)
	if err != nil {
		return nil, errors.Errorf("creating migrate operation: %w", err)
	}
	return &migrateOperation{
		BaseOperation: base,
		rewriter:      text.NewIconRewriter(opts.Mapping),
	}, nil
}

// 🔄 migrateOperation scans the tree and rewrites every file it finds
type migrateOperation struct {
	BaseOperation
	rewriter *text.IconRewriter
}

// 🏃 Execute runs the migration. Per-file failures are reported and
// tracked; only a failed scan or cancellation returns an error.
func (op *migrateOperation) Execute(ctx context.Context) error {
	console := log.FromContext(ctx)

	console.StartRun(ctx, log.RunOperation{
		Root:     op.Root,
		Mapping:  op.Config.Mapping,
		Entries:  op.Mapping.Len(),
		IsDryRun: op.Config.DryRun,
	})
	tracked := len(op.Tracker.Entries())
	defer func() {
		console.EndRun(ctx, len(op.Tracker.Entries())-tracked)
	}()

	console.Info("Finding files with Font Awesome icons...")
	files, err := op.scan(ctx)
	if err != nil {
		return errors.Errorf("scanning %s: %w", op.Root, err)
	}

	if len(files) == 0 {
		console.Info("No files with Font Awesome icons found.")
		return nil
	}

	console.Infof("Found %d files with Font Awesome icons:", len(files))
	for _, file := range files {
		console.Item(op.display(file))
	}

	console.LogNewline()
	console.Info("Replacing Font Awesome icons with Lucide icons...")

	special := op.specialPath()
	if special != "" {
		exists, err := op.Files.FileExists(ctx, special)
		if err != nil {
			op.Logger.Debug().Str("path", special).Err(err).Msg("checking special file")
		}
		if exists {
			console.Info("Updating StatsCard component...")
			op.updateSpecialFile(ctx, special)
		}
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("migration cancelled: %w", err)
		}
		if special != "" && filepath.Clean(file) == special {
			continue
		}
		op.rewriteFile(ctx, file)
	}

	console.LogNewline()
	console.Success("Font Awesome to Lucide conversion complete!")
	return nil
}

// 🔍 scan lists the files under the root that still carry old icon markup
func (op *migrateOperation) scan(ctx context.Context) ([]string, error) {
	scanner := scan.New(op.FS, scan.Options{
		ExcludeDirs:    op.Config.ExcludeDirs,
		Extensions:     op.Config.Extensions,
		Patterns:       op.Config.CompiledPatterns(),
		IgnorePatterns: op.Config.IgnorePatterns,
	})
	return scanner.Scan(ctx, ".")
}

// 📍 specialPath returns the icon table file, or "" when that step is off
func (op *migrateOperation) specialPath() string {
	sf := op.Config.SpecialFile
	if sf == nil || sf.Disabled {
		return ""
	}
	return filepath.Clean(sf.Path)
}

// 🏷️ display joins a root-relative path onto the root the user gave
func (op *migrateOperation) display(path string) string {
	if op.Root == "" {
		return path
	}
	return filepath.Join(op.Root, path)
}

// 📝 rewriteFile replaces icon markup in one file
func (op *migrateOperation) rewriteFile(ctx context.Context, path string) {
	console := log.FromContext(ctx)
	shown := op.display(path)

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		op.fail(ctx, shown, false, "Error processing %s: %v", err)
		return
	}

	result, err := op.rewriter.ReplaceText(ctx, bytes.NewReader(content))
	if err != nil {
		op.fail(ctx, shown, false, "Error processing %s: %v", err)
		return
	}

	for _, missing := range result.Missing {
		console.Warningf("No mapping found for %s in %s", missing, shown)
	}

	entry := status.Entry{
		Path:         shown,
		Status:       status.StatusUnchanged,
		Replacements: result.ReplacementCount,
		Missing:      result.Missing,
	}

	if !result.WasModified {
		op.Tracker.Track(ctx, entry)
		return
	}

	if err := op.commit(ctx, path, shown, false, result); err != nil {
		op.fail(ctx, shown, false, "Error processing %s: %v", err)
		return
	}

	entry.Status = status.StatusUpdated
	op.Tracker.Track(ctx, entry)
	if !op.Config.DryRun {
		console.Successf("Updated %s", shown)
	}
}

// 🧩 updateSpecialFile rebuilds the inline icon table of the special file
func (op *migrateOperation) updateSpecialFile(ctx context.Context, path string) {
	console := log.FromContext(ctx)
	shown := op.display(path)
	sf := op.Config.SpecialFile

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		op.fail(ctx, shown, true, "Error updating StatsCard in %s: %v", err)
		return
	}

	splicer := &text.TableSplicer{
		StartMarker: sf.StartMarker,
		EndMarker:   sf.EndMarker,
		ImportFrom:  sf.ImportFrom,
	}

	result, err := splicer.SpliceTable(ctx, bytes.NewReader(content), op.Mapping)
	if errors.Is(err, text.ErrStartMarkerNotFound) {
		console.Warningf("No icon mapping found in %s", shown)
		op.Tracker.Track(ctx, status.Entry{Path: shown, Status: status.StatusSkipped, Special: true})
		return
	}
	if err != nil {
		op.fail(ctx, shown, true, "Error updating StatsCard in %s: %v", err)
		return
	}

	if err := op.commit(ctx, path, shown, true, result); err != nil {
		op.fail(ctx, shown, true, "Error updating StatsCard in %s: %v", err)
		return
	}

	op.Tracker.Track(ctx, status.Entry{
		Path:         shown,
		Status:       status.StatusUpdated,
		Special:      true,
		Replacements: result.ReplacementCount,
	})
	if !op.Config.DryRun {
		console.Successf("Updated StatsCard component in %s", shown)
	}
}

// 💾 commit writes the rewritten content, or previews it in dry-run mode
func (op *migrateOperation) commit(ctx context.Context, path, shown string, special bool, result *text.ReplacementResult) error {
	if !op.Config.DryRun {
		return op.Files.WriteFile(ctx, path, result.ModifiedContent)
	}

	console := log.FromContext(ctx)
	console.LogFileOperation(ctx, log.FileOperation{
		Path:         shown,
		Status:       "would update",
		IsModified:   true,
		IsSpecial:    special,
		Replacements: result.ReplacementCount,
		Missing:      len(result.Missing),
	})
	console.Raw(RenderDiff(shown, string(result.OriginalContent), string(result.ModifiedContent)))
	return nil
}

// ❌ fail reports a per-file error and tracks the file as failed
func (op *migrateOperation) fail(ctx context.Context, shown string, special bool, format string, err error) {
	log.FromContext(ctx).Errorf(format, shown, err)
	op.Tracker.Track(ctx, status.Entry{
		Path:    shown,
		Status:  status.StatusFailed,
		Special: special,
		Error:   err,
	})
}
