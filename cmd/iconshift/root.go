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

package main

import (
	"context"
	"io"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/iconshift/pkg/config"
	"github.com/walteh/iconshift/pkg/log"
	"github.com/walteh/iconshift/pkg/mapping"
	"github.com/walteh/iconshift/pkg/operation"
	"github.com/walteh/iconshift/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the values bound to the root command's flags
type rootFlags struct {
	mapping    string
	configFile string
	dryRun     bool
	debug      bool
}

// newRootCmd creates the iconshift command
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	version := readBuildVersion()

	cmd := &cobra.Command{
		Use:   "iconshift <root>",
		Short: "Replace Font Awesome icons with Lucide components",
		Long: `iconshift walks a source tree and rewrites Font Awesome icon markup
(<i class="fas fa-user"></i>) into Lucide components (<User class="" />),
using a JSON file that maps each fa-* identifier to a component name.

The icon table in src/components/StatsCard.astro is replaced with Lucide
imports and a getIconComponent function.`,
		Args:    cobra.ExactArgs(1),
		Version: version.module,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return run(cmd.Context(), cmd, flags, args[0])
		},
	}
	cmd.SetVersionTemplate(formatVersion(version))

	addRootFlags(cmd, flags)
	return cmd
}

// addRootFlags binds the root command's flags to flags
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.mapping, "mapping", "m", config.DefaultMapping, "icon mapping file")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "run config file (.json, .yaml or .hcl)")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "show changes without writing them")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging returns the zerolog logger for the run
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// run loads the config and mapping, then migrates root
func run(ctx context.Context, cmd *cobra.Command, flags *rootFlags, root string) error {
	zlog := setupLogging(cmd.ErrOrStderr(), flags.debug)
	console := log.NewWithZerolog(cmd.OutOrStdout(), zlog)
	ctx = log.NewContext(zlog.WithContext(ctx), console)

	cfg, err := config.Load(ctx, flags.configFile)
	if err != nil {
		console.Errorf("loading config: %v", err)
		return errors.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("mapping") {
		cfg.Mapping = flags.mapping
	}
	if flags.dryRun {
		cfg.DryRun = true
	}
	zlog.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	table, err := mapping.LoadFile(ctx, cfg.Mapping)
	if err != nil {
		console.Errorf("loading mapping: %v", err)
		return errors.Errorf("loading mapping: %w", err)
	}

	tracker := status.NewTracker(status.NewDefaultFileFormatter())
	op, err := operation.NewMigrateOperation(ctx, operation.Options{
		Config:  cfg,
		Mapping: table,
		FS:      osfs.New(root),
		Root:    root,
		Tracker: tracker,
	})
	if err != nil {
		console.Errorf("creating migration: %v", err)
		return errors.Errorf("creating migration: %w", err)
	}

	if err := operation.NewRunner(&zlog).Run(ctx, op); err != nil {
		console.Errorf("migrating %s: %v", root, err)
		return errors.Errorf("migrating %s: %w", root, err)
	}

	return printSummary(console, tracker)
}

// printSummary writes the totals and the per-file table of a finished run
func printSummary(console *log.Logger, tracker *status.Tracker) error {
	if len(tracker.Entries()) == 0 {
		return nil
	}

	rendered, err := tracker.Render()
	if err != nil {
		console.Errorf("rendering summary: %v", err)
		return errors.Errorf("rendering summary: %w", err)
	}

	console.LogNewline()
	console.Info(tracker.FormatSummary())
	console.Raw(rendered + "\n")
	return nil
}
