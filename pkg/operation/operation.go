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
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/walteh/iconshift/pkg/config"
	"github.com/walteh/iconshift/pkg/mapping"
	"github.com/walteh/iconshift/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by a runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Mapping is the icon table, read-only for the run
	Mapping *mapping.Table
	// FS is rooted at the directory being migrated
	FS billy.Filesystem
	// Root is the directory as the user gave it, used for display only
	Root string
	// Tracker collects per-file outcomes; one is created when nil
	Tracker *status.Tracker
}

// 🧱 BaseOperation carries the shared state of every operation
type BaseOperation struct {
	Options
	Files  *status.Files
	Logger *zerolog.Logger
}

// 🏭 NewBaseOperation fills the shared state from opts
func NewBaseOperation(ctx context.Context, opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Mapping == nil {
		return BaseOperation{}, errors.Errorf("mapping is required")
	}
	if opts.FS == nil {
		return BaseOperation{}, errors.Errorf("filesystem is required")
	}
	if opts.Tracker == nil {
		opts.Tracker = status.NewTracker(status.NewDefaultFileFormatter())
	}
	return BaseOperation{
		Options: opts,
		Files:   status.NewFiles(opts.FS),
		Logger:  zerolog.Ctx(ctx),
	}, nil
}
