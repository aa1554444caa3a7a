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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes each operation in order, stopping at the first error
func (r *OperationRunner) Run(ctx context.Context, ops ...Operation) error {
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}

		start := time.Now()
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("executing operation %d: %w", i, err)
		}
		r.logger.Debug().Int("operation", i).Dur("took", time.Since(start)).Msg("operation complete")
	}
	return nil
}
