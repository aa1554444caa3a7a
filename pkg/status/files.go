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
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"gitlab.com/tozd/go/errors"
)

// 💾 Files performs the read and overwrite of migrated files
type Files struct {
	fs billy.Filesystem
}

// 🏭 NewFiles creates a file manager over fs
func NewFiles(fs billy.Filesystem) *Files {
	return &Files{fs: fs}
}

// ReadFile reads a whole file.
func (f *Files) ReadFile(ctx context.Context, path string) ([]byte, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile overwrites an existing file in place, keeping its permissions.
func (f *Files) WriteFile(ctx context.Context, path string, content []byte) (err error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("opening file for writing: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func (f *Files) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := f.fs.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}
