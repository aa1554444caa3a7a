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

package scan

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options controls which files a Scanner considers
type Options struct {
	ExcludeDirs    []string         // Directory names pruned anywhere in the tree
	Extensions     []string         // Eligible file extensions, with the dot
	Patterns       []*regexp.Regexp // Any match marks a file as containing old icons
	IgnorePatterns []string         // Doublestar globs relative to the root
}

// 🔍 Scanner finds files that still carry old icon markup
type Scanner struct {
	fs   billy.Filesystem
	opts Options

	excluded map[string]struct{}
}

// 🏭 New creates a scanner over fs
func New(fs billy.Filesystem, opts Options) *Scanner {
	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		excluded[d] = struct{}{}
	}
	return &Scanner{
		fs:       fs,
		opts:     opts,
		excluded: excluded,
	}
}

// 🚶 Scan walks root and returns every eligible file matching a pattern, in
// walk order. Unreadable directories and files, and files that are not valid
// UTF-8, are skipped without error.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var found []string
	err := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if path != root && s.isExcludedDir(info.Name()) {
				logger.Debug().Str("dir", path).Msg("pruning excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !s.hasEligibleExtension(info.Name()) || !s.isRegularFile(path, info) {
			return nil
		}

		if s.isIgnored(root, path) {
			return nil
		}

		ok, err := s.containsOldIcons(path)
		if err != nil {
			logger.Debug().Str("file", path).Err(err).Msg("skipping unreadable file")
			return nil
		}
		if ok {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	return found, nil
}

func (s *Scanner) isExcludedDir(name string) bool {
	_, ok := s.excluded[name]
	return ok
}

// isRegularFile follows symlinks to files; symlinked directories are never descended.
func (s *Scanner) isRegularFile(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}
	target, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}

func (s *Scanner) hasEligibleExtension(name string) bool {
	for _, ext := range s.opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// 🙈 isIgnored checks the extra glob patterns against the root-relative path
func (s *Scanner) isIgnored(root, path string) bool {
	if len(s.opts.IgnorePatterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.opts.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// 📖 containsOldIcons reads a file fully and tests every pattern
func (s *Scanner) containsOldIcons(path string) (bool, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return false, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return false, errors.Errorf("reading file: %w", err)
	}

	if !utf8.Valid(content) {
		return false, errors.New("content is not valid UTF-8")
	}

	for _, re := range s.opts.Patterns {
		if re.Match(content) {
			return true, nil
		}
	}
	return false, nil
}
