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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Defaults used when a field is left empty.
const (
	DefaultMapping     = "fontawesome_to_lucide_mapping.json"
	DefaultSpecialPath = "src/components/StatsCard.astro"
	DefaultStartMarker = "const iconMap = {"
	DefaultEndMarker   = "};"
	DefaultImportFrom  = "@lucide/astro"
)

var (
	DefaultExtensions  = []string{".astro", ".js"}
	DefaultExcludeDirs = []string{"node_modules", ".git", ".astro", "dist"}
	DefaultPatterns    = []string{`fas fa-`, `far fa-`, `fa fa-`}
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🧩 SpecialFile describes the one file whose inline icon table is replaced wholesale
type SpecialFile struct {
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`                 // Path relative to the scan root
	StartMarker string `json:"start_marker,omitempty" yaml:"start_marker,omitempty"` // Text opening the inline table
	EndMarker   string `json:"end_marker,omitempty" yaml:"end_marker,omitempty"`     // First text after the start closing it
	ImportFrom  string `json:"import_from,omitempty" yaml:"import_from,omitempty"`   // Module the generated import reads from
	Disabled    bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`         // Skip the special file step entirely
}

// 📚 Config represents a complete migration run configuration
type Config struct {
	Mapping        string       `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Extensions     []string     `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	ExcludeDirs    []string     `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty"`
	Patterns       []string     `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	IgnorePatterns []string     `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
	SpecialFile    *SpecialFile `json:"special_file,omitempty" yaml:"special_file,omitempty"`
	DryRun         bool         `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	compiled []*regexp.Regexp
}

// 🏭 Default returns the configuration the tool runs with when no file is given
func Default() *Config {
	cfg := &Config{}
	// defaults never fail validation
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file, or the defaults when path is empty
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills defaults and checks that every pattern is usable
func (cfg *Config) Validate() error {
	if cfg.Mapping == "" {
		cfg.Mapping = DefaultMapping
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if len(cfg.ExcludeDirs) == 0 {
		cfg.ExcludeDirs = append([]string(nil), DefaultExcludeDirs...)
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = append([]string(nil), DefaultPatterns...)
	}
	if cfg.SpecialFile == nil {
		cfg.SpecialFile = &SpecialFile{}
	}

	sf := cfg.SpecialFile
	if sf.Path == "" {
		sf.Path = DefaultSpecialPath
	}
	if sf.StartMarker == "" {
		sf.StartMarker = DefaultStartMarker
	}
	if sf.EndMarker == "" {
		sf.EndMarker = DefaultEndMarker
	}
	if sf.ImportFrom == "" {
		sf.ImportFrom = DefaultImportFrom
	}
	sf.Path = filepath.Clean(sf.Path)
	if filepath.IsAbs(sf.Path) {
		return errors.Errorf("special_file.path must be relative to the root: %s", sf.Path)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("extension %d: %q must start with a dot", i, ext)
		}
	}

	for i, dir := range cfg.ExcludeDirs {
		if dir == "" || strings.ContainsRune(dir, '/') {
			return errors.Errorf("exclude_dirs %d: %q must be a bare directory name", i, dir)
		}
	}

	for i, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore_patterns %d: invalid glob %q", i, pattern)
		}
	}

	cfg.compiled = cfg.compiled[:0]
	for i, pattern := range cfg.Patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return errors.Errorf("patterns %d: compiling %q: %w", i, pattern, err)
		}
		cfg.compiled = append(cfg.compiled, re)
	}

	return nil
}

// 🔎 CompiledPatterns returns the detection patterns compiled by Validate
func (cfg *Config) CompiledPatterns() []*regexp.Regexp {
	return cfg.compiled
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s [%s] -%s", cfg.Mapping, strings.Join(cfg.Extensions, ","), strings.Join(cfg.ExcludeDirs, ",-"))
}
