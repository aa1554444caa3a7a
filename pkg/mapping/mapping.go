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

// Package mapping loads the table that pairs Font Awesome icon identifiers
// with their Lucide component names.
package mapping

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔗 Entry pairs an old icon identifier with its replacement
type Entry struct {
	Old string // e.g. fa-user
	New string // e.g. User
}

// 🗺️ Table is a read-only icon mapping that remembers file order
type Table struct {
	entries []Entry
	index   map[string]int
}

// 🎯 LoadFile loads a mapping from a path on the local disk
func LoadFile(ctx context.Context, path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving mapping path: %w", err)
	}
	return Load(ctx, osfs.New(filepath.Dir(abs)), filepath.Base(abs))
}

// 🎯 Load reads and parses a mapping file from fs
func Load(ctx context.Context, fs billy.Basic, path string) (*Table, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading icon mapping")

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening mapping file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading mapping file: %w", err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("parsing mapping file %s: %w", path, err)
	}

	logger.Debug().Int("entries", table.Len()).Msg("icon mapping loaded")
	return table, nil
}

// 📝 Parse decodes a JSON object of string to string
func Parse(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Errorf("reading opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("expected a JSON object, got %v", tok)
	}

	t := &Table{index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Errorf("reading key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Errorf("expected a string key, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Errorf("reading value for %q: %w", key, err)
		}

		t.put(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Errorf("reading closing token: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after mapping object")
	}

	return t, nil
}

// New builds a table from entries, later duplicates overriding earlier ones.
func New(entries ...Entry) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		t.put(e.Old, e.New)
	}
	return t
}

func (t *Table) put(old, replacement string) {
	if i, ok := t.index[old]; ok {
		t.entries[i].New = replacement
		return
	}
	t.index[old] = len(t.entries)
	t.entries = append(t.entries, Entry{Old: old, New: replacement})
}

// 🔍 Lookup returns the replacement for an old identifier. An empty or null
// replacement counts as absent.
func (t *Table) Lookup(old string) (string, bool) {
	i, ok := t.index[old]
	if !ok || t.entries[i].New == "" {
		return "", false
	}
	return t.entries[i].New, true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// 📋 Entries returns a copy of every pair in file order
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// 📦 Components returns every distinct replacement identifier, sorted
func (t *Table) Components() []string {
	seen := make(map[string]struct{}, len(t.entries))
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if e.New == "" {
			continue
		}
		if _, ok := seen[e.New]; ok {
			continue
		}
		seen[e.New] = struct{}{}
		out = append(out, e.New)
	}
	sort.Strings(out)
	return out
}
