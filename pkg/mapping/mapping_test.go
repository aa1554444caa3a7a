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

package mapping

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantErr     bool
		errContains string
		wantEntries []Entry
	}{
		{
			name:        "keeps_file_order",
			data:        `{"fa-user": "User", "fa-chart-bar": "BarChart", "fa-bell": "Bell"}`,
			wantEntries: []Entry{{"fa-user", "User"}, {"fa-chart-bar", "BarChart"}, {"fa-bell", "Bell"}},
		},
		{
			name:        "empty_object",
			data:        "{}",
			wantEntries: nil,
		},
		{
			name:        "duplicate_key_last_wins",
			data:        `{"fa-user": "User", "fa-bell": "Bell", "fa-user": "UserRound"}`,
			wantEntries: []Entry{{"fa-user", "UserRound"}, {"fa-bell", "Bell"}},
		},
		{
			name:        "top_level_array",
			data:        `["fa-user"]`,
			wantErr:     true,
			errContains: "expected a JSON object",
		},
		{
			name:        "number_value",
			data:        `{"fa-user": 1}`,
			wantErr:     true,
			errContains: "reading value for \"fa-user\"",
		},
		{
			name:        "truncated",
			data:        `{"fa-user": "User"`,
			wantErr:     true,
			errContains: "reading closing token",
		},
		{
			name:        "trailing_data",
			data:        `{"fa-user": "User"} {}`,
			wantErr:     true,
			errContains: "unexpected data",
		},
		{
			name:        "empty_input",
			data:        "",
			wantErr:     true,
			errContains: "reading opening token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEntries, table.Entries())
			assert.Equal(t, len(tt.wantEntries), table.Len())
		})
	}
}

func TestLookup(t *testing.T) {
	table := New(
		Entry{Old: "fa-user", New: "User"},
		Entry{Old: "fa-ghost", New: ""},
	)

	got, ok := table.Lookup("fa-user")
	assert.True(t, ok)
	assert.Equal(t, "User", got)

	_, ok = table.Lookup("fa-unknown-icon")
	assert.False(t, ok, "absent keys have no default")

	_, ok = table.Lookup("fa-ghost")
	assert.False(t, ok, "empty replacements count as absent")
}

func TestComponents(t *testing.T) {
	table := New(
		Entry{Old: "fa-user", New: "User"},
		Entry{Old: "fa-users", New: "Users"},
		Entry{Old: "fa-user-circle", New: "User"},
		Entry{Old: "fa-chart-bar", New: "BarChart"},
		Entry{Old: "fa-ghost", New: ""},
	)

	assert.Equal(t, []string{"BarChart", "User", "Users"}, table.Components())
}

func TestEntriesIsACopy(t *testing.T) {
	table := New(Entry{Old: "fa-user", New: "User"})
	entries := table.Entries()
	entries[0].New = "Changed"

	got, _ := table.Lookup("fa-user")
	assert.Equal(t, "User", got)
}

func TestLoad(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	t.Run("reads_from_filesystem", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "fontawesome_to_lucide_mapping.json", []byte(`{"fa-user": "User"}`), 0644))

		table, err := Load(ctx, fs, "fontawesome_to_lucide_mapping.json")
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(ctx, memfs.New(), "fontawesome_to_lucide_mapping.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening mapping file")
	})

	t.Run("malformed_file", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "map.json", []byte("{"), 0644))

		_, err := Load(ctx, fs, "map.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing mapping file map.json")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icons.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fa-bell": "Bell"}`), 0644))

	table, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	got, ok := table.Lookup("fa-bell")
	require.True(t, ok)
	assert.Equal(t, "Bell", got)
}
