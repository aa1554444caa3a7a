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
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{
		ExcludeDirs: []string{"node_modules", ".git", ".astro", "dist"},
		Extensions:  []string{".astro", ".js"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`fas fa-`),
			regexp.MustCompile(`far fa-`),
			regexp.MustCompile(`fa fa-`),
		},
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestScan(t *testing.T) {
	const icon = `<i class="fas fa-user"></i>`

	tests := []struct {
		name  string
		files map[string]string
		opts  func(o *Options)
		want  []string
	}{
		{
			name: "finds_each_pattern",
			files: map[string]string{
				"a.astro":          icon,
				"b.js":             `const c = "far fa-bell";`,
				"c.astro":          `<span class="fa fa-home"></span>`,
				"d.astro":          `<Home />`,
				"src/pages/e.js":   icon,
				"src/pages/f.html": icon,
			},
			want: []string{"a.astro", "b.js", "c.astro", "src/pages/e.js"},
		},
		{
			name: "prunes_excluded_dirs_anywhere",
			files: map[string]string{
				"node_modules/foo.js":           icon,
				"packages/ui/node_modules/x.js": icon,
				".git/hooks/pre-commit.js":      icon,
				"dist/index.js":                 icon,
				".astro/types.astro":            icon,
				"packages/ui/Button.astro":      icon,
			},
			want: []string{"packages/ui/Button.astro"},
		},
		{
			name: "only_node_modules",
			files: map[string]string{
				"node_modules/foo.js": icon,
			},
			want: nil,
		},
		{
			name: "excluded_name_as_file_is_kept",
			files: map[string]string{
				"dist.js": icon,
			},
			want: []string{"dist.js"},
		},
		{
			name: "skips_invalid_utf8",
			files: map[string]string{
				"bin.js":  "fas fa-user \xff\xfe",
				"text.js": "fas fa-user",
			},
			want: []string{"text.js"},
		},
		{
			name: "extra_ignore_globs",
			files: map[string]string{
				"public/vendor.min.js": icon,
				"src/app.js":           icon,
			},
			opts: func(o *Options) {
				o.IgnorePatterns = []string{"**/*.min.js"}
			},
			want: []string{"src/app.js"},
		},
		{
			name: "custom_extensions",
			files: map[string]string{
				"a.vue":   icon,
				"b.astro": icon,
			},
			opts: func(o *Options) {
				o.Extensions = []string{".vue"}
			},
			want: []string{"a.vue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, tt.files)
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

			opts := defaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			got, err := New(osfs.New(root), opts).Scan(ctx, ".")
			require.NoError(t, err)

			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.FromSlash(w))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestScanReportsEachFileOnce(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.astro": `<i class="fas fa-user"></i><i class="far fa-bell"></i><i class="fa fa-home"></i>`,
	})

	got, err := New(osfs.New(root), defaultOptions()).Scan(context.Background(), ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.astro"}, got)
}

func TestScanSubdirectoryRoot(t *testing.T) {
	root := writeTree(t, map[string]string{
		"site/src/a.astro": `fas fa-user`,
		"other/b.astro":    `fas fa-user`,
	})

	got, err := New(osfs.New(root), defaultOptions()).Scan(context.Background(), "site")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("site", "src", "a.astro")}, got)
}

func TestScanMissingRoot(t *testing.T) {
	got, err := New(osfs.New(t.TempDir()), defaultOptions()).Scan(context.Background(), "does-not-exist")
	require.NoError(t, err, "a missing root is treated as an empty tree")
	assert.Empty(t, got)
}

func TestScanCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.astro": "fas fa-user"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(osfs.New(root), defaultOptions()).Scan(ctx, ".")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
