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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		errContains string
		check       func(t *testing.T, p *Project)
	}{
		{
			name:     "yaml_project",
			filename: ".magetools.yaml",
			content: `
folders:
  - path: .
    magento_root: true
  - path: app/design/frontend/Acme/default
    magento_theme: true
copy:
  extensions: [".phtml", ".xml"]
  ignore_patterns:
    - "**/.DS_Store"
`,
			check: func(t *testing.T, p *Project) {
				require.Len(t, p.Folders, 2, "should have 2 folders")
				assert.True(t, p.Folders[0].MagentoRoot, "first folder should be the root")
				assert.True(t, p.Folders[1].MagentoTheme, "second folder should be the theme")
				assert.Equal(t, []string{".phtml", ".xml"}, p.Extensions(), "extensions should match")
				assert.Equal(t, []string{"**/.DS_Store"}, p.IgnorePatterns(), "ignore patterns should match")
			},
		},
		{
			name:     "hcl_project",
			filename: ".magetools.hcl",
			content: `
folder {
  path         = "magento"
  magento_root = true
}

settings {
  magento_theme = "/srv/theme"
}
`,
			check: func(t *testing.T, p *Project) {
				require.Len(t, p.Folders, 1, "should have 1 folder")
				assert.Equal(t, "magento", p.Folders[0].Path, "folder path should match")
				require.NotNil(t, p.Settings, "settings should be set")
				assert.Equal(t, "/srv/theme", p.Settings.MagentoTheme, "theme setting should match")
				assert.Nil(t, p.Extensions(), "extensions should be unset")
			},
		},
		{
			name:     "json_project",
			filename: ".magetools.json",
			content:  `{"settings": {"magento_root": "/srv/magento", "magento_theme": "/srv/theme"}}`,
			check: func(t *testing.T, p *Project) {
				require.NotNil(t, p.Settings, "settings should be set")
				assert.Equal(t, "/srv/magento", p.Settings.MagentoRoot, "root setting should match")
				assert.Nil(t, p.IgnorePatterns(), "ignore patterns should be empty")
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    ".magetools.yaml",
			content:     "destination: /tmp\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    ".magetools.json",
			content:     `{"destination": "/tmp"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "folder_without_path",
			filename:    ".magetools.yaml",
			content:     "folders:\n  - magento_root: true\n",
			errContains: "folders[0].path is required",
		},
		{
			name:        "extension_without_dot",
			filename:    ".magetools.yaml",
			content:     "copy:\n  extensions: [phtml]\n",
			errContains: "must start with a dot",
		},
		{
			name:        "unsupported_format",
			filename:    ".magetools.toml",
			content:     "",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			p, err := Load(testContext(t), path)
			if tt.errContains != "" {
				require.Error(t, err, "loading should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should match")
				return
			}
			require.NoError(t, err, "loading should succeed")
			assert.Equal(t, path, p.Location(), "location should be recorded")
			tt.check(t, p)
		})
	}
}

func TestResolveRoots(t *testing.T) {
	dir := t.TempDir()
	ctx := testContext(t)

	project := &Project{
		Folders: []Folder{
			{Path: "magento", MagentoRoot: true},
			{Path: "theme", MagentoTheme: true},
		},
		Settings: &Settings{MagentoRoot: "/ignored/root", MagentoTheme: "/ignored/theme"},
		location: filepath.Join(dir, ".magetools.yaml"),
	}

	tests := []struct {
		name      string
		project   *Project
		overrides Roots
		want      Roots
	}{
		{
			name:    "marked_folders_resolve_against_project_dir",
			project: project,
			want:    Roots{Platform: filepath.Join(dir, "magento"), Theme: filepath.Join(dir, "theme")},
		},
		{
			name:      "overrides_win",
			project:   project,
			overrides: Roots{Theme: "/custom/theme"},
			want:      Roots{Platform: filepath.Join(dir, "magento"), Theme: "/custom/theme"},
		},
		{
			name: "settings_fallback",
			project: &Project{
				Settings: &Settings{MagentoRoot: "/srv/magento", MagentoTheme: "theme"},
				location: filepath.Join(dir, ".magetools.yaml"),
			},
			want: Roots{Platform: "/srv/magento", Theme: filepath.Join(dir, "theme")},
		},
		{
			name:      "no_project",
			overrides: Roots{Platform: "/a", Theme: "/b"},
			want:      Roots{Platform: "/a", Theme: "/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRoots(ctx, tt.project, tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "roots should match")
		})
	}
}

func TestRootsValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, errors.Is(Roots{Platform: dir}.Validate(), ErrRootsNotConfigured), "missing theme should not be configured")
	assert.True(t, errors.Is(Roots{Platform: filepath.Join(dir, "missing"), Theme: dir}.Validate(), ErrPlatformRootMissing), "missing root should fail")
	assert.True(t, errors.Is(Roots{Platform: file, Theme: dir}.Validate(), ErrPlatformRootMissing), "file root should fail")
	assert.NoError(t, Roots{Platform: dir, Theme: filepath.Join(dir, "not-yet")}.Validate(), "theme root may not exist yet")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "vendor", "acme", "module-foo")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, err := Discover(nested)
	if err == nil {
		t.Skip("a project file exists above the temp dir")
	}
	assert.True(t, errors.Is(err, ErrNoProjectFile), "should report missing project file")

	path := filepath.Join(dir, ".magetools.hcl")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, path, got, "should find the nearest project file")
}
