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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrRootsNotConfigured  = errors.Base("magento root and theme root must both be configured")
	ErrPlatformRootMissing = errors.Base("magento root is not an existing directory")
	ErrNoProjectFile       = errors.Base("no project file found")
)

// ProjectFileNames are searched, in order, by Discover.
var ProjectFileNames = []string{
	".magetools.yaml",
	".magetools.yml",
	".magetools.hcl",
	".magetools.json",
}

// 🌳 Roots is the pair of directories a duplication works between
type Roots struct {
	Platform string // Magento root holding vendor/ and app/code/
	Theme    string // Theme override tree
}

// 🔍 Validate checks both roots are set and the platform root exists
func (r Roots) Validate() error {
	if r.Platform == "" || r.Theme == "" {
		return ErrRootsNotConfigured
	}
	info, err := os.Stat(r.Platform)
	if err != nil || !info.IsDir() {
		return errors.Errorf("%w: %s", ErrPlatformRootMissing, r.Platform)
	}
	return nil
}

// ResolveRoots picks the roots for one invocation. Non-empty overrides win,
// then folders marked in the project, then the project settings block.
func ResolveRoots(ctx context.Context, project *Project, overrides Roots) (Roots, error) {
	logger := zerolog.Ctx(ctx)

	roots := overrides
	if project != nil {
		if roots.Platform == "" {
			roots.Platform = project.markedFolder(func(f Folder) bool { return f.MagentoRoot })
		}
		if roots.Theme == "" {
			roots.Theme = project.markedFolder(func(f Folder) bool { return f.MagentoTheme })
		}
		if project.Settings != nil {
			if roots.Platform == "" {
				roots.Platform = project.resolve(project.Settings.MagentoRoot)
			}
			if roots.Theme == "" {
				roots.Theme = project.resolve(project.Settings.MagentoTheme)
			}
		}
	}

	for _, p := range []*string{&roots.Platform, &roots.Theme} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return Roots{}, errors.Errorf("getting absolute path for %s: %w", *p, err)
		}
		*p = abs
	}

	logger.Debug().Str("platform", roots.Platform).Str("theme", roots.Theme).Msg("resolved roots")
	return roots, nil
}

func (p *Project) markedFolder(marked func(Folder) bool) string {
	for _, f := range p.Folders {
		if marked(f) {
			return p.resolve(f.Path)
		}
	}
	return ""
}

func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.Dir() == "" {
		return path
	}
	return filepath.Join(p.Dir(), path)
}

// 🔎 Discover walks up from dir and returns the nearest project file.
func Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("getting absolute path: %w", err)
	}
	for {
		for _, name := range ProjectFileNames {
			candidate := filepath.Join(abs, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.Errorf("%w above %s", ErrNoProjectFile, dir)
		}
		abs = parent
	}
}
