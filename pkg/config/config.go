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

// 🔌 Parser is the interface for project file parsers
type Parser interface {
	// 📝 Parse parses the project from bytes
	Parse(ctx context.Context, data []byte) (*Project, error)

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

// 📁 Folder is a project folder, optionally marked as one of the roots
type Folder struct {
	Path         string `json:"path" yaml:"path"`
	MagentoRoot  bool   `json:"magento_root,omitempty" yaml:"magento_root,omitempty"`
	MagentoTheme bool   `json:"magento_theme,omitempty" yaml:"magento_theme,omitempty"`
}

// ⚙️ Settings holds root paths set outside of the folder list
type Settings struct {
	MagentoRoot  string `json:"magento_root,omitempty" yaml:"magento_root,omitempty"`
	MagentoTheme string `json:"magento_theme,omitempty" yaml:"magento_theme,omitempty"`
}

// 🔧 CopyArgs represents file copy configuration
type CopyArgs struct {
	Extensions     []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`           // Source extensions offered for duplication
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"` // Glob patterns skipped in directory copies
}

// 📚 Project represents a magetools project file
type Project struct {
	Folders  []Folder  `json:"folders,omitempty" yaml:"folders,omitempty"`
	Settings *Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
	Copy     *CopyArgs `json:"copy,omitempty" yaml:"copy,omitempty"`

	location string
}

// Location returns the path the project was loaded from, if any.
func (p *Project) Location() string {
	return p.location
}

// Dir returns the directory relative folder paths resolve against.
func (p *Project) Dir() string {
	if p.location == "" {
		return ""
	}
	return filepath.Dir(p.location)
}

// Extensions returns the configured extensions, nil when unset.
func (p *Project) Extensions() []string {
	if p == nil || p.Copy == nil {
		return nil
	}
	return p.Copy.Extensions
}

// IgnorePatterns returns the configured ignore patterns.
func (p *Project) IgnorePatterns() []string {
	if p == nil || p.Copy == nil {
		return nil
	}
	return p.Copy.IgnorePatterns
}

// 🔍 Validate checks if the project is valid
func (p *Project) Validate() error {
	for i, f := range p.Folders {
		if f.Path == "" {
			return errors.Errorf("folders[%d].path is required", i)
		}
	}
	if p.Copy != nil {
		for i, ext := range p.Copy.Extensions {
			if len(ext) < 2 || ext[0] != '.' {
				return errors.Errorf("copy.extensions[%d]: %q must start with a dot", i, ext)
			}
		}
	}
	return nil
}

// 🎯 Load loads a project from a file
func Load(ctx context.Context, path string) (*Project, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading project")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading project file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	project, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing project: %w", err)
	}

	if err := project.Validate(); err != nil {
		return nil, errors.Errorf("validating project: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("getting absolute project path: %w", err)
	}
	project.location = abs

	return project, nil
}
