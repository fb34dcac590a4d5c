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

// Package resolver maps Magento vendor sources onto their theme override
// location.
//
// A module source
//
//	vendor/<vendor>/module-<name>/view/<area>/<rest...>
//
// lands in <theme>/<Vendor>_<Name>/<rest...>, a theme package source
//
//	vendor/<vendor>/theme-<id>/<Module_Id>/<any>/<rest...>
//
// lands in <theme>/<Module_Id>/<rest...>.
package resolver

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrIneligible    = errors.Base("source is not eligible for duplication")
	ErrMalformedPath = errors.Base("source path has too few segments")
	ErrEmptyFilename = errors.Base("destination filename is empty")
	ErrEscapesDir    = errors.Base("destination filename leaves the override directory")
)

const (
	modulePrefix = "module-"
	themePrefix  = "theme-"

	// segments[5:] holds what follows the area, filename included
	restOffset = 5
)

// 🧭 glob patterns matched against the slash separated relative path
var (
	modulePattern = "vendor/*/" + modulePrefix + "*/view/**"
	themePattern  = "vendor/*/" + themePrefix + "*/**"
)

// Kind tells which vendor convention a source follows.
type Kind int

const (
	KindNone Kind = iota
	KindModule
	KindTheme
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindTheme:
		return "theme"
	default:
		return "none"
	}
}

// 📄 Source describes a file or directory relative to the platform root
type Source struct {
	Path      string   // Absolute source path
	Extension string   // Longest dotted suffix of the basename
	Segments  []string // Path segments relative to the platform root
	Base      string   // vendor, app/code or empty
}

// Filename returns the source basename.
func (s Source) Filename() string {
	return filepath.Base(s.Path)
}

// Kind classifies the source by its vendor convention.
func (s Source) Kind() Kind {
	if s.Base != "vendor" {
		return KindNone
	}
	rel := strings.Join(s.Segments, "/")
	if ok, _ := doublestar.Match(modulePattern, rel); ok {
		return KindModule
	}
	if ok, _ := doublestar.Match(themePattern, rel); ok {
		return KindTheme
	}
	return KindNone
}

// Describe builds a Source for path relative to platformRoot.
func Describe(path, platformRoot string) (Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Source{}, errors.Errorf("getting absolute source path: %w", err)
	}
	root, err := filepath.Abs(platformRoot)
	if err != nil {
		return Source{}, errors.Errorf("getting absolute platform root: %w", err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return Source{}, errors.Errorf("relating %s to %s: %w", abs, root, err)
	}

	src := Source{
		Path:      abs,
		Extension: Extension(abs),
		Segments:  strings.Split(rel, string(filepath.Separator)),
	}

	switch {
	case src.Segments[0] == "vendor":
		src.Base = "vendor"
	case len(src.Segments) > 1 && src.Segments[0] == "app" && src.Segments[1] == "code":
		src.Base = "app/code"
	}

	return src, nil
}

// Extension returns the longest dotted suffix of the basename of name.
// Leading dots belong to the name, so ".htaccess" has no extension.
func Extension(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[i:]
	}
	return ""
}

// 🎯 Resolver computes override destinations between two roots
type Resolver struct {
	PlatformRoot string
	ThemeRoot    string
	Extensions   []string
}

// New creates a resolver. A nil extension list means DefaultExtensions.
func New(platformRoot, themeRoot string, extensions []string) *Resolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Resolver{
		PlatformRoot: platformRoot,
		ThemeRoot:    themeRoot,
		Extensions:   extensions,
	}
}

// DefaultExtensions are the source extensions offered for duplication.
var DefaultExtensions = []string{".phtml", ".js", ".html", ".less", ".scss"}

// IsEligible reports whether source can be duplicated into the theme.
func (r *Resolver) IsEligible(source string) bool {
	src, err := Describe(source, r.PlatformRoot)
	if err != nil {
		return false
	}
	return r.eligible(src)
}

func (r *Resolver) eligible(src Source) bool {
	return slices.Contains(r.Extensions, src.Extension) && src.Kind() != KindNone
}

// IsEligible reports whether source under platformRoot can be duplicated
// using the default extension set.
func IsEligible(source, platformRoot string) bool {
	return New(platformRoot, "", nil).IsEligible(source)
}

// DestinationDir returns the override directory for source.
func (r *Resolver) DestinationDir(source string) (string, error) {
	src, err := Describe(source, r.PlatformRoot)
	if err != nil {
		return "", err
	}
	if !r.eligible(src) {
		return "", errors.Errorf("%w: %s", ErrIneligible, source)
	}
	if len(src.Segments) <= restOffset {
		return "", errors.Errorf("%w: %s", ErrMalformedPath, source)
	}

	var id string
	switch src.Kind() {
	case KindModule:
		id = ModuleID(src.Segments[1], src.Segments[2])
	case KindTheme:
		id = src.Segments[3]
	}

	rest := src.Segments[restOffset : len(src.Segments)-1]
	return filepath.Join(append([]string{r.ThemeRoot, id}, rest...)...), nil
}

// ResolveDestination returns the full destination for source saved as filename.
// The filename may name subdirectories but must stay inside the override
// directory.
func (r *Resolver) ResolveDestination(source, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", ErrEmptyFilename
	}
	if !filepath.IsLocal(filename) {
		return "", errors.Errorf("%w: %s", ErrEscapesDir, filename)
	}
	dir, err := r.DestinationDir(source)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// ModuleID turns a vendor directory and a module-<name> directory into the
// Vendor_Name identifier, e.g. acme + module-super-widget → Acme_SuperWidget.
func ModuleID(vendor, module string) string {
	name := strings.TrimPrefix(module, modulePrefix)
	name = Title(strings.ReplaceAll(name, "-", " "))
	return Title(vendor) + "_" + strings.ReplaceAll(name, " ", "")
}
