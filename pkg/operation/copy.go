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

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	copier "github.com/otiai10/copy"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrDestinationExists       = errors.Base("destination already exists")
	ErrSameFile                = errors.Base("source and destination are the same file")
	ErrDestinationInsideSource = errors.Base("destination is inside the source directory")
)

// 📦 Copier copies a file or a directory tree onto a destination path
type Copier struct {
	// IgnorePatterns are doublestar globs, relative to the copied directory,
	// skipped during tree copies.
	IgnorePatterns []string
}

// 🏭 NewCopier creates a new copier
func NewCopier(ignorePatterns []string) *Copier {
	return &Copier{IgnorePatterns: ignorePatterns}
}

// 🏃 Copy copies source to destination, creating missing parent directories.
//
// A directory source is copied recursively and fails with
// ErrDestinationExists when destination is already there. A file source
// overwrites destination, or lands inside it under its own name when
// destination is an existing directory. Copying a file onto itself, even
// through a symlink, fails with ErrSameFile. Permissions and modification
// times are kept.
func (c *Copier) Copy(ctx context.Context, source, destination string) error {
	logger := zerolog.Ctx(ctx)

	resolved, err := filepath.EvalSymlinks(source)
	if err != nil {
		return errors.Errorf("reading source: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return errors.Errorf("reading source: %w", err)
	}

	if err := MakeParentDirs(destination); err != nil {
		return err
	}

	if info.IsDir() {
		logger.Debug().Str("source", resolved).Str("destination", destination).Msg("copying tree")
		return c.copyTree(ctx, resolved, destination)
	}

	if dstInfo, err := os.Stat(destination); err == nil && dstInfo.IsDir() {
		destination = filepath.Join(destination, filepath.Base(source))
	}

	// the copy truncates destination before reading source
	if dstInfo, err := os.Stat(destination); err == nil && os.SameFile(info, dstInfo) {
		return errors.Errorf("%w: %s", ErrSameFile, destination)
	}

	logger.Debug().Str("source", resolved).Str("destination", destination).Msg("copying file")
	if err := copier.Copy(resolved, destination, copier.Options{PreserveTimes: true}); err != nil {
		return errors.Errorf("copying file: %w", err)
	}
	return nil
}

// MakeParentDirs creates every missing parent of path. Existing
// directories, including ones created concurrently, are not an error.
func MakeParentDirs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}
	return nil
}

// 🌳 copyTree recursively copies a directory that must not exist yet
func (c *Copier) copyTree(ctx context.Context, source, destination string) error {
	if _, err := os.Lstat(destination); err == nil {
		return errors.Errorf("%w: %s", ErrDestinationExists, destination)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("checking destination: %w", err)
	}

	parent, err := filepath.EvalSymlinks(filepath.Dir(destination))
	if err != nil {
		return errors.Errorf("checking destination: %w", err)
	}
	if rel, err := filepath.Rel(source, filepath.Join(parent, filepath.Base(destination))); err == nil && filepath.IsLocal(rel) {
		return errors.Errorf("%w: %s", ErrDestinationInsideSource, destination)
	}

	w := &treeWalk{
		ctx:    ctx,
		copier: c,
		root:   destination,
		dirs:   map[string]string{destination: source},
	}

	err = copier.Copy(source, destination, copier.Options{
		PreserveTimes: true,
		OnSymlink:     func(string) copier.SymlinkAction { return copier.Deep },
		Skip:          w.skip,
	})
	if err != nil {
		return errors.Errorf("copying tree: %w", err)
	}
	return nil
}

// 🚶 treeWalk carries the state of one tree copy. dirs maps every created
// destination directory to the real source directory it was copied from.
type treeWalk struct {
	ctx    context.Context
	copier *Copier
	root   string
	dirs   map[string]string
}

// skip drops ignored entries and directory links that lead back into a
// directory already being copied above them.
func (w *treeWalk) skip(_ os.FileInfo, src, dest string) (bool, error) {
	rel, err := filepath.Rel(w.root, dest)
	if err != nil {
		return false, errors.Errorf("relating %s: %w", dest, err)
	}
	if w.copier.shouldIgnore(w.ctx, filepath.ToSlash(rel)) {
		return true, nil
	}

	// unresolvable entries are left for the copy to report
	targetPath, err := filepath.EvalSymlinks(src)
	if err != nil {
		return false, nil
	}
	target, err := os.Stat(targetPath)
	if err != nil || !target.IsDir() {
		return false, nil
	}

	for dir := filepath.Dir(dest); ; dir = filepath.Dir(dir) {
		if w.dirs[dir] == targetPath {
			zerolog.Ctx(w.ctx).Warn().Str("link", src).Str("target", targetPath).Msg("skipping symlink cycle")
			return true, nil
		}
		if dir == w.root || dir == filepath.Dir(dir) {
			break
		}
	}

	w.dirs[dest] = targetPath
	return false, nil
}

// 🔍 shouldIgnore checks if a relative path should be skipped
func (c *Copier) shouldIgnore(ctx context.Context, rel string) bool {
	for _, pattern := range c.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
