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

// Package duplicate runs the duplicate-into-theme command against an
// environment: pick the source, ask for a filename, resolve the override
// path and hand the copy to the executor.
package duplicate

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/magetools/pkg/env"
	"github.com/walteh/magetools/pkg/operation"
	"github.com/walteh/magetools/pkg/resolver"
	"github.com/walteh/magetools/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrNoSource          = errors.Base("no source selected and no active document")
	ErrMultipleSelection = errors.Base("only one source can be duplicated at a time")
)

// 🔧 Options contains configuration for the tool
type Options struct {
	// Env is the host environment
	Env env.Environment
	// Extensions overrides the supported source extensions
	Extensions []string
	// IgnorePatterns are skipped when a directory is duplicated
	IgnorePatterns []string
}

// 🎯 Tool runs duplications and clipboard copies
type Tool struct {
	env        env.Environment
	extensions []string
	executor   *operation.Executor
}

// 🏭 New creates a new tool with the given options
func New(opts Options) (*Tool, error) {
	if opts.Env == nil {
		return nil, errors.Errorf("environment is required")
	}
	return &Tool{
		env:        opts.Env,
		extensions: opts.Extensions,
		executor:   operation.NewExecutor(operation.NewCopier(opts.IgnorePatterns), opts.Env),
	}, nil
}

// SelectPath returns the single selected path, falling back to the active
// document when nothing is selected.
func SelectPath(paths []string, active string) (string, error) {
	switch {
	case len(paths) > 1:
		return "", ErrMultipleSelection
	case len(paths) == 1 && paths[0] != "":
		return paths[0], nil
	case active != "":
		return active, nil
	default:
		return "", ErrNoSource
	}
}

// newResolver builds a resolver from the current roots.
func (t *Tool) newResolver(ctx context.Context) (*resolver.Resolver, error) {
	roots, err := t.env.Roots(ctx)
	if err != nil {
		return nil, errors.Errorf("loading roots: %w", err)
	}
	if err := roots.Validate(); err != nil {
		return nil, errors.Errorf("checking roots: %w", err)
	}
	return resolver.New(roots.Platform, roots.Theme, t.extensions), nil
}

// offered returns a resolver when the command can be offered at all.
func (t *Tool) offered(ctx context.Context) (*resolver.Resolver, bool) {
	r, err := t.newResolver(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("duplicate not offered")
		return nil, false
	}
	return r, true
}

// IsVisible reports whether the command should be offered at all: roots are
// configured, the platform root exists and at most one path is selected.
func (t *Tool) IsVisible(ctx context.Context, paths []string, active string) bool {
	if _, ok := t.offered(ctx); !ok {
		return false
	}
	_, err := SelectPath(paths, active)
	return err == nil
}

// IsEnabled reports whether the selected source can be duplicated.
func (t *Tool) IsEnabled(ctx context.Context, paths []string, active string) bool {
	r, ok := t.offered(ctx)
	if !ok {
		return false
	}
	source, err := SelectPath(paths, active)
	if err != nil {
		return false
	}
	return r.IsEligible(source)
}

// Preview returns where source would be duplicated to as filename. An empty
// filename keeps the source name.
func (t *Tool) Preview(ctx context.Context, paths []string, active, filename string) (string, error) {
	r, err := t.newResolver(ctx)
	if err != nil {
		return "", err
	}
	source, err := SelectPath(paths, active)
	if err != nil {
		return "", err
	}
	if filename == "" {
		src, err := resolver.Describe(source, r.PlatformRoot)
		if err != nil {
			return "", err
		}
		filename = src.Filename()
	}
	return r.ResolveDestination(source, filename)
}

// 🏃 Run prompts for the destination filename and starts the copy.
//
// Ineligible or malformed sources are declined silently with a nil channel
// and a nil error. Otherwise the returned channel delivers the copy Result.
func (t *Tool) Run(ctx context.Context, paths []string, active string) (<-chan operation.Result, error) {
	logger := zerolog.Ctx(ctx)

	r, ok := t.offered(ctx)
	if !ok {
		return nil, nil
	}

	source, err := SelectPath(paths, active)
	if err != nil {
		return nil, err
	}

	if !r.IsEligible(source) {
		logger.Debug().Str("source", source).Msg("duplicate not offered: source not eligible")
		return nil, nil
	}

	dir, err := r.DestinationDir(source)
	if err != nil {
		if errors.Is(err, resolver.ErrMalformedPath) {
			logger.Debug().Err(err).Msg("duplicate declined")
			return nil, nil
		}
		return nil, errors.Errorf("resolving destination: %w", err)
	}

	src, err := resolver.Describe(source, r.PlatformRoot)
	if err != nil {
		return nil, err
	}

	filename, err := t.env.PromptFilename(ctx, src.Filename())
	if err != nil {
		if errors.Is(err, env.ErrPromptCancelled) {
			logger.Debug().Msg("duplicate cancelled")
			return nil, nil
		}
		return nil, errors.Errorf("prompting for filename: %w", err)
	}

	destination, err := r.ResolveDestination(source, filename)
	if err != nil {
		if errors.Is(err, resolver.ErrEmptyFilename) {
			return nil, nil
		}
		return nil, errors.Errorf("resolving destination: %w", err)
	}

	logger.Debug().
		Str("source", src.Path).
		Str("kind", src.Kind().String()).
		Str("dir", dir).
		Str("destination", destination).
		Msg("submitting copy")

	return t.executor.Submit(ctx, src.Path, destination), nil
}

// 📋 CopyToClipboard places text on the clipboard and says what was copied.
func (t *Tool) CopyToClipboard(ctx context.Context, text string) error {
	if err := t.env.SetClipboard(ctx, text); err != nil {
		t.env.StatusMessage(ctx, "Error copying to clipboard: "+err.Error())
		return err
	}
	t.env.StatusMessage(ctx, status.ClipboardMessage(text))
	return nil
}
