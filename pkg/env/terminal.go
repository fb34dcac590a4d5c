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

package env

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/magetools/pkg/config"
	"github.com/walteh/magetools/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🖥️ Terminal is an Environment backed by the terminal and the system clipboard
type Terminal struct {
	roots       config.Roots
	logger      *log.Logger
	interactive bool
	filename    string

	// overridable in tests
	prompt    func(initial string) (string, error)
	clipboard func(text string) error
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithFilename answers every prompt with name instead of asking.
func WithFilename(name string) TerminalOption {
	return func(t *Terminal) {
		t.filename = name
	}
}

// WithInteractive toggles the interactive prompt. A non-interactive terminal
// accepts the pre-filled value.
func WithInteractive(interactive bool) TerminalOption {
	return func(t *Terminal) {
		t.interactive = interactive
	}
}

// 🏭 NewTerminal creates a terminal environment
func NewTerminal(roots config.Roots, logger *log.Logger, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		roots:       roots,
		logger:      logger,
		interactive: true,
		prompt: func(initial string) (string, error) {
			return pterm.DefaultInteractiveTextInput.
				WithDefaultValue(initial).
				Show("Duplicate As")
		},
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Roots returns the roots resolved at startup.
func (t *Terminal) Roots(ctx context.Context) (config.Roots, error) {
	return t.roots, nil
}

// PromptFilename asks for a filename on the terminal.
func (t *Terminal) PromptFilename(ctx context.Context, initial string) (string, error) {
	if t.filename != "" {
		return t.filename, nil
	}
	if !t.interactive {
		return initial, nil
	}

	answer, err := t.prompt(initial)
	if err != nil {
		return "", errors.Errorf("reading filename: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrPromptCancelled
	}

	zerolog.Ctx(ctx).Debug().Str("initial", initial).Str("answer", answer).Msg("filename chosen")
	return answer, nil
}

// StatusMessage prints msg through the console logger.
func (t *Terminal) StatusMessage(ctx context.Context, msg string) {
	t.logger.Status(msg)
}

// SetClipboard writes text to the system clipboard.
func (t *Terminal) SetClipboard(ctx context.Context, text string) error {
	if err := t.clipboard(text); err != nil {
		return errors.Errorf("writing clipboard: %w", err)
	}
	return nil
}
