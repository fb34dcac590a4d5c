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

// Package env abstracts the host around a duplication: where the roots
// come from, how the user is asked for a filename, where status messages
// go and how the clipboard is reached.
package env

import (
	"context"

	"github.com/walteh/magetools/pkg/config"
	"gitlab.com/tozd/go/errors"
)

var ErrPromptCancelled = errors.Base("prompt cancelled")

// 🔌 Environment is everything a command needs from its host
type Environment interface {
	// Roots returns the root configuration for this invocation
	Roots(ctx context.Context) (config.Roots, error)
	// PromptFilename asks for the destination filename, pre-filled with initial
	PromptFilename(ctx context.Context, initial string) (string, error)
	// StatusMessage shows a one-line message
	StatusMessage(ctx context.Context, msg string)
	// SetClipboard replaces the clipboard contents
	SetClipboard(ctx context.Context, text string) error
}

var (
	_ Environment = (*Terminal)(nil)
	_ Environment = (*Memory)(nil)
)
