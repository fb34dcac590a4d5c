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
	"sync"

	"github.com/walteh/magetools/pkg/config"
)

// 🧪 Memory is a scripted Environment that records what it is asked to show
type Memory struct {
	RootConfig   config.Roots
	RootsErr     error
	Answer       string // returned by PromptFilename when set
	PromptErr    error
	ClipboardErr error

	mu        sync.Mutex
	prompts   []string
	messages  []string
	clipboard string
}

// Roots returns the scripted roots.
func (m *Memory) Roots(ctx context.Context) (config.Roots, error) {
	return m.RootConfig, m.RootsErr
}

// PromptFilename records initial and returns Answer, or initial when Answer is empty.
func (m *Memory) PromptFilename(ctx context.Context, initial string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, initial)
	if m.PromptErr != nil {
		return "", m.PromptErr
	}
	if m.Answer != "" {
		return m.Answer, nil
	}
	return initial, nil
}

// StatusMessage records msg.
func (m *Memory) StatusMessage(ctx context.Context, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

// SetClipboard stores text unless ClipboardErr is set.
func (m *Memory) SetClipboard(ctx context.Context, text string) error {
	if m.ClipboardErr != nil {
		return m.ClipboardErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clipboard = text
	return nil
}

// Prompts returns the pre-filled values of every prompt shown.
func (m *Memory) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Messages returns every status message shown.
func (m *Memory) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// Clipboard returns the current clipboard contents.
func (m *Memory) Clipboard() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clipboard
}
