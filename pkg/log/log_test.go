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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_copy",
			op: func(t *testing.T, logger *Logger) {
				logger.LogCopy(context.Background(), CopyEntry{
					Source:      "block.phtml",
					Destination: "/theme/Acme_Foo/templates/block.phtml",
					Kind:        "module",
				})
			},
			wantLogs: []string{
				"✓ module   block.phtml                         → /theme/Acme_Foo/templates/block.phtml",
			},
		},
		{
			name: "log_failed_copy",
			op: func(t *testing.T, logger *Logger) {
				logger.LogCopy(context.Background(), CopyEntry{
					Source:      "_extend.less",
					Destination: "/theme/Magento_Theme/css/_extend.less",
					Kind:        "theme",
					Err:         errors.New("permission denied"),
				})
			},
			wantLogs: []string{
				"✗ theme    _extend.less                        → /theme/Magento_Theme/css/_extend.less",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Status("status message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"› status message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
			},
			wantLogs: []string{
				"⚠️  warning test",
				"❌ error test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("duplicating into theme")
			},
			wantLogs: []string{
				"magetools • duplicating into theme",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerMirrorsToZerolog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(buf))

	logger.Status("copying")

	assert.Contains(t, buf.String(), `"message":"copying"`, "status should be mirrored")
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
