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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent copy entries
	kindWidth   = 8  // Width for source kind
	nameWidth   = 35 // Base width for the source filename
)

// 📄 CopyEntry represents a finished copy for logging
type CopyEntry struct {
	Source      string // Source path
	Destination string // Destination path
	Kind        string // module/theme
	Err         error  // Copy failure, if any
}

// 🎯 Logger writes status lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatCopyEntry formats a copy entry for display
func (l *Logger) formatCopyEntry(e CopyEntry) string {
	symbol, symbolColor := '✓', color.FgGreen
	if e.Err != nil {
		symbol, symbolColor = '✗', color.FgRed
	}

	kindColor := color.FgBlue
	if e.Kind == "theme" {
		kindColor = color.FgMagenta
	}

	return fmt.Sprintf("%*s%s %s %s %s",
		entryIndent, "",
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(kindColor).Sprint(fmt.Sprintf("%-*s", kindWidth, e.Kind)),
		fmt.Sprintf("%-*s", nameWidth, e.Source),
		color.New(color.Faint).Sprint("→ "+e.Destination))
}

// 📝 LogCopy logs a finished copy
func (l *Logger) LogCopy(ctx context.Context, e CopyEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatCopyEntry(e))

	ev := l.zlog.Info()
	if e.Err != nil {
		ev = l.zlog.Error().Err(e.Err)
	}
	ev.Str("source", e.Source).
		Str("destination", e.Destination).
		Str("kind", e.Kind).
		Msg("copy finished")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("magetools")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Status logs a one-line status message
func (l *Logger) Status(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgCyan).Sprint("›"), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
