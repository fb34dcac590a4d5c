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

package opts

import (
	"context"

	"github.com/walteh/magetools/pkg/config"
	"github.com/walteh/magetools/pkg/duplicate"
	"github.com/walteh/magetools/pkg/env"
	"github.com/walteh/magetools/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrReported marks a failure the user has already been shown.
var ErrReported = errors.Base("already reported")

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Project *config.Project // nil when no project file was found
	Roots   config.Roots
}

// NewTool creates a duplicate tool running against e.
func (o *RootOpts) NewTool(e env.Environment) (*duplicate.Tool, error) {
	return duplicate.New(duplicate.Options{
		Env:            e,
		Extensions:     o.Project.Extensions(),
		IgnorePatterns: o.Project.IgnorePatterns(),
	})
}

// Terminal creates the terminal environment for this invocation, writing
// through the console logger carried by ctx.
func (o *RootOpts) Terminal(ctx context.Context, opts ...env.TerminalOption) *env.Terminal {
	return env.NewTerminal(o.Roots, log.FromContext(ctx), opts...)
}
