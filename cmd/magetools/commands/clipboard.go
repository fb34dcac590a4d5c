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

package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/magetools/cmd/magetools/opts"
	"gitlab.com/tozd/go/errors"
)

// NewClipboardCmd creates a new clipboard command
func NewClipboardCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard [text...]",
		Short: "Copy text, or stdin, to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Errorf("reading stdin: %w", err)
				}
				text = strings.TrimSuffix(string(data), "\n")
			}

			tool, err := o.NewTool(o.Terminal(ctx))
			if err != nil {
				return errors.Errorf("creating tool: %w", err)
			}

			if err := tool.CopyToClipboard(ctx, text); err != nil {
				return opts.ErrReported
			}
			return nil
		},
	}

	return cmd
}
