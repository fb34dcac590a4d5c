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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/magetools/cmd/magetools/opts"
	"gitlab.com/tozd/go/errors"
)

// NewResolveCmd creates a new resolve command
func NewResolveCmd(o *opts.RootOpts) *cobra.Command {
	var (
		active      string
		as          string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print where a vendor file would be duplicated to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tool, err := o.NewTool(o.Terminal(ctx))
			if err != nil {
				return errors.Errorf("creating tool: %w", err)
			}

			destination, err := tool.Preview(ctx, args, active, as)
			if err != nil {
				return errors.Errorf("resolving destination: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), destination)

			if toClipboard {
				if err := tool.CopyToClipboard(ctx, destination); err != nil {
					return opts.ErrReported
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&active, "file", "f", "", "active document used when no path is given")
	cmd.Flags().StringVar(&as, "as", "", "destination filename, defaults to the source name")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "also copy the destination to the clipboard")

	return cmd
}
