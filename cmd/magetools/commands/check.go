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
	"github.com/spf13/cobra"
	"github.com/walteh/magetools/cmd/magetools/opts"
	"github.com/walteh/magetools/pkg/duplicate"
	"github.com/walteh/magetools/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	var active string

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check if a file can be duplicated into the theme",
		Long: `Check reports whether duplicate would be offered for a file.
It exits with a non-zero status when it would not.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			tool, err := o.NewTool(o.Terminal(ctx))
			if err != nil {
				return errors.Errorf("creating tool: %w", err)
			}

			source, err := duplicate.SelectPath(args, active)
			if err != nil {
				return err
			}

			switch {
			case !tool.IsVisible(ctx, args, active):
				console.Warningf("roots are not configured: %s", source)
				return opts.ErrReported
			case !tool.IsEnabled(ctx, args, active):
				console.Errorf("not eligible: %s", source)
				return opts.ErrReported
			}

			console.Success("eligible: " + source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&active, "file", "f", "", "active document used when no path is given")

	return cmd
}
