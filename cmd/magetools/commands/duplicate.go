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
	"github.com/walteh/magetools/pkg/env"
	"github.com/walteh/magetools/pkg/log"
	"github.com/walteh/magetools/pkg/resolver"
	"gitlab.com/tozd/go/errors"
)

// NewDuplicateCmd creates a new duplicate command
func NewDuplicateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		active string
		as     string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "duplicate [path]",
		Aliases: []string{"dup"},
		Short:   "Duplicate a vendor file into the theme",
		Long: `Duplicate copies a module or theme package source into the theme override tree.
It will:
1. Check the source is a supported vendor template, style or script
2. Ask for the destination filename, pre-filled with the source name
3. Work out the override directory from the Magento conventions
4. Copy the file, creating missing directories`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)
			console.Header("duplicating into theme")

			term := o.Terminal(ctx, env.WithFilename(as), env.WithInteractive(!yes))
			tool, err := o.NewTool(term)
			if err != nil {
				return errors.Errorf("creating tool: %w", err)
			}

			if !tool.IsVisible(ctx, args, active) {
				console.Warning("duplicate is not available: set magento_root and magento_theme")
				return nil
			}
			if !tool.IsEnabled(ctx, args, active) {
				console.Warning("source cannot be duplicated into the theme")
				return nil
			}

			results, err := tool.Run(ctx, args, active)
			if err != nil {
				return errors.Errorf("duplicating: %w", err)
			}
			if results == nil {
				return nil
			}

			res := <-results
			kind := resolver.KindNone
			if src, err := resolver.Describe(res.Source, o.Roots.Platform); err == nil {
				kind = src.Kind()
			}
			console.LogCopy(ctx, log.CopyEntry{
				Source:      res.Source,
				Destination: res.Destination,
				Kind:        kind.String(),
				Err:         res.Err,
			})
			if res.Err != nil {
				return opts.ErrReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&active, "file", "f", "", "active document used when no path is given")
	cmd.Flags().StringVar(&as, "as", "", "destination filename, skips the prompt")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "keep the source filename without prompting")

	return cmd
}
