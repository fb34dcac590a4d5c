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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/magetools/cmd/magetools/commands"
	"github.com/walteh/magetools/cmd/magetools/opts"
	"github.com/walteh/magetools/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	root       string
	theme      string
	debug      bool
}

// newRootCmd creates the magetools command tree
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "magetools",
		Short: "Duplicate Magento vendor files into a theme",
		Long: `magetools copies module and theme package sources (templates, styles,
scripts) from vendor/ into the active theme, working out the override path
from the Magento directory conventions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.debug)
			return loadRootOpts(cmd.Context(), flags, ro)
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewDuplicateCmd(ro),
		commands.NewResolveCmd(ro),
		commands.NewCheckCmd(ro),
		commands.NewClipboardCmd(ro),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "project file path (default: nearest .magetools.{yaml,yml,hcl,json})")
	cmd.PersistentFlags().StringVar(&flags.root, "root", os.Getenv("MAGETOOLS_ROOT"), "Magento root directory")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", os.Getenv("MAGETOOLS_THEME"), "theme override directory")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// loadRootOpts loads the project file and resolves the roots
func loadRootOpts(ctx context.Context, flags *rootFlags, ro *opts.RootOpts) error {
	path := flags.configFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		found, err := config.Discover(wd)
		if err != nil && !errors.Is(err, config.ErrNoProjectFile) {
			return errors.Errorf("discovering project file: %w", err)
		}
		path = found
	}

	if path != "" {
		project, err := config.Load(ctx, path)
		if err != nil {
			return errors.Errorf("loading project: %w", err)
		}
		ro.Project = project
	}

	roots, err := config.ResolveRoots(ctx, ro.Project, config.Roots{Platform: flags.root, Theme: flags.theme})
	if err != nil {
		return errors.Errorf("resolving roots: %w", err)
	}
	ro.Roots = roots

	return nil
}
