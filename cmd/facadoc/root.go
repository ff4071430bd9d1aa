// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	flags   jobFlags
	config  string
	verbose bool
	logJSON bool

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "facadoc",
		Short: "facadoc - PHP facade docblock generator",
		Long: `facadoc - PHP facade docblock generator

Synthesize the "@method static" lines of a facade's docblock from the public
methods of the classes it forwards to, described by a class catalog.

Examples:
  # Print the docblock for one class
  facadoc generate --catalog catalog.json --class 'App\Notification\Pusher'

  # Also document protected methods, without magic-method filtering
  facadoc generate --class 'App\Pusher' --modifier public,protected --filter none

  # Write the docblock into the facade
  facadoc update --class 'App\Pusher' --facade app/Facades/Pusher.php

  # Fail CI when any configured facade is stale
  facadoc check --config facadoc.yaml`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose, a.logJSON)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetVersionTemplate("facadoc {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.config, "config", "", "Job file (YAML, TOML or JSON)")
	pf.BoolVar(&a.verbose, "verbose", false, "Debug logging")
	pf.BoolVar(&a.logJSON, "log-json", false, "JSON logs")

	root.AddCommand(
		a.generateCmd(),
		a.updateCmd(),
		a.checkCmd(),
		generatorsCmd(),
	)
	return root
}
