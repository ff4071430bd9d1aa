// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/facadoc/generator"
)

func generatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, g := range generator.All() {
				meta := g.Metadata()
				fmt.Fprintf(w, "%-8s %-7s %-6s %s\n", meta.Name, meta.Version,
					strings.Join(meta.FileExtensions, ","), meta.Description)
			}
		},
	}
}
