// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/generators/phpdoc"
	"github.com/albertocavalcante/facadoc/internal/facade"
)

var (
	okColor    = color.New(color.FgGreen)
	staleColor = color.New(color.FgYellow, color.Bold)
	addColor   = color.New(color.FgGreen)
	delColor   = color.New(color.FgRed)
)

// facadeJobs loads the jobs of update and check; every job needs a facade.
func (a *app) facadeJobs(cmd *cobra.Command) ([]Job, error) {
	jobs, err := loadJobs(cmd.Flags(), a.config, &a.flags)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.Facade == "" {
			return nil, errors.WithHint(errors.Newf("job %s has no facade file", j.label()),
				"pass --facade or set facade: in the job")
		}
	}
	return jobs, nil
}

// docblock generates the docblock of j.
func (a *app) docblock(ctx context.Context, cat *catalogs, j Job) (string, error) {
	j.Output = ""
	out, err := a.render(ctx, cat, j, "phpdoc")
	if err != nil {
		return "", err
	}
	return string(out.Files[phpdoc.DefaultFile]), nil
}

func (a *app) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Write the docblock into facade source files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := a.facadeJobs(cmd)
			if err != nil {
				return err
			}
			cat := a.catalogs(cmd)
			for _, j := range jobs {
				block, err := a.docblock(cmd.Context(), cat, j)
				if err != nil {
					return err
				}
				changed, err := facade.UpdateFile(cmd.Context(), j.Facade, j.FacadeClass, block)
				if err != nil {
					return err
				}
				a.log.Info("facade processed", zap.String("path", j.Facade), zap.Bool("changed", changed))
			}
			return nil
		},
	}
	a.flags.register(cmd.Flags(), true)
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report facades whose docblock is out of date",
		Long: `Report facades whose docblock is out of date.

Exits with status 2 when any facade is stale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := a.facadeJobs(cmd)
			if err != nil {
				return err
			}
			cat := a.catalogs(cmd)
			w := cmd.OutOrStdout()
			stale := 0
			for _, j := range jobs {
				block, err := a.docblock(cmd.Context(), cat, j)
				if err != nil {
					return err
				}
				isStale, err := facade.Check(cmd.Context(), j.Facade, j.FacadeClass, block)
				if err != nil {
					return err
				}
				if !isStale {
					okColor.Fprint(w, "ok    ")
					fmt.Fprintln(w, j.Facade)
					continue
				}
				stale++
				staleColor.Fprint(w, "stale ")
				fmt.Fprintln(w, j.Facade)
				if err := reportDiff(cmd.Context(), w, j, block); err != nil {
					return err
				}
			}
			if stale > 0 {
				return errors.Wrapf(errStale, "%d of %d facades", stale, len(jobs))
			}
			return nil
		},
	}
	a.flags.register(cmd.Flags(), true)
	return cmd
}

// reportDiff lists the docblock lines check would add and remove.
func reportDiff(ctx context.Context, w io.Writer, j Job, block string) error {
	src, err := os.ReadFile(j.Facade)
	if err != nil {
		return errors.Wrap(err, "read facade")
	}
	current, err := facade.Existing(ctx, src, j.FacadeClass)
	if err != nil {
		return err
	}
	if current == "" {
		fmt.Fprintln(w, "      no docblock")
		return nil
	}

	have := lineSet(current)
	want := lineSet(block)
	for _, line := range strings.Split(strings.TrimRight(current, "\n"), "\n") {
		if !want[line] {
			delColor.Fprintf(w, "    - %s\n", strings.TrimSpace(line))
		}
	}
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		if !have[line] {
			addColor.Fprintf(w, "    + %s\n", strings.TrimSpace(line))
		}
	}
	return nil
}

func lineSet(block string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range strings.Split(block, "\n") {
		set[line] = true
	}
	return set
}
