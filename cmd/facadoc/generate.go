// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/internal/fetch"
)

// catalogs loads each catalog source once per invocation.
type catalogs struct {
	stdin  io.Reader
	log    *zap.Logger
	loaded map[string]*fetch.Result
}

func (a *app) catalogs(cmd *cobra.Command) *catalogs {
	return &catalogs{stdin: cmd.InOrStdin(), log: a.log, loaded: make(map[string]*fetch.Result)}
}

func (c *catalogs) load(ctx context.Context, path string) (*fetch.Result, error) {
	if r, ok := c.loaded[path]; ok {
		return r, nil
	}
	r, err := fetch.Fetch(ctx, fetch.Options{Path: path, Stdin: c.stdin})
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	c.log.Debug("catalog loaded",
		zap.String("source", r.Source),
		zap.String("commit", r.CommitHash),
		zap.Int("classes", len(r.Catalog.Classes)))
	c.loaded[path] = r
	return r, nil
}

// render runs the job's generator over its catalog.
func (a *app) render(ctx context.Context, cat *catalogs, j Job, format string) (*generator.Output, error) {
	g, err := generator.Lookup(format)
	if err != nil {
		return nil, err
	}
	res, err := cat.load(ctx, j.Catalog)
	if err != nil {
		return nil, err
	}
	cfg, err := j.Config(a.log.With(zap.String("job", j.label())))
	if err != nil {
		return nil, err
	}
	cfg.Source = res.Source
	cfg.CommitHash = res.CommitHash
	if j.Output != "" && !isDirTarget(j.Output) {
		cfg.OutputFile = filepath.Base(j.Output)
	}
	out, err := g.Generate(ctx, res.Catalog, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "job %s", j.label())
	}
	return out, nil
}

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print or write the synthesized signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := loadJobs(cmd.Flags(), a.config, &a.flags)
			if err != nil {
				return err
			}
			cat := a.catalogs(cmd)
			for _, j := range jobs {
				out, err := a.render(cmd.Context(), cat, j, j.Format)
				if err != nil {
					return err
				}
				if err := a.write(cmd.OutOrStdout(), j.Output, out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	a.flags.register(cmd.Flags(), false)
	return cmd
}

// write prints out to stdout when target is empty, writes it into target
// when that is a directory, and to the target file otherwise.
func (a *app) write(stdout io.Writer, target string, out *generator.Output) error {
	if target == "" {
		for _, name := range out.Names() {
			if _, err := stdout.Write(out.Files[name]); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil
	}

	dir, single := target, ""
	if !isDirTarget(target) {
		if len(out.Files) != 1 {
			return errors.WithHint(errors.Newf("%d output files for file target %s", len(out.Files), target),
				"pass a directory to --output")
		}
		dir, single = filepath.Dir(target), filepath.Base(target)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	for _, name := range out.Names() {
		path := filepath.Join(dir, name)
		if single != "" {
			path = filepath.Join(dir, single)
		}
		if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		a.log.Info("wrote output", zap.String("path", path))
	}
	return nil
}

// isDirTarget reports whether target names a directory: an existing one, or
// any path ending in a separator.
func isDirTarget(target string) bool {
	if strings.HasSuffix(target, "/") || strings.HasSuffix(target, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(target)
	return err == nil && info.IsDir()
}
