// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fetch loads a class catalog from a file, stdin, a project
// directory or an HTTP URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/facadoc/model"
)

const (
	// DefaultCatalogPath is where a project keeps its dumped catalog,
	// relative to the project root.
	DefaultCatalogPath = ".facadoc/catalog.json"

	// Stdin is the path that reads the catalog from standard input.
	Stdin = "-"

	// DefaultTimeout bounds URL downloads.
	DefaultTimeout = 30 * time.Second
)

// Options configures where the catalog is loaded from.
type Options struct {
	// Path is a catalog file, Stdin, or an http(s) URL.
	// If empty, DefaultCatalogPath under ProjectDir is used.
	Path string

	// ProjectDir is the project root. Defaults to the working directory.
	ProjectDir string

	// Stdin is read when Path is Stdin. Defaults to os.Stdin.
	Stdin io.Reader

	// Client performs URL downloads. Defaults to http.DefaultClient.
	Client *http.Client

	// Timeout for network operations.
	Timeout time.Duration
}

// Result contains the loaded catalog and metadata.
type Result struct {
	// Catalog is the parsed class catalog.
	Catalog *model.Catalog

	// CommitHash is the project's git commit hash (project sources only).
	CommitHash string

	// Source describes where the catalog was loaded from.
	Source string
}

// Fetch loads and parses a catalog.
func Fetch(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	// Priority: Stdin > URL > file > project directory
	switch {
	case opts.Path == Stdin:
		return fetchFromStdin(opts.Stdin)
	case isURL(opts.Path):
		return fetchFromURL(ctx, opts)
	case opts.Path != "":
		return fetchFromFile(opts.Path)
	}
	return fetchFromProject(opts.ProjectDir)
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchFromFile reads the catalog from a local file.
func fetchFromFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}

	c, err := model.ParseCatalog(data, model.FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}

	return &Result{
		Catalog: c,
		Source:  fmt.Sprintf("file://%s", path),
	}, nil
}

// fetchFromStdin reads the catalog from r, sniffing JSON or YAML.
func fetchFromStdin(r io.Reader) (*Result, error) {
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog from stdin")
	}

	c, err := model.ParseCatalog(data, model.FormatAuto)
	if err != nil {
		return nil, errors.Wrap(err, "catalog from stdin")
	}

	return &Result{Catalog: c, Source: "stdin"}, nil
}

// fetchFromProject reads the catalog dumped into a project and records the
// project's commit.
func fetchFromProject(dir string) (*Result, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, DefaultCatalogPath)
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "read project catalog")
		if errors.Is(err, os.ErrNotExist) {
			err = errors.WithHintf(err, "dump the catalog to %s or pass --catalog", DefaultCatalogPath)
		}
		return nil, err
	}

	c, err := model.ParseCatalog(data, model.FormatJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}

	return &Result{
		Catalog:    c,
		CommitHash: getGitHash(dir),
		Source:     fmt.Sprintf("project://%s", dir),
	}, nil
}

// fetchFromURL downloads the catalog.
func fetchFromURL(ctx context.Context, opts Options) (*Result, error) {
	data, err := FetchRaw(ctx, opts.Client, opts.Path, opts.Timeout)
	if err != nil {
		return nil, err
	}

	c, err := model.ParseCatalog(data, model.FormatFromPath(urlPath(opts.Path)))
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", opts.Path)
	}

	return &Result{Catalog: c, Source: opts.Path}, nil
}

// urlPath strips the query and fragment so the extension can pick a format.
func urlPath(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}

// getGitHash returns the current commit hash for a repository.
func getGitHash(repoDir string) string {
	// Try reading HEAD directly
	headPath := filepath.Join(repoDir, ".git", "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(data))

	// Direct hash (detached HEAD)
	if len(content) == 40 && isHex(content) {
		return content
	}

	// Reference (e.g., "ref: refs/heads/main")
	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		data, err := os.ReadFile(filepath.Join(repoDir, ".git", ref))
		if err != nil {
			return ""
		}
		hash := strings.TrimSpace(string(data))
		if len(hash) >= 40 && isHex(hash[:40]) {
			return hash[:40]
		}
	}

	return ""
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// FetchRaw fetches the raw catalog content via HTTP.
func FetchRaw(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("download catalog: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog response")
	}
	return data, nil
}
