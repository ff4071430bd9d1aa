// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for facade signature renderers.
package generator

import (
	"context"

	"github.com/albertocavalcante/facadoc/synth"
)

// Generator is the interface that all renderers must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files for the classes in cfg, using in for
	// class metadata.
	Generate(ctx context.Context, in synth.Introspector, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "phpdoc", "methods", "json").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".php"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
