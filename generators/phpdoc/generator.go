// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package phpdoc renders the facade docblock.
package phpdoc

import (
	"context"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/synth"
)

// DefaultFile is the output name when none is configured.
const DefaultFile = "doc.php"

// Generator implements [generator.Generator] for docblock output.
type Generator struct{}

// NewGenerator creates a new docblock generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "phpdoc",
		Version:        "1.0.0",
		Description:    "Generate the @method docblock of a facade",
		FileExtensions: []string{".php"},
		URL:            "https://github.com/albertocavalcante/facadoc",
	}
}

// Generate produces the docblock for the configured classes.
func (g *Generator) Generate(ctx context.Context, in synth.Introspector, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := cfg.Synthesizer(in)
	if err != nil {
		return nil, err
	}
	return generator.Single(cfg.FileName(DefaultFile), []byte(s.Generate())), nil
}
