// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package methods renders one method signature per line.
package methods

import (
	"context"
	"strings"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/synth"
)

// DefaultFile is the output name when none is configured.
const DefaultFile = "methods.txt"

// Generator implements [generator.Generator] for plain signature lists.
type Generator struct{}

// NewGenerator creates a new signature list generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "methods",
		Version:        "1.0.0",
		Description:    "Generate one facade method signature per line",
		FileExtensions: []string{".txt"},
		URL:            "https://github.com/albertocavalcante/facadoc",
	}
}

// Generate produces the signature list. A non-empty "prefix" option is
// written before every line, separated by a space (e.g. "@method static").
func (g *Generator) Generate(ctx context.Context, in synth.Introspector, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := cfg.Synthesizer(in)
	if err != nil {
		return nil, err
	}

	prefix := cfg.Option("prefix", "")
	var b strings.Builder
	for _, line := range s.Methods() {
		if prefix != "" {
			b.WriteString(prefix)
			b.WriteByte(' ')
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return generator.Single(cfg.FileName(DefaultFile), []byte(b.String())), nil
}
