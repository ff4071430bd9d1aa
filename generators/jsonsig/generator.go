// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package jsonsig renders the synthesized signatures as JSON, for editors and
// other tools that consume the facade surface programmatically.
package jsonsig

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/model"
	"github.com/albertocavalcante/facadoc/synth"
)

// DefaultFile is the output name when none is configured.
const DefaultFile = "signatures.json"

// Document is the JSON output.
type Document struct {
	Source     string         `json:"source,omitempty"`
	CommitHash string         `json:"commit,omitempty"`
	Classes    []string       `json:"classes"`
	Modifier   model.Modifier `json:"modifier"`
	Methods    []string       `json:"methods"`
	See        []string       `json:"see"`
}

// Generator implements [generator.Generator] for JSON output.
type Generator struct{}

// NewGenerator creates a new JSON generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "json",
		Version:        "1.0.0",
		Description:    "Generate facade method signatures as JSON",
		FileExtensions: []string{".json"},
		URL:            "https://github.com/albertocavalcante/facadoc",
	}
}

// Generate produces the JSON document. The "indent" option sets the
// indentation (default two spaces; "none" for compact output). Ampersands of
// by-reference parameters are written unescaped.
func (g *Generator) Generate(ctx context.Context, in synth.Introspector, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := cfg.Synthesizer(in)
	if err != nil {
		return nil, err
	}

	methods := s.Methods()
	if methods == nil {
		methods = []string{}
	}
	doc := Document{
		Source:     cfg.Source,
		CommitHash: cfg.CommitHash,
		Classes:    s.Classes(),
		Modifier:   s.Modifier(),
		Methods:    methods,
		See:        s.SeeReferences(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent := cfg.Option("indent", "  "); indent != "none" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encode signatures")
	}
	return generator.Single(cfg.FileName(DefaultFile), buf.Bytes()), nil
}
