// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/model"
)

// Config contains generator configuration.
type Config struct {
	// Classes are the source classes, in registration order.
	Classes []string

	// Modifier selects methods by modifier (zero = public).
	Modifier model.Modifier

	// Exclude lists method names to leave out.
	Exclude []string

	// Filter is a filter specification understood by synth.ParseFilter
	// (empty = default filter).
	Filter string

	// Add lists extra lines, optionally positioned.
	Add []Extra

	// See overrides the see references (empty = Classes).
	See []string

	// Markers is the marker order name (empty = reference-first).
	Markers string

	// OutputFile overrides the generator's default file name (optional).
	OutputFile string

	// Source is the catalog source (for headers).
	Source string

	// CommitHash is the git commit of the catalog's project, if known.
	CommitHash string

	// Logger receives synthesizer diagnostics (nil = no logging).
	Logger *zap.Logger

	// Options contains target-specific options.
	Options map[string]string
}

// Extra is an extra line with an optional position such as "before:send".
type Extra struct {
	Doc      string `mapstructure:"doc" yaml:"doc" json:"doc"`
	Position string `mapstructure:"position" yaml:"position,omitempty" json:"position,omitempty"`
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// FileName returns OutputFile, or name when it is unset.
func (c Config) FileName(name string) string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return name
}
