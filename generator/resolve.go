// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/facadoc/synth"
)

// Synthesizer resolves the configured classes through in and applies every
// setting of c. Errors carry the synth marks (synth.ErrResolution,
// synth.ErrInvalidConfiguration).
func (c Config) Synthesizer(in synth.Introspector) (*synth.Synthesizer, error) {
	s, err := synth.New(in, c.Classes...)
	if err != nil {
		return nil, err
	}
	s.WithLogger(c.Logger)

	if c.Modifier != 0 {
		if err := s.SetModifier(c.Modifier); err != nil {
			return nil, err
		}
	}

	filter, err := synth.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	s.Filter(filter).Exclude(c.Exclude...).See(c.See...)

	for _, e := range c.Add {
		pos, err := synth.ParsePosition(e.Position)
		if err != nil {
			return nil, errors.Wrapf(err, "extra line %q", e.Doc)
		}
		if err := s.AddAt(pos, e.Doc); err != nil {
			return nil, err
		}
	}

	markers, err := synth.ParseMarkerOrder(c.Markers)
	if err != nil {
		return nil, err
	}
	if err := s.SetMarkerOrder(markers); err != nil {
		return nil, err
	}
	return s, nil
}
