// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/model"
)

// aggregate returns the methods to render: classes in registration order,
// each class's methods in introspector order, first name wins.
func (s *Synthesizer) aggregate() []*model.Method {
	var (
		out  []*model.Method
		seen = make(map[string]bool)
	)
	for _, cls := range s.classes.values() {
		for _, m := range s.in.Methods(cls, s.modifier) {
			var reason string
			switch {
			case s.excluded[m.Name]:
				reason = "excluded"
			case s.filter != nil && !s.filter(m):
				reason = "filtered"
			case seen[m.Name]:
				reason = "duplicate"
			}
			if reason != "" {
				s.log.Debug("method dropped",
					zap.String("class", cls.Name),
					zap.String("method", m.Name),
					zap.String("reason", reason))
				continue
			}
			seen[m.Name] = true
			out = append(out, m)
		}
	}
	return out
}
