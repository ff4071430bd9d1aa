// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"strings"

	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/model"
)

// formatMethod renders "<return-type><name>(<params>)".
func (s *Synthesizer) formatMethod(m *model.Method) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = s.paramType(m, p) + s.markers.paramName(p) + defaultValue(m, p)
	}
	return s.returnType(m) + m.Name + "(" + strings.Join(params, ", ") + ")"
}

// assemble formats methods, splices the extra lines around them and drops
// repeated lines.
func (s *Synthesizer) assemble(methods []*model.Method) []string {
	before := make(map[string][]string)
	after := make(map[string][]string)
	rendered := make(map[string]bool, len(methods))
	for _, m := range methods {
		rendered[m.Name] = true
	}

	var trailing []string
	for _, e := range s.extras {
		switch {
		case e.pos.Relation == BeforeMethod && rendered[e.pos.Method]:
			before[e.pos.Method] = append(before[e.pos.Method], e.doc)
		case e.pos.Relation == AfterMethod && rendered[e.pos.Method]:
			after[e.pos.Method] = append(after[e.pos.Method], e.doc)
		default:
			if e.pos.Relation != AtEnd {
				s.log.Warn("extra line target has no method line, appending at end",
					zap.String("position", e.pos.String()),
					zap.String("doc", e.doc))
			}
			trailing = append(trailing, e.doc)
		}
	}

	lines := make([]string, 0, len(methods)+len(s.extras))
	for _, m := range methods {
		lines = append(lines, before[m.Name]...)
		lines = append(lines, s.formatMethod(m))
		lines = append(lines, after[m.Name]...)
	}
	lines = append(lines, trailing...)
	return unique(lines)
}

// unique drops repeated lines, keeping the first occurrence.
func unique(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, line := range lines {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}
