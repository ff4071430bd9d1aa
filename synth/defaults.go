// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"regexp"
	"strings"

	"github.com/albertocavalcante/facadoc/internal/phpname"
	"github.com/albertocavalcante/facadoc/model"
)

var (
	exportIndent = regexp.MustCompile(`\n\s+`)
	exportIndex  = regexp.MustCompile(`\d+\s=>\s`)
)

// defaultValue renders " = <literal>" for p's default, or "" without one.
func defaultValue(m *model.Method, p *model.Parameter) string {
	d := p.Default
	if d == nil {
		return ""
	}
	switch {
	case d.Kind == model.DefaultConstant:
		return " = " + phpname.ResolveConstant(d.Constant, m.Class)
	case d.Kind == model.DefaultNull || d.Value.IsNull():
		return " = null"
	case d.Value.Kind == model.Array:
		return " = " + arrayLiteral(d.Value)
	}
	return " = " + exportValue(d.Value)
}

// arrayLiteral turns the exported array into a short bracketed literal:
// [1, 2] or ['foo' => 'bar']. List indexes are dropped, string keys kept.
func arrayLiteral(v *model.Value) string {
	out := exportValue(v)
	out = out[len("array (") : len(out)-2]
	out = exportIndent.ReplaceAllString(out, " ")
	out = exportIndex.ReplaceAllString(out, "")
	return "[" + strings.Trim(out, ", ") + "]"
}
