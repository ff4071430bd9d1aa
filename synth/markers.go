// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"strings"

	"github.com/albertocavalcante/facadoc/model"
)

// MarkerOrder controls how the variadic and by-reference markers combine in
// a rendered parameter name.
type MarkerOrder int

const (
	// ReferenceFirst renders "&...$x".
	ReferenceFirst MarkerOrder = iota
	// VariadicFirst renders "...&$x".
	VariadicFirst
	// VariadicOnly renders "...$x", dropping the reference marker of a
	// variadic parameter.
	VariadicOnly
)

var markerOrderNames = [...]string{"reference-first", "variadic-first", "variadic-only"}

func (o MarkerOrder) String() string {
	if o >= 0 && int(o) < len(markerOrderNames) {
		return markerOrderNames[o]
	}
	return "unknown"
}

func (o MarkerOrder) valid() bool {
	return o >= 0 && int(o) < len(markerOrderNames)
}

// ParseMarkerOrder parses "reference-first", "variadic-first" or
// "variadic-only". Empty means ReferenceFirst.
func ParseMarkerOrder(s string) (MarkerOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ReferenceFirst, nil
	}
	for i, name := range markerOrderNames {
		if name == s {
			return MarkerOrder(i), nil
		}
	}
	return 0, invalidf("unknown marker order %q", s)
}

// paramName renders the parameter's name with its markers.
func (o MarkerOrder) paramName(p *model.Parameter) string {
	name := "$" + p.Name
	switch {
	case p.Variadic && p.ByRef && o == VariadicFirst:
		return "...&" + name
	case p.Variadic && p.ByRef && o == VariadicOnly:
		return "..." + name
	}
	if p.Variadic {
		name = "..." + name
	}
	if p.ByRef {
		name = "&" + name
	}
	return name
}
