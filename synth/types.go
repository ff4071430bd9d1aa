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
	returnTag = regexp.MustCompile(`(?m)^\s*\*\s+@return\s+(\S+)`)
	paramTag  = regexp.MustCompile(`(?m)^\s*\*\s+@param\s+(\S+)\s+&?(?:\.\.\.)?\$([^\s,)]+)`)
)

// docReturnType returns the type of the first @return tag in doc.
func docReturnType(doc string) string {
	if match := returnTag.FindStringSubmatch(doc); match != nil {
		return match[1]
	}
	return ""
}

// docParamType returns the type of the @param tag naming param.
func docParamType(doc, param string) string {
	for _, match := range paramTag.FindAllStringSubmatch(doc, -1) {
		if match[2] == param {
			return match[1]
		}
	}
	return ""
}

// returnType resolves m's return type: the declared type, else the @return
// tag of the doc comment.
func (s *Synthesizer) returnType(m *model.Method) string {
	typ := m.Return.String()
	if typ == "" {
		typ = docReturnType(m.Doc)
		if typ == "$this" {
			typ = m.Class
		}
	}
	return s.canonicalType(ownerType(typ, m.Class))
}

// paramType resolves p's type: the declared type, else the matching @param
// tag of the method's doc comment. A documented "mixed" counts as absent.
func (s *Synthesizer) paramType(m *model.Method, p *model.Parameter) string {
	typ := p.Type.String()
	if typ == "" {
		typ = docParamType(m.Doc, p.Name)
		if typ == phpname.TypeMixed {
			typ = ""
		}
	}
	return s.canonicalType(ownerType(typ, m.Class))
}

// ownerType replaces a whole type of static or self with the owning class.
func ownerType(typ, owner string) string {
	switch typ {
	case phpname.TypeStatic, phpname.TypeSelf:
		return owner
	}
	return typ
}

// canonicalType qualifies the class members of a union and appends the
// separating space. Members that contain a namespace separator or name an
// existing class get exactly one leading separator; nullable markers and
// member order are kept.
func (s *Synthesizer) canonicalType(typ string) string {
	if typ == "" {
		return ""
	}
	members := strings.Split(typ, "|")
	for i, member := range members {
		nullable := ""
		if rest, ok := strings.CutPrefix(member, "?"); ok {
			nullable, member = "?", rest
		}
		if phpname.IsNamespaced(member) || s.in.ClassExists(member) {
			member = phpname.Separator + phpname.Unqualify(member)
		}
		members[i] = nullable + member
	}
	return strings.Join(members, "|") + " "
}
