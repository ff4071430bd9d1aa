// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Modifier is a bitmask of method attributes. The values match the ones the
// reflection facility uses, so integer masks copied from it work unchanged.
type Modifier int

const (
	IsPublic    Modifier = 1
	IsProtected Modifier = 2
	IsPrivate   Modifier = 4
	IsStatic    Modifier = 16
	IsFinal     Modifier = 32
	IsAbstract  Modifier = 64

	// VisibilityMask covers the three visibility bits.
	VisibilityMask = IsPublic | IsProtected | IsPrivate

	// AllModifiers is every known bit.
	AllModifiers = VisibilityMask | IsStatic | IsFinal | IsAbstract
)

var modifierNames = []struct {
	name string
	bit  Modifier
}{
	{"public", IsPublic},
	{"protected", IsProtected},
	{"private", IsPrivate},
	{"static", IsStatic},
	{"final", IsFinal},
	{"abstract", IsAbstract},
}

// String returns the keywords of m joined by "|", e.g. "public|static".
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := m &^ AllModifiers; rest != 0 {
		parts = append(parts, strconv.Itoa(int(rest)))
	}
	return strings.Join(parts, "|")
}

// Has reports whether m shares any bit with mask.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask != 0
}

// Valid reports whether m is non-zero and uses only known bits.
func (m Modifier) Valid() bool {
	return m != 0 && m&^AllModifiers == 0
}

// ParseModifier parses a modifier list such as "public|protected",
// "public, static" or "public protected", or a decimal integer mask.
func ParseModifier(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty modifier")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Modifier(n), nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t'
	})
	return parseModifierWords(fields)
}

func parseModifierWords(words []string) (Modifier, error) {
	var m Modifier
	for _, w := range words {
		bit, ok := modifierBit(w)
		if !ok {
			return 0, errors.Newf("unknown modifier %q", w)
		}
		m |= bit
	}
	return m, nil
}

func modifierBit(word string) (Modifier, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, n := range modifierNames {
		if n.name == word {
			return n.bit, true
		}
	}
	return 0, false
}

// UnmarshalJSON accepts an integer mask, a keyword string, or a list of
// keywords.
func (m *Modifier) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Modifier(n)
		return nil
	}
	var words []string
	if err := json.Unmarshal(data, &words); err == nil {
		v, err := parseModifierWords(words)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "unmarshal modifiers")
	}
	v, err := ParseModifier(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON writes m as a list of keywords.
func (m Modifier) MarshalJSON() ([]byte, error) {
	words := []string{}
	for _, n := range modifierNames {
		if m&n.bit != 0 {
			words = append(words, n.name)
		}
	}
	return json.Marshal(words)
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (m *Modifier) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := node.Decode(&words); err != nil {
			return err
		}
		v, err := parseModifierWords(words)
		if err != nil {
			return err
		}
		*m = v
		return nil
	case yaml.ScalarNode:
		v, err := ParseModifier(node.Value)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}
	return errors.Newf("line %d: modifiers must be a list, keyword or integer", node.Line)
}
