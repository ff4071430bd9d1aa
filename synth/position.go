// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cockroachdb/errors"
)

// Relation says where an extra line goes relative to its target method.
type Relation int

const (
	// AtEnd appends the line after every method line.
	AtEnd Relation = iota
	// BeforeMethod places the line immediately before the target method's line.
	BeforeMethod
	// AfterMethod places the line immediately after the target method's line.
	AfterMethod
)

// Position locates an extra line in the generated method list.
type Position struct {
	Relation Relation
	Method   string
}

// End returns the unpositioned location.
func End() Position { return Position{} }

// Before returns the location right before method's line.
func Before(method string) Position { return Position{Relation: BeforeMethod, Method: method} }

// After returns the location right after method's line.
func After(method string) Position { return Position{Relation: AfterMethod, Method: method} }

// String returns the textual key accepted by ParsePosition.
func (p Position) String() string {
	switch p.Relation {
	case BeforeMethod:
		return "before:" + p.Method
	case AfterMethod:
		return "after:" + p.Method
	}
	return "end"
}

func (p Position) validate() error {
	switch p.Relation {
	case AtEnd:
		return nil
	case BeforeMethod, AfterMethod:
		if p.Method == "" {
			return invalidf("position %q needs a method name", p.String())
		}
		return nil
	}
	return invalidf("unknown position relation %d", int(p.Relation))
}

// positionKey is the grammar of a textual position:
//
//	end
//	before:<method>
//	after:<method>
type positionKey struct {
	End      bool         `parser:"  @'end'"`
	Relative *relativeKey `parser:"| @@"`
}

type relativeKey struct {
	Relation string `parser:"@('before' | 'after') ':'"`
	Method   string `parser:"@Ident"`
}

var positionParser = participle.MustBuild[positionKey](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[\pL_][\pL\pN_]*`},
		{Name: "Punct", Pattern: `:`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// ParsePosition parses "end", "before:<method>" or "after:<method>". An
// empty string means End.
func ParsePosition(s string) (Position, error) {
	if strings.TrimSpace(s) == "" {
		return End(), nil
	}
	key, err := positionParser.ParseString("", s)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "parse position %q", s), ErrInvalidConfiguration)
		return Position{}, errors.WithHint(err, `use "end", "before:<method>" or "after:<method>"`)
	}
	if key.End {
		return End(), nil
	}
	if strings.EqualFold(key.Relative.Relation, "before") {
		return Before(key.Relative.Method), nil
	}
	return After(key.Relative.Method), nil
}
