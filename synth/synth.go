// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package synth synthesizes facade method-signature blocks.
//
// A Synthesizer is built from one or more classes, configured with setters
// (modifier mask, excluded names, filter predicate, extra lines, see
// references) and then asked to Generate a docblock:
//
//	/**
//	 * @method static \App\Token send(string|array $tokens, int $ttl = 60)
//	 *
//	 * @see \App\Pusher
//	 */
//
// Method metadata comes from an Introspector; *model.Catalog is the
// implementation used by the command line tool.
package synth

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/facadoc/internal/phpname"
	"github.com/albertocavalcante/facadoc/model"
)

// Introspector supplies class and method metadata.
type Introspector interface {
	// ResolveClass returns the descriptor for a class name.
	ResolveClass(name string) (*model.Class, error)

	// Methods lists the methods of class whose modifiers share a bit with mask.
	Methods(class *model.Class, mask model.Modifier) []*model.Method

	// ClassExists reports whether name resolves to an existing class.
	ClassExists(name string) bool
}

type extra struct {
	pos Position
	doc string
}

// Synthesizer aggregates methods of its classes into a signature block.
//
// A Synthesizer is not safe for concurrent use.
type Synthesizer struct {
	in       Introspector
	classes  *orderedMap[*model.Class]
	modifier model.Modifier
	excluded map[string]bool
	filter   FilterFunc
	extras   []extra
	see      []string
	markers  MarkerOrder
	log      *zap.Logger
}

// New resolves classes through in and returns a synthesizer with the default
// configuration: public methods, DefaultFilter, no extras. Registering the
// same class twice keeps the first registration.
func New(in Introspector, classes ...string) (*Synthesizer, error) {
	if in == nil {
		return nil, invalidf("nil introspector")
	}
	if len(classes) == 0 {
		return nil, invalidf("no classes given")
	}

	s := &Synthesizer{
		in:       in,
		classes:  newOrderedMap[*model.Class](),
		modifier: model.IsPublic,
		excluded: make(map[string]bool),
		filter:   DefaultFilter,
		log:      zap.NewNop(),
	}
	for _, name := range classes {
		cls, err := in.ResolveClass(name)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "resolve %q", name), ErrResolution)
		}
		s.classes.setIfAbsent(phpname.Key(cls.Name), cls)
	}
	return s, nil
}

// WithLogger sets the logger used to report dropped methods and unplaced
// extra lines. A nil logger disables logging.
func (s *Synthesizer) WithLogger(log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
	return s
}

// SetModifier sets the modifier mask selecting methods. The mask must be
// non-zero and use only known bits.
func (s *Synthesizer) SetModifier(mask model.Modifier) error {
	if !mask.Valid() {
		return errors.WithHint(
			invalidf("invalid modifier mask %d", int(mask)),
			"combine public, protected, private, static, final and abstract")
	}
	s.modifier = mask
	return nil
}

// Modifier returns the active modifier mask.
func (s *Synthesizer) Modifier() model.Modifier {
	return s.modifier
}

// Exclude adds method names to the exclusion set. Names match exactly.
func (s *Synthesizer) Exclude(names ...string) *Synthesizer {
	for _, name := range names {
		s.excluded[name] = true
	}
	return s
}

// Filter sets the method predicate. nil keeps every method.
func (s *Synthesizer) Filter(f FilterFunc) *Synthesizer {
	s.filter = f
	return s
}

// Add appends an extra line after all method lines.
func (s *Synthesizer) Add(doc string) *Synthesizer {
	s.extras = append(s.extras, extra{pos: End(), doc: doc})
	return s
}

// AddAt places an extra line at pos. Lines sharing a position keep their
// insertion order.
func (s *Synthesizer) AddAt(pos Position, doc string) error {
	if err := pos.validate(); err != nil {
		return err
	}
	s.extras = append(s.extras, extra{pos: pos, doc: doc})
	return nil
}

// See replaces the see references. With no arguments the registered classes
// are used.
func (s *Synthesizer) See(classes ...string) *Synthesizer {
	s.see = append([]string(nil), classes...)
	return s
}

// SetMarkerOrder sets how variadic and by-reference markers combine.
func (s *Synthesizer) SetMarkerOrder(o MarkerOrder) error {
	if !o.valid() {
		return invalidf("unknown marker order %d", int(o))
	}
	s.markers = o
	return nil
}

// Classes returns the registered class names in registration order.
func (s *Synthesizer) Classes() []string {
	classes := s.classes.values()
	names := make([]string, len(classes))
	for i, cls := range classes {
		names[i] = cls.Name
	}
	return names
}

// SeeReferences returns the classes emitted as see references.
func (s *Synthesizer) SeeReferences() []string {
	if len(s.see) > 0 {
		return append([]string(nil), s.see...)
	}
	return s.Classes()
}

// Methods returns the formatted method lines followed by the extra lines,
// de-duplicated by exact text.
func (s *Synthesizer) Methods() []string {
	return s.assemble(s.aggregate())
}

// Generate returns the docblock. It always succeeds; with no surviving
// methods the block holds only the see references.
func (s *Synthesizer) Generate() string {
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range s.Methods() {
		b.WriteString(" * @method static ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" *\n")
	for _, class := range s.SeeReferences() {
		b.WriteString(" * @see ")
		b.WriteString(phpname.Separator + phpname.Unqualify(class))
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

// String returns Generate().
func (s *Synthesizer) String() string {
	return s.Generate()
}
