// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/facadoc/internal/phpname"
)

// ErrUnknownClass is the mark carried by errors for names missing from the catalog.
var ErrUnknownClass = errors.New("unknown class")

func (c *Catalog) buildIndex() {
	c.once.Do(func() {
		c.index = make(map[string]*Class, len(c.Classes))
		c.known = make(map[string]bool, len(c.KnownClasses))
		for _, cls := range c.Classes {
			key := phpname.Key(cls.Name)
			if _, dup := c.index[key]; dup {
				continue
			}
			c.index[key] = cls
			for _, m := range cls.Methods {
				if m.Class == "" {
					m.Class = phpname.Unqualify(cls.Name)
				}
				if m.Modifiers&VisibilityMask == 0 {
					m.Modifiers |= IsPublic
				}
			}
		}
		for _, name := range c.KnownClasses {
			c.known[phpname.Key(name)] = true
		}
	})
}

// Lookup returns the class, interface or trait named name. The lookup is
// case-insensitive and ignores a leading separator.
func (c *Catalog) Lookup(name string) (*Class, bool) {
	c.buildIndex()
	cls, ok := c.index[phpname.Key(name)]
	return cls, ok
}

// ResolveClass returns the descriptor for name or an error marked with
// ErrUnknownClass.
func (c *Catalog) ResolveClass(name string) (*Class, error) {
	if strings.TrimLeft(name, phpname.Separator) == "" {
		return nil, errors.Mark(errors.New("empty class name"), ErrUnknownClass)
	}
	cls, ok := c.Lookup(name)
	if !ok {
		err := errors.Mark(errors.Newf("class %q not found in catalog", name), ErrUnknownClass)
		return nil, errors.WithHint(err, "regenerate the catalog or add the class to knownClasses")
	}
	return cls, nil
}

// ClassExists reports whether name is a concrete class: a dumped class
// (interfaces and traits excluded), a known class, or a builtin class.
func (c *Catalog) ClassExists(name string) bool {
	if name == "" || phpname.IsBuiltinType(name) {
		return false
	}
	if cls, ok := c.Lookup(name); ok {
		return !cls.Interface && !cls.Trait
	}
	if c.known[phpname.Key(name)] {
		return true
	}
	return phpname.IsBuiltinClass(name)
}

// Methods returns the methods available on class whose modifiers share a bit
// with mask.
//
// The order is: declared methods, methods of used traits (owned by the using
// class), inherited parent methods, then interface methods. A name seen
// earlier hides later methods of the same name, compared case-insensitively.
func (c *Catalog) Methods(class *Class, mask Modifier) []*Method {
	c.buildIndex()
	var (
		out     []*Method
		seen    = make(map[string]bool)
		visited = make(map[string]bool)
	)
	add := func(m *Method) {
		key := strings.ToLower(m.Name)
		if seen[key] {
			return
		}
		seen[key] = true
		if m.Modifiers&mask != 0 {
			out = append(out, m)
		}
	}
	c.collect(class, visited, add)
	return out
}

func (c *Catalog) collect(class *Class, visited map[string]bool, add func(*Method)) {
	key := phpname.Key(class.Name)
	if visited[key] {
		return
	}
	visited[key] = true

	for _, m := range class.Methods {
		add(m)
	}
	for _, name := range class.Traits {
		trait, ok := c.Lookup(name)
		if !ok {
			continue
		}
		c.collectTrait(trait, class, visited, add)
	}
	if class.Extends != "" {
		if parent, ok := c.Lookup(class.Extends); ok {
			c.collect(parent, visited, add)
		}
	}
	for _, name := range class.Implements {
		if iface, ok := c.Lookup(name); ok {
			c.collect(iface, visited, add)
		}
	}
}

// collectTrait adds the methods of trait as if declared by user.
func (c *Catalog) collectTrait(trait, user *Class, visited map[string]bool, add func(*Method)) {
	key := phpname.Key(trait.Name)
	if visited[key] {
		return
	}
	visited[key] = true

	owner := phpname.Unqualify(user.Name)
	for _, m := range trait.Methods {
		copied := *m
		copied.Class = owner
		add(&copied)
	}
	for _, name := range trait.Traits {
		if nested, ok := c.Lookup(name); ok {
			c.collectTrait(nested, user, visited, add)
		}
	}
}
