// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the class catalog consumed by the signature
// synthesizer.
//
// A catalog is a metadata dump produced by the target platform's reflection
// facility: every class with its declared methods, parameters, types, default
// values and doc comments. It is read from JSON or YAML; both decoders keep
// the order of methods, parameters and array entries.
package model

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Catalog is the set of classes known to the synthesizer.
type Catalog struct {
	// Classes lists every dumped class, interface and trait.
	Classes []*Class `json:"classes" yaml:"classes"`

	// KnownClasses names classes that exist but whose methods were not dumped
	// (typically third-party classes referenced by parameter types).
	KnownClasses []string `json:"knownClasses,omitempty" yaml:"knownClasses,omitempty"`

	once  sync.Once
	index map[string]*Class
	known map[string]bool
}

// Class describes a class, interface or trait.
type Class struct {
	// Name is the fully-qualified name without a leading separator
	// (e.g., "App\Notification\Pusher").
	Name string `json:"name" yaml:"name"`

	// Extends is the parent class, if any.
	Extends string `json:"extends,omitempty" yaml:"extends,omitempty"`

	// Implements lists implemented interfaces (for interfaces: the extended ones).
	Implements []string `json:"implements,omitempty" yaml:"implements,omitempty"`

	// Traits lists used traits in use order.
	Traits []string `json:"traits,omitempty" yaml:"traits,omitempty"`

	Interface bool `json:"interface,omitempty" yaml:"interface,omitempty"`
	Trait     bool `json:"trait,omitempty" yaml:"trait,omitempty"`

	// Methods lists the methods declared by this class, in declaration order.
	Methods []*Method `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// Method describes a declared method.
type Method struct {
	Name string `json:"name" yaml:"name"`

	// Class is the declaring class. Filled from the enclosing class when empty.
	Class string `json:"class,omitempty" yaml:"class,omitempty"`

	// Modifiers defaults to public when no visibility keyword is given.
	Modifiers Modifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`

	// Return is the declared return type; nil when undeclared.
	Return *Type `json:"return,omitempty" yaml:"return,omitempty"`

	Params []*Parameter `json:"params,omitempty" yaml:"params,omitempty"`

	// Doc is the raw doc comment, including the /** */ delimiters.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Parameter describes a method parameter.
type Parameter struct {
	Name     string   `json:"name" yaml:"name"`
	Type     *Type    `json:"type,omitempty" yaml:"type,omitempty"`
	Variadic bool     `json:"variadic,omitempty" yaml:"variadic,omitempty"`
	ByRef    bool     `json:"byRef,omitempty" yaml:"byRef,omitempty"`
	Default  *Default `json:"default,omitempty" yaml:"default,omitempty"`
}

// Type represents a declared type.
//
// A named type sets Name and optionally Nullable. A union sets Union; each
// member is itself a named type. A nil *Type means "no declared type".
type Type struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Nullable bool    `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Union    []*Type `json:"union,omitempty" yaml:"union,omitempty"`
}

// ParseType parses the reflection string form of a type: "int", "?Foo",
// "A|B|null". Returns nil for an empty string.
func ParseType(s string) *Type {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Contains(s, "|") {
		parts := strings.Split(s, "|")
		t := &Type{Union: make([]*Type, 0, len(parts))}
		for _, p := range parts {
			t.Union = append(t.Union, parseNamed(p))
		}
		return t
	}
	return parseNamed(s)
}

func parseNamed(s string) *Type {
	if rest, ok := strings.CutPrefix(s, "?"); ok {
		return &Type{Name: rest, Nullable: true}
	}
	return &Type{Name: s}
}

// String returns the reflection string form of t. A nil type yields "".
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	if len(t.Union) > 0 {
		parts := make([]string, len(t.Union))
		for i, item := range t.Union {
			parts[i] = item.String()
		}
		return strings.Join(parts, "|")
	}
	if t.Nullable {
		return "?" + t.Name
	}
	return t.Name
}

// IsUnion reports whether t has more than one member.
func (t *Type) IsUnion() bool {
	return t != nil && len(t.Union) > 1
}

// UnmarshalJSON accepts the string form or an object.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed := ParseType(s); parsed != nil {
			*t = *parsed
		} else {
			*t = Type{}
		}
		return nil
	}
	type plain Type
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "unmarshal type")
	}
	*t = Type(raw)
	return nil
}

// MarshalJSON writes the string form.
func (t *Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalYAML accepts the string form or a mapping.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if parsed := ParseType(node.Value); parsed != nil {
			*t = *parsed
		} else {
			*t = Type{}
		}
		return nil
	}
	type plain Type
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*t = Type(raw)
	return nil
}

// DefaultKind tags the variant of a Default.
type DefaultKind string

const (
	DefaultNull     DefaultKind = "null"
	DefaultScalar   DefaultKind = "scalar"
	DefaultArray    DefaultKind = "array"
	DefaultConstant DefaultKind = "constant"
)

// Default is a parameter's default value.
type Default struct {
	Kind DefaultKind `json:"kind" yaml:"kind"`

	// Value is the evaluated value. For constants it is optional.
	Value *Value `json:"value,omitempty" yaml:"value,omitempty"`

	// Constant is the symbolic constant name for DefaultConstant,
	// e.g. "PHP_INT_MAX" or "self::LIMIT".
	Constant string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Validate checks the kind and the fields it requires.
func (d *Default) Validate() error {
	switch d.Kind {
	case DefaultNull:
		return nil
	case DefaultScalar:
		if d.Value != nil && d.Value.Kind == Array {
			return errors.New("scalar default holds an array")
		}
		return nil
	case DefaultArray:
		if d.Value == nil || d.Value.Kind != Array {
			return errors.New("array default requires an array value")
		}
		return nil
	case DefaultConstant:
		if d.Constant == "" {
			return errors.New("constant default requires a name")
		}
		return nil
	}
	return errors.Newf("unknown default kind: %q", d.Kind)
}

// UnmarshalJSON decodes and validates a default.
func (d *Default) UnmarshalJSON(data []byte) error {
	type plain Default
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "unmarshal default")
	}
	*d = Default(raw)
	return d.Validate()
}

// UnmarshalYAML decodes and validates a default.
func (d *Default) UnmarshalYAML(node *yaml.Node) error {
	type plain Default
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = Default(raw)
	if err := d.Validate(); err != nil {
		return errors.Wrapf(err, "line %d", node.Line)
	}
	return nil
}
