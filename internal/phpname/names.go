// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package phpname

import "strings"

// Separator is the namespace separator.
const Separator = `\`

// MagicPrefix marks method names reserved for runtime hooks.
const MagicPrefix = "__"

// Qualify returns name with exactly one leading namespace separator.
// Returns empty string for empty input.
func Qualify(name string) string {
	name = Unqualify(name)
	if name == "" {
		return ""
	}
	return Separator + name
}

// Unqualify strips all leading namespace separators from name.
func Unqualify(name string) string {
	return strings.TrimLeft(name, Separator)
}

// IsNamespaced reports whether name contains a namespace separator.
func IsNamespaced(name string) bool {
	return strings.Contains(name, Separator)
}

// Key returns the lookup key for a class name: unqualified and lowercased,
// since class names are case-insensitive.
func Key(name string) string {
	return strings.ToLower(Unqualify(name))
}

// ShortName returns the last segment of a namespaced name.
func ShortName(name string) string {
	name = Unqualify(name)
	if i := strings.LastIndex(name, Separator); i >= 0 {
		return name[i+1:]
	}
	return name
}

// IsMagic reports whether method is a magic-prefixed name like "__call".
func IsMagic(method string) bool {
	return strings.HasPrefix(method, MagicPrefix)
}

// ResolveConstant rewrites a class-relative constant reference to name the
// owning class. "self::LIMIT" with owner "App\Pusher" becomes
// "\App\Pusher::LIMIT"; "static::" is treated the same way. Global constants
// and constants of other classes are returned unchanged.
func ResolveConstant(name, owner string) string {
	class, member, ok := strings.Cut(name, "::")
	if !ok || owner == "" {
		return name
	}
	switch strings.ToLower(class) {
	case TypeSelf, TypeStatic:
		return Qualify(owner) + "::" + member
	}
	return name
}
