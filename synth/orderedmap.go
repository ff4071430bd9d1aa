// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

// orderedMap maintains insertion order for deterministic output.
type orderedMap[T any] struct {
	m     map[string]T
	order []string
}

func newOrderedMap[T any]() *orderedMap[T] {
	return &orderedMap[T]{
		m: make(map[string]T),
	}
}

// setIfAbsent stores value under key unless key is present. Reports whether
// it stored.
func (m *orderedMap[T]) setIfAbsent(key string, value T) bool {
	if _, exists := m.m[key]; exists {
		return false
	}
	m.order = append(m.order, key)
	m.m[key] = value
	return true
}

// values returns the values in insertion order.
func (m *orderedMap[T]) values() []T {
	out := make([]T, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.m[k])
	}
	return out
}
