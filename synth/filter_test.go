// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/facadoc/model"
)

func TestDefaultFilter(t *testing.T) {
	assert.False(t, DefaultFilter(&model.Method{Name: "__construct"}))
	assert.False(t, DefaultFilter(&model.Method{Name: "__call"}))
	assert.True(t, DefaultFilter(&model.Method{Name: "_helper"}))
	assert.True(t, DefaultFilter(&model.Method{Name: "send"}))
}

func TestParseFilter(t *testing.T) {
	names := []string{"__call", "send", "sendNow", "flush"}
	tests := []struct {
		spec     string
		expected []string
	}{
		{spec: "", expected: []string{"send", "sendNow", "flush"}},
		{spec: "default", expected: []string{"send", "sendNow", "flush"}},
		{spec: "none", expected: names},
		{spec: "pattern:^send", expected: []string{"send", "sendNow"}},
		{spec: "exclude:^send", expected: []string{"__call", "flush"}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			f, err := ParseFilter(tt.spec)
			require.NoError(t, err)
			var kept []string
			for _, name := range names {
				if f == nil || f(&model.Method{Name: name}) {
					kept = append(kept, name)
				}
			}
			assert.Equal(t, tt.expected, kept)
		})
	}
}

func TestParseFilter_Errors(t *testing.T) {
	for _, spec := range []string{"magic", "pattern:(", "regex:.*"} {
		_, err := ParseFilter(spec)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), spec)
		assert.NotEmpty(t, errors.GetAllHints(err), spec)
	}
}

func TestParseMarkerOrder(t *testing.T) {
	for _, o := range []MarkerOrder{ReferenceFirst, VariadicFirst, VariadicOnly} {
		got, err := ParseMarkerOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	got, err := ParseMarkerOrder("")
	require.NoError(t, err)
	assert.Equal(t, ReferenceFirst, got)

	_, err = ParseMarkerOrder("reference-only")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
