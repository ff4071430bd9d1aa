// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"math"
	"testing"

	"github.com/albertocavalcante/facadoc/model"
)

func TestExportFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0.0"},
		{input: math.Copysign(0, -1), expected: "-0.0"},
		{input: 1, expected: "1.0"},
		{input: 1.5, expected: "1.5"},
		{input: -2.25, expected: "-2.25"},
		{input: 0.5, expected: "0.5"},
		{input: 0.1, expected: "0.1"},
		{input: 0.001, expected: "0.001"},
		{input: 0.0001, expected: "0.0001"},
		{input: 0.00001, expected: "1.0E-5"},
		{input: 0.000012, expected: "1.2E-5"},
		{input: 100, expected: "100.0"},
		{input: 1e16, expected: "10000000000000000.0"},
		{input: 1e17, expected: "1.0E+17"},
		{input: 1.5e20, expected: "1.5E+20"},
		{input: 123456.789, expected: "123456.789"},
		{input: math.Inf(1), expected: "INF"},
		{input: math.Inf(-1), expected: "-INF"},
		{input: math.NaN(), expected: "NAN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := exportFloat(tt.input); got != tt.expected {
				t.Errorf("exportFloat(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExportScalars(t *testing.T) {
	tests := []struct {
		name     string
		value    *model.Value
		expected string
	}{
		{name: "null", value: model.NullValue(), expected: "NULL"},
		{name: "true", value: model.BoolValue(true), expected: "true"},
		{name: "false", value: model.BoolValue(false), expected: "false"},
		{name: "int", value: model.IntValue(-42), expected: "-42"},
		{name: "min int", value: model.IntValue(math.MinInt64), expected: "-9223372036854775807-1"},
		{name: "string", value: model.StringValue("default"), expected: "'default'"},
		{name: "quotes", value: model.StringValue(`it's a \ path`), expected: `'it\'s a \\ path'`},
		{name: "nul byte", value: model.StringValue("a\x00b"), expected: `'a' . "\0" . 'b'`},
		{name: "newline kept", value: model.StringValue("a\nb"), expected: "'a\nb'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exportValue(tt.value); got != tt.expected {
				t.Errorf("exportValue() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExportNestedArray(t *testing.T) {
	v := model.MapValue(
		model.Entry{Key: model.IntKey(0), Value: model.IntValue(1)},
		model.Entry{Key: model.StringKey("key"), Value: model.ListValue(model.NullValue(), model.FloatValue(2))},
	)
	want := "array (\n" +
		"  0 => 1,\n" +
		"  'key' => \n" +
		"  array (\n" +
		"    0 => NULL,\n" +
		"    1 => 2.0,\n" +
		"  ),\n" +
		")"
	if got := exportValue(v); got != want {
		t.Errorf("exportValue() = %q, want %q", got, want)
	}
}

func TestArrayLiteral(t *testing.T) {
	tests := []struct {
		name     string
		value    *model.Value
		expected string
	}{
		{name: "empty", value: model.ListValue(), expected: "[]"},
		{name: "list", value: model.ListValue(model.IntValue(1), model.IntValue(2)), expected: "[1, 2]"},
		{
			name:     "associative",
			value:    model.MapValue(model.Entry{Key: model.StringKey("foo"), Value: model.StringValue("bar")}),
			expected: "['foo' => 'bar']",
		},
		{
			name: "mixed keys",
			value: model.MapValue(
				model.Entry{Key: model.IntKey(5), Value: model.StringValue("a")},
				model.Entry{Key: model.StringKey("k"), Value: model.BoolValue(false)},
			),
			expected: "['a', 'k' => false]",
		},
		{
			name:     "nested null",
			value:    model.ListValue(model.NullValue(), model.StringValue("x")),
			expected: "[NULL, 'x']",
		},
		{
			name:     "nested list",
			value:    model.ListValue(model.ListValue(model.IntValue(1), model.IntValue(2))),
			expected: "[array ( 1, 2, )]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arrayLiteral(tt.value); got != tt.expected {
				t.Errorf("arrayLiteral() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefaultValue(t *testing.T) {
	m := &model.Method{Name: "send", Class: `App\Pusher`}
	tests := []struct {
		name     string
		def      *model.Default
		expected string
	}{
		{name: "none", def: nil, expected: ""},
		{name: "null", def: &model.Default{Kind: model.DefaultNull}, expected: " = null"},
		{name: "scalar null", def: &model.Default{Kind: model.DefaultScalar, Value: model.NullValue()}, expected: " = null"},
		{name: "int", def: &model.Default{Kind: model.DefaultScalar, Value: model.IntValue(60)}, expected: " = 60"},
		{name: "float", def: &model.Default{Kind: model.DefaultScalar, Value: model.FloatValue(1)}, expected: " = 1.0"},
		{name: "bool", def: &model.Default{Kind: model.DefaultScalar, Value: model.BoolValue(true)}, expected: " = true"},
		{
			name:     "self constant",
			def:      &model.Default{Kind: model.DefaultConstant, Constant: "self::TTL", Value: model.IntValue(60)},
			expected: ` = \App\Pusher::TTL`,
		},
		{
			name:     "global constant",
			def:      &model.Default{Kind: model.DefaultConstant, Constant: "PHP_EOL"},
			expected: " = PHP_EOL",
		},
		{
			name:     "array",
			def:      &model.Default{Kind: model.DefaultArray, Value: model.ListValue(model.StringValue("a"))},
			expected: " = ['a']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Parameter{Name: "x", Default: tt.def}
			if got := defaultValue(m, p); got != tt.expected {
				t.Errorf("defaultValue() = %q, want %q", got, tt.expected)
			}
		})
	}
}
