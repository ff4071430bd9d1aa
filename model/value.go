// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	Null ValueKind = iota
	Bool
	Int
	Float
	String
	Array
)

var valueKindNames = [...]string{"null", "bool", "int", "float", "string", "array"}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a literal value as the reflection facility reports it for
// parameter defaults: null, a scalar, or an ordered array whose keys are
// integers or strings.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Items []Entry // for Array, in insertion order
}

// Key is an array key. Integer-like string keys are stored as integers, the
// way the runtime normalizes them.
type Key struct {
	Str      string
	Int      int64
	IsString bool
}

// Entry is one key/value pair of an Array value.
type Entry struct {
	Key   Key
	Value *Value
}

// NullValue returns the null value.
func NullValue() *Value { return &Value{Kind: Null} }

// BoolValue returns a boolean value.
func BoolValue(b bool) *Value { return &Value{Kind: Bool, Bool: b} }

// IntValue returns an integer value.
func IntValue(i int64) *Value { return &Value{Kind: Int, Int: i} }

// FloatValue returns a float value.
func FloatValue(f float64) *Value { return &Value{Kind: Float, Float: f} }

// StringValue returns a string value.
func StringValue(s string) *Value { return &Value{Kind: String, Str: s} }

// ListValue returns an array with sequential integer keys starting at 0.
func ListValue(items ...*Value) *Value {
	v := &Value{Kind: Array, Items: []Entry{}}
	for _, item := range items {
		v.Append(item)
	}
	return v
}

// MapValue returns an array built from entries in order. Later entries with
// an existing key replace the earlier value in place.
func MapValue(entries ...Entry) *Value {
	v := &Value{Kind: Array, Items: []Entry{}}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// IntKey returns an integer key.
func IntKey(i int64) Key { return Key{Int: i} }

// StringKey returns the key for s, normalized to an integer key when s is a
// canonical decimal integer ("5" but not "05" or "+5").
func StringKey(s string) Key {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return Key{Int: i}
	}
	return Key{Str: s, IsString: true}
}

// Append adds item under the next integer key: one past the largest integer
// key so far, or 0.
func (v *Value) Append(item *Value) {
	next := int64(0)
	for _, e := range v.Items {
		if !e.Key.IsString && e.Key.Int >= next {
			next = e.Key.Int + 1
		}
	}
	v.Items = append(v.Items, Entry{Key: IntKey(next), Value: item})
}

// Set stores item under key, keeping the original position of an existing key.
func (v *Value) Set(key Key, item *Value) {
	for i, e := range v.Items {
		if e.Key == key {
			v.Items[i].Value = item
			return
		}
	}
	v.Items = append(v.Items, Entry{Key: key, Value: item})
}

// IsNull reports whether v is nil or the null value.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == Null
}

// UnmarshalJSON decodes any JSON value. Objects keep their key order.
// Numbers without a fraction or exponent decode as integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	decoded, err := decodeJSONValue(dec)
	if err != nil {
		return errors.Wrap(err, "unmarshal value")
	}
	*v = *decoded
	return nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return numberValue(t.String())
	case json.Delim:
		switch t {
		case '[':
			list := ListValue()
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list.Append(item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		case '{':
			m := MapValue()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, errors.Newf("unexpected object key %v", keyTok)
				}
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(StringKey(key), item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return nil, errors.Newf("unexpected token %v", tok)
}

func numberValue(s string) (*Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntValue(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse number %q", s)
	}
	return FloatValue(f), nil
}

// MarshalJSON encodes v. Arrays with sequential integer keys become JSON
// arrays, every other array becomes an object.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Null:
		return []byte("null"), nil
	case Bool:
		return json.Marshal(v.Bool)
	case Int:
		return json.Marshal(v.Int)
	case Float:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return json.Marshal(strconv.FormatFloat(v.Float, 'g', -1, 64))
		}
		return json.Marshal(v.Float)
	case String:
		return json.Marshal(v.Str)
	}

	var buf bytes.Buffer
	if v.isList() {
		buf.WriteByte('[')
		for i, e := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := e.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	buf.WriteByte('{')
	for i, e := range v.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		key := e.Key.Str
		if !e.Key.IsString {
			key = strconv.FormatInt(e.Key.Int, 10)
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		data, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v *Value) isList() bool {
	for i, e := range v.Items {
		if e.Key.IsString || e.Key.Int != int64(i) {
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a YAML node, keeping mapping order.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeYAMLValue(node)
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}

func decodeYAMLValue(node *yaml.Node) (*Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NullValue(), nil
		}
		return decodeYAMLValue(node.Content[0])
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	case yaml.SequenceNode:
		list := ListValue()
		for _, item := range node.Content {
			decoded, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}
			list.Append(decoded)
		}
		return list, nil
	case yaml.MappingNode:
		m := MapValue()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			item, err := decodeYAMLValue(valNode)
			if err != nil {
				return nil, err
			}
			m.Set(yamlKey(keyNode), item)
		}
		return m, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node)
	}
	return nil, errors.Newf("line %d: unsupported YAML node", node.Line)
}

func yamlKey(node *yaml.Node) Key {
	if node.ShortTag() == "!!int" {
		var i int64
		if err := node.Decode(&i); err == nil {
			return IntKey(i)
		}
	}
	return StringKey(node.Value)
}

func decodeYAMLScalar(node *yaml.Node) (*Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return BoolValue(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, err
		}
		return IntValue(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return FloatValue(f), nil
	}
	return StringValue(node.Value), nil
}
