// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format is a catalog serialization format.
type Format string

const (
	// FormatAuto detects the format from the content.
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the format implied by a file extension, or
// FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// ParseCatalog decodes a catalog. With FormatAuto, content starting with "{"
// is JSON and anything else YAML.
func ParseCatalog(data []byte, format Format) (*Catalog, error) {
	if format == FormatAuto {
		format = FormatYAML
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var c Catalog
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "parse JSON catalog")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "parse YAML catalog")
		}
	default:
		return nil, errors.Newf("unknown catalog format %q", format)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate checks names the index relies on.
func (c *Catalog) validate() error {
	for i, cls := range c.Classes {
		if strings.TrimLeft(cls.Name, `\`) == "" {
			return errors.Newf("class #%d has no name", i)
		}
		for j, m := range cls.Methods {
			if m.Name == "" {
				return errors.Newf("class %s: method #%d has no name", cls.Name, j)
			}
			for k, p := range m.Params {
				if p.Name == "" {
					return errors.Newf("method %s::%s: parameter #%d has no name", cls.Name, m.Name, k)
				}
			}
		}
	}
	return nil
}
