// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/facadoc/internal/phpname"
	"github.com/albertocavalcante/facadoc/model"
)

// FilterFunc decides whether a method is kept. A nil FilterFunc keeps every
// method.
type FilterFunc func(m *model.Method) bool

// DefaultFilter drops magic methods (names starting with "__").
func DefaultFilter(m *model.Method) bool {
	return !phpname.IsMagic(m.Name)
}

// ParseFilter turns a textual filter into a FilterFunc:
//
//	default            DefaultFilter
//	none               nil (keep all)
//	pattern:<regexp>   keep methods whose name matches
//	exclude:<regexp>   drop methods whose name matches
//
// An empty string means default.
func ParseFilter(spec string) (FilterFunc, error) {
	spec = strings.TrimSpace(spec)
	switch strings.ToLower(spec) {
	case "", "default":
		return DefaultFilter, nil
	case "none":
		return nil, nil
	}

	kind, expr, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, filterError(spec, errors.New("unknown filter"))
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, filterError(spec, err)
	}
	switch strings.ToLower(kind) {
	case "pattern":
		return func(m *model.Method) bool { return re.MatchString(m.Name) }, nil
	case "exclude":
		return func(m *model.Method) bool { return !re.MatchString(m.Name) }, nil
	}
	return nil, filterError(spec, errors.Newf("unknown filter kind %q", kind))
}

func filterError(spec string, cause error) error {
	err := errors.Mark(errors.Wrapf(cause, "filter %q", spec), ErrInvalidConfiguration)
	return errors.WithHint(err, `use "default", "none", "pattern:<regexp>" or "exclude:<regexp>"`)
}
