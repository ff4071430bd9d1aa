// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import "github.com/cockroachdb/errors"

// Error marks. Test with errors.Is.
var (
	// ErrResolution marks a class identifier that could not be resolved.
	ErrResolution = errors.New("class resolution failed")

	// ErrInvalidConfiguration marks a setter argument outside its contract.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func invalidf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidConfiguration)
}
