// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build facadoc_full

package main

import (
	"github.com/albertocavalcante/facadoc/generator"
	"github.com/albertocavalcante/facadoc/generators/jsonsig"
	"github.com/albertocavalcante/facadoc/generators/methods"
	"github.com/albertocavalcante/facadoc/generators/phpdoc"
)

func init() {
	// Full build: all generators embedded
	generator.Register(phpdoc.NewGenerator())
	generator.Register(methods.NewGenerator())
	generator.Register(jsonsig.NewGenerator())
}
