// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command facadoc generates the @method docblock of PHP facades from a class
// catalog.
//
// Usage:
//
//	facadoc generate --catalog catalog.json --class 'App\Pusher' [flags]
//	facadoc update   --class 'App\Pusher' --facade app/Facades/Pusher.php
//	facadoc check    --config facadoc.yaml
//	facadoc generators
//
// Flags:
//
//	--catalog       Catalog file, "-" for stdin, or URL (default: .facadoc/catalog.json)
//	--class         Source class (repeatable)
//	--format        Output format (default: phpdoc)
//	--modifier      Method modifiers to include (default: public)
//	--exclude       Method names to leave out
//	--filter        default, none, pattern:<re> or exclude:<re>
//	--add           Extra line appended at the end
//	--add-before    METHOD=LINE inserted before a method line
//	--add-after     METHOD=LINE inserted after a method line
//	--see           See references (default: the classes)
//	--markers       reference-first, variadic-first or variadic-only
//	-o, --output    Output directory or file (default: stdout)
//	--config        Job file (YAML, TOML or JSON)
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitError = 1
	exitStale = 2
)

// errStale is returned by check when a facade docblock is out of date.
var errStale = errors.New("facade docblock is stale")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and returns the process exit code.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errStale):
		return exitStale
	}
	fmt.Fprintf(w, "error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
	return exitError
}
