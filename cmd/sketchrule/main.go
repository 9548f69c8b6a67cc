// SPDX-License-Identifier: MIT

// sketchrule finds the rule behind a sketch of primitives and draws more.
//
// Usage:
//
//	sketchrule search FILE [--ids] [--factor N]
//	sketchrule extrapolate FILE [--counts 4,1] [--pattern FILE]
//	sketchrule fmt FILE [--pattern]
//	sketchrule batch FILE... [--jobs N]
//	sketchrule demo NAME [--size N] [--search] [--counts N,...]
//	sketchrule repl
//
// FILE may be "-" for standard input.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
