// SPDX-License-Identifier: MIT

// Package sketchrule finds the rule behind a sketch and draws more of it.
//
// A sketch is a tree of primitives: named calls such as rect(0, 0, 10, 10)
// or circle(5, 5, 2), grouped with braces. sketchrule looks at the
// positional parameters of sibling primitives, fits a parameter pattern to
// every column and composes them into an instance pattern that reproduces
// the tree. Running the pattern further extrapolates the sketch.
//
// 🚀 What is in the box?
//
//	primitive/  Value, Primitive, Group, selectors and the primitive DSL
//	param/      cte, lin, prd, op and sine parameter patterns and their search
//	pattern/    instance patterns: search, extrapolation and the pattern DSL
//	lexer/      the shared tokenizer and literal factoring
//	ref/        reference allocation for primitives, groups and patterns
//	bfs/        bounded breadth-first search used by the operator pattern
//	matrix/     LU and least squares used by the sinusoid fit
//	builder/    deterministic synthetic sketches for tests and demos
//	session/    one document, its pattern, its output and an error console
//	config/     YAML configuration
//	logging/    slog setup
//
// The command in cmd/sketchrule wraps all of it: search, extrapolate, fmt,
// batch, demo and an interactive repl.
//
// Quick example:
//
//	{ rect(0, 0, 10, 10). rect(0, 20, 10, 10). }
//	{ rect(20, 0, 10, 10). rect(20, 20, 10, 10). rect(20, 40, 10, 10). }
//
// is described by
//
//	#lin(2, 1)(@4[name:cte(rect), 0:lin(0, 20), 1:cte(0), 2,3:cte(10)]) {
//		@4[name:cte(rect), 0:cte(0), 1:lin(0, 20), 2,3:cte(10)],
//		@4[name:cte(rect), 0:cte(20), 1:lin(0, 20), 2,3:cte(10)]
//	}
//
// and extrapolating it with counts [4, 1] yields four groups of two, three,
// four and five rects.
//
//	go install github.com/katalvlaran/sketchrule/cmd/sketchrule@latest
package sketchrule
