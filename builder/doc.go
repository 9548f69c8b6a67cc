// SPDX-License-Identifier: MIT

// Package builder produces deterministic synthetic sketches: primitive trees
// with a known generative rule, used as fixtures by tests, benchmarks and
// the CLI demo command.
//
// Build resolves functional options into a builderConfig and runs a list of
// constructors, in order, against one root group:
//
//	root, err := builder.Build(alloc, []builder.Option{builder.WithStep(15, 0)},
//		builder.Row(5), builder.Wave(8))
//
// Constructors:
//
//   - Row:       n rects stepping by the configured step (linear x).
//   - Staircase: groups of first, first+1, ... rects (linear group sizes).
//   - Wave:      circles whose y follows A·sin(f·i) (sinusoidal y).
//   - Doubling:  vectors whose length doubles (operator "/").
//   - Pulse:     vertical lines with a rectangular on/off height (periodic).
//   - Checker:   rows of rects coloured by the palette (periodic strings).
//
// Same inputs and options always produce the same tree. Noise (WithNoise)
// requires an RNG from WithSeed or WithRand; constructors report
// ErrNeedRandSource otherwise.
//
// Option constructors panic on meaningless arguments. Constructors never
// panic; they return sentinel errors wrapped with their method name.
package builder
