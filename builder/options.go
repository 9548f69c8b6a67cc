// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves never panic.

package builder

import (
	"math/rand"
)

// Option customizes a build by mutating builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithOrigin sets the position of the first primitive.
func WithOrigin(x, y float64) Option {
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithStep sets the offset between consecutive primitives (and groups).
func WithStep(dx, dy float64) Option {
	return func(c *builderConfig) {
		c.stepX, c.stepY = dx, dy
	}
}

// WithSize sets the width and height of rects and the base length of vectors.
// Panics unless both are positive.
func WithSize(w, h float64) Option {
	if w <= 0 || h <= 0 {
		panic("builder: WithSize(w<=0 || h<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = w, h
	}
}

// WithRand provides an explicit RNG for noisy sketches. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the wave and pulse amplitude. Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the wave angular frequency and the pulse frequency in
// cycles per sample. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithDuty sets the fraction of a pulse period that is on. Panics outside [0,1].
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("builder: WithDuty(duty∉[0,1])")
	}
	return func(c *builderConfig) {
		c.duty = duty
	}
}

// WithNoise adds Gaussian noise with the given sigma to every coordinate.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithPalette sets the colour scheme used by Checker: index -> colour name.
// A nil scheme is ignored.
func WithPalette(fn PaletteFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.palette = fn
		}
	}
}
