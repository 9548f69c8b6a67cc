// SPDX-License-Identifier: MIT
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   - origin    = (0, 0)
//   - step      = (20, 20)
//   - size      = 10 x 10
//   - rng       = nil (noise disabled unless seeded)
//   - amplitude = 10, frequency = 0.5, duty = 0.5
//   - palette   = MonochromePalette

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sketchrule/primitive"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	originX, originY float64
	stepX, stepY     float64
	width, height    float64

	rng        *rand.Rand
	noiseSigma float64

	amplitude float64
	frequency float64
	duty      float64

	palette PaletteFn
}

const (
	defaultStep       = 20.0
	defaultSize       = 10.0
	defaultAmplitude  = 10.0
	defaultFrequency  = 0.5
	defaultDuty       = 0.5
	defaultNoiseSigma = 0.0
)

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		stepX:      defaultStep,
		stepY:      defaultStep,
		width:      defaultSize,
		height:     defaultSize,
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		duty:       defaultDuty,
		noiseSigma: defaultNoiseSigma,
		palette:    MonochromePalette,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// checkNoise fails when noise is on without a random source.
func (c builderConfig) checkNoise(method string) error {
	if c.noiseSigma > 0 && c.rng == nil {
		return builderErrorf(method, "noise sigma %g: %w", c.noiseSigma, ErrNeedRandSource)
	}

	return nil
}

// coord returns v plus noise as a primitive value; noiseless whole numbers
// stay integers so that the sketch reads naturally.
func (c builderConfig) coord(v float64) primitive.Value {
	if c.noiseSigma > 0 {
		return primitive.Float(v + c.noiseSigma*c.rng.NormFloat64())
	}
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return primitive.Int(int(v))
	}

	return primitive.Float(v)
}
