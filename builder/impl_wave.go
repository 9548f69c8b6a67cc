// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Wave appends n circles circle(x0 + i·dx, y0 + A·sin(f·i), w/2), where A
// and f come from WithAmplitude and WithFrequency (radians per sample).
func Wave(n int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodWave, "n", n, MinWavePrimitives); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodWave); err != nil {
			return err
		}
		radius := cfg.coord(cfg.width / 2)
		for i := 0; i < n; i++ {
			y := cfg.originY + cfg.amplitude*math.Sin(cfg.frequency*float64(i))
			root.Append(primitive.New(alloc.Next(), "circle",
				cfg.coord(cfg.originX+float64(i)*cfg.stepX), cfg.coord(y), radius))
		}

		return nil
	}
}
