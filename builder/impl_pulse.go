// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Pulse appends n vertical lines line(x, y0, x, y0 + h) at x = x0 + i·dx.
// The height is a rectangular pulse: A while frac(i·f) < duty, else 0, with
// f from WithFrequency in cycles per sample.
func Pulse(n int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodPulse, "n", n, MinPulseLines); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodPulse); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			h := 0.0
			if math.Mod(float64(i)*cfg.frequency, 1) < cfg.duty {
				h = cfg.amplitude
			}
			x := cfg.originX + float64(i)*cfg.stepX
			root.Append(primitive.New(alloc.Next(), "line",
				cfg.coord(x), cfg.coord(cfg.originY), cfg.coord(x), cfg.coord(cfg.originY+h)))
		}

		return nil
	}
}
