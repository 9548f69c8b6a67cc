// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Doubling appends n horizontal vectors vector(x0, y0 + i·dy, w·2^i, 0).
// The length column is the sequence the operator pattern recovers as "/".
func Doubling(n int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodDoubling, "n", n, MinDoublingVectors); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodDoubling); err != nil {
			return err
		}
		length := cfg.width
		for i := 0; i < n; i++ {
			root.Append(primitive.New(alloc.Next(), "vector",
				cfg.coord(cfg.originX), cfg.coord(cfg.originY+float64(i)*cfg.stepY),
				cfg.coord(length), cfg.coord(0)))
			length *= 2
		}

		return nil
	}
}
