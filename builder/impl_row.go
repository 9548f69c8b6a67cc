// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Row appends n rects rect(x0 + i·dx, y0, w, h) directly to the root.
func Row(n int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodRow, "n", n, MinRowPrimitives); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodRow); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			root.Append(cfg.rect(alloc, cfg.originX+float64(i)*cfg.stepX, cfg.originY))
		}

		return nil
	}
}

// rect builds rect(x, y, w, h) with the configured size.
func (c builderConfig) rect(alloc *ref.Allocator, x, y float64, extra ...primitive.Value) *primitive.Primitive {
	params := append([]primitive.Value{c.coord(x), c.coord(y), c.coord(c.width), c.coord(c.height)}, extra...)
	return primitive.New(alloc.Next(), "rect", params...)
}
