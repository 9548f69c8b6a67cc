// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Checker appends one group per row, each holding cols rects
// rect(x0 + c·dx, y0 + r·dy, w, h, colour) with colour = palette(r + c).
func Checker(rows, cols int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodChecker, "rows", rows, MinCheckerDim); err != nil {
			return err
		}
		if err := validateMin(MethodChecker, "cols", cols, MinCheckerDim); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodChecker); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			row := primitive.NewGroup(alloc.Next())
			y := cfg.originY + float64(r)*cfg.stepY
			for c := 0; c < cols; c++ {
				row.Append(cfg.rect(alloc, cfg.originX+float64(c)*cfg.stepX, y,
					primitive.String(cfg.palette(r+c))))
			}
			root.Append(row)
		}

		return nil
	}
}
