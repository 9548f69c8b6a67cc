// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Staircase appends groups columns of rects. Group i holds first + i rects
// stacked at x0 + i·dx; child j sits at y0 + j·dy.
func Staircase(groups, first int) Constructor {
	return func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error {
		if err := validateMin(MethodStaircase, "groups", groups, MinStaircaseGroups); err != nil {
			return err
		}
		if err := validateMin(MethodStaircase, "first", first, MinStaircaseFirst); err != nil {
			return err
		}
		if err := cfg.checkNoise(MethodStaircase); err != nil {
			return err
		}
		for i := 0; i < groups; i++ {
			g := primitive.NewGroup(alloc.Next())
			x := cfg.originX + float64(i)*cfg.stepX
			for j := 0; j < first+i; j++ {
				g.Append(cfg.rect(alloc, x, cfg.originY+float64(j)*cfg.stepY))
			}
			root.Append(g)
		}

		return nil
	}
}
