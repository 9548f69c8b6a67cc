// SPDX-License-Identifier: MIT

package pattern_test

import (
	"testing"

	"github.com/katalvlaran/sketchrule/builder"
	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/pattern"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

func staircaseFixture(b *testing.B) (*primitive.Group, *ref.Allocator) {
	b.Helper()
	alloc := ref.New()
	root, err := builder.Build(alloc, nil, builder.Staircase(6, 2))
	if err != nil {
		b.Fatal(err)
	}
	return root, alloc
}

// BenchmarkSearch_Staircase measures a two-level search over 6 groups.
func BenchmarkSearch_Staircase(b *testing.B) {
	root, alloc := staircaseFixture(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.Search(root, nil, param.AllKinds, param.DefaultTolerance, alloc)
	}
}

// BenchmarkNextGroup_Staircase measures extrapolating 20 groups.
func BenchmarkNextGroup_Staircase(b *testing.B) {
	root, alloc := staircaseFixture(b)
	found, err := pattern.Search(root, nil, param.AllKinds, param.DefaultTolerance, alloc)
	if err != nil {
		b.Fatal(err)
	}
	starts := []*primitive.Primitive{root.Master()}
	counts := []int{20, 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.NextGroup(starts, found, nil, counts, alloc)
	}
}
