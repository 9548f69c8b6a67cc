// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/sketchrule/builder"
	"github.com/katalvlaran/sketchrule/ref"
)

// BenchmarkBuild_Checker measures a 32x32 checker board.
func BenchmarkBuild_Checker(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(ref.New(), nil, builder.Checker(32, 32))
	}
}

// BenchmarkBuild_NoisyWave measures a seeded noisy wave.
func BenchmarkBuild_NoisyWave(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(ref.New(), []builder.Option{builder.WithSeed(1), builder.WithNoise(0.1)}, builder.Wave(256))
	}
}
