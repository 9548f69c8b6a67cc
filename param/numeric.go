// SPDX-License-Identifier: MIT

package param

import (
	"math"

	"github.com/katalvlaran/sketchrule/primitive"
)

// floats converts a numeric column; ok is false if any value is not numeric.
func floats(values []primitive.Value) ([]float64, bool) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float64()
		if !ok {
			return nil, false
		}
		out[i] = f
	}

	return out, true
}

// ptp is max − min.
func ptp(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return hi - lo
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// mse is the mean squared error between observed and predicted.
func mse(observed, predicted []float64) float64 {
	var sum float64
	for i := range observed {
		d := observed[i] - predicted[i]
		sum += d * d
	}

	return sum / float64(len(observed))
}

// confidence maps a mean squared error into (0, 1].
func confidence(err float64, tol Tolerance) float64 {
	c := math.Exp(-err / (1 + tol.Absolute))
	if math.IsNaN(c) || c <= 0 {
		return math.SmallestNonzeroFloat64
	}

	return c
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// add adds two numeric values, staying Int when both are Int.
func add(a, b primitive.Value) primitive.Value {
	if a.Kind() == primitive.IntValue && b.Kind() == primitive.IntValue {
		return primitive.Int(a.AsInt() + b.AsInt())
	}
	x, _ := a.Float64()
	y, _ := b.Float64()

	return primitive.Float(x + y)
}

// scale multiplies a numeric value by n, staying Int for Int values.
func scale(a primitive.Value, n int) primitive.Value {
	if a.Kind() == primitive.IntValue {
		return primitive.Int(a.AsInt() * n)
	}
	x, _ := a.Float64()

	return primitive.Float(x * float64(n))
}

// diff returns a − b, staying Int when both are Int.
func diff(a, b primitive.Value) primitive.Value {
	return add(a, scale(b, -1))
}
