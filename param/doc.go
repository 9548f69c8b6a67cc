// SPDX-License-Identifier: MIT

// Package param fits models to one parameter column (the values one selector
// takes across a run of sibling primitives) and extrapolates them.
//
// Models, in order of preference (weight):
//
//	Constant    1.00  every value equal within tolerance
//	Linear      0.95  constant first difference
//	Periodic    0.90  shortest repeating block
//	Operator    0.85  chain of pairwise + - * / transforms ending in a constant
//	Sinusoidal  0.80  amp·sin(freq·t + phase) + mean, least squares
//
// Contract
//
//   - Kind.MinimumParameters: columns shorter than this never fit.
//   - Kind.Apply(values, flags, tol): a fitted Pattern or false. Pure.
//   - Pattern.Next(start, nth): the nth value of the continued sequence,
//     anchored at start when start is not None. With start set to the
//     column's first value, nth = 0, 1, ... reproduces the column.
//   - Pattern.Confidence: exp(−mse / (1 + tol.Absolute)) computed at fit
//     time; exact string matches report 1.0. String columns only fit
//     Constant and Periodic.
//
// SearchParameters tries the requested kinds in order, scores each fit by
// confidence × weight, keeps the best and stops early on a confidence of 1.
// Numeric columns scale tol.Absolute by the column range first.
//
// DSL
//
//	cte(v)                    Constant
//	lin(start, delta)         Linear
//	prd(v0, v1, ...)          Periodic
//	op(o1, ..., s0, ..., sk)  Operator: k operators from + - * /, k+1 seeds
//	sine(amp, freq, phase, mean)
//
// The long names Constant, Linear, Period, Operator and Sinus are accepted
// as aliases by FromArgs.
package param
