// SPDX-License-Identifier: MIT

package builder

// Method names prefix constructor errors.
const (
	MethodRow       = "Row"
	MethodStaircase = "Staircase"
	MethodWave      = "Wave"
	MethodDoubling  = "Doubling"
	MethodPulse     = "Pulse"
	MethodChecker   = "Checker"
)

// Minimum sizes. A sequence needs two samples before any pattern fits it.
const (
	MinRowPrimitives   = 2
	MinStaircaseGroups = 2
	MinStaircaseFirst  = 1
	MinWavePrimitives  = 2
	MinDoublingVectors = 2
	MinPulseLines      = 2
	MinCheckerDim      = 1
)
