// SPDX-License-Identifier: MIT

package builder

// validateMin ensures got >= min, reporting "<method>: <what> must be ≥ min".
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s must be ≥ %d, got %d: %w", what, min, got, ErrTooFewPrimitives)
	}

	return nil
}
