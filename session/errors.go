// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrNoDocument is returned when an operation needs a non-empty document.
	ErrNoDocument = errors.New("session: no document loaded")

	// ErrNoPattern is returned when an operation needs a current pattern.
	ErrNoPattern = errors.New("session: no pattern")
)
