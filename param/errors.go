// SPDX-License-Identifier: MIT

package param

import "errors"

var (
	// ErrUnknownPattern is returned by FromArgs for an unrecognized name.
	ErrUnknownPattern = errors.New("param: unknown pattern")

	// ErrArguments is returned by FromArgs when the arguments do not match
	// the pattern's stored fields.
	ErrArguments = errors.New("param: invalid pattern arguments")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("param: invalid option supplied")
)
