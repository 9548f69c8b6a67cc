// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("pattern: parse error")

	// ErrLevelMismatch is returned by Next when the count list length differs
	// from the pattern level.
	ErrLevelMismatch = errors.New("pattern: extrapolation counts do not match pattern level")

	// ErrEmptyGroup is returned when searching a group without children.
	ErrEmptyGroup = errors.New("pattern: empty group")

	// ErrMissingMaster is returned when a child of a searched group has no
	// master primitive.
	ErrMissingMaster = errors.New("pattern: group child without master")

	// ErrUnresolvedParameter is returned when a generated parameter position
	// is covered neither by a selector pattern nor by the start primitive.
	ErrUnresolvedParameter = errors.New("pattern: unresolved parameter position")

	// ErrNegativeCount is returned by Next for a negative instance count.
	ErrNegativeCount = errors.New("pattern: negative extrapolation count")

	// ErrNilPattern is returned when Next receives a nil pattern.
	ErrNilPattern = errors.New("pattern: nil pattern")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pattern: invalid option supplied")
)

// ParseError reports one problem at a byte offset of a pattern document.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pattern: parse error at %d: %s", e.Pos, e.Msg)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }
