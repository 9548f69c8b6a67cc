// SPDX-License-Identifier: MIT

package primitive

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("primitive: parse error")

// ErrNotChild is returned by Group.SetMaster for primitives outside the group.
var ErrNotChild = errors.New("primitive: not a descendant of the group")

// ParseError reports one problem at a byte offset of the source.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("primitive: parse error at %d: %s", e.Pos, e.Msg)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }
