// SPDX-License-Identifier: MIT

// Package ref issues small unique integer references for primitives, groups
// and patterns.
//
// What
//
//   - Next returns the smallest free non-negative reference, reusing released
//     references before growing the high-water mark.
//   - Release returns a reference to the free set (negative references are the
//     "unassigned" sentinel and are ignored).
//   - Reserve claims a specific reference, e.g. an explicit "#3" identifier read
//     from a pattern document. Reserving past the high-water mark back-fills
//     the gap as free references.
//
// Ownership
//
//	An Allocator is owned by exactly one session/document and is threaded
//	through parsers and the pattern engine as an explicit argument. It is NOT
//	safe for concurrent use; give each goroutine its own session.
package ref
