// SPDX-License-Identifier: MIT

// Package session holds the working state of one interactive or batch run:
// a reference allocator, the input document with its selector table, the
// current pattern, the last extrapolation and an error console.
//
// The console coalesces consecutive identical messages into one entry with
// a repeat count, so a parse error reported on every keystroke shows once.
//
// A Session is not safe for concurrent use; run one per goroutine.
package session
