// SPDX-License-Identifier: MIT

// Package primitive models a sketch as a tree of named primitives and groups
// and reads and writes it in the primitive DSL.
//
// What
//
//   - Value: a closed variant (None, Int, Float, String) for one parameter.
//   - Primitive: a named object with an ordered parameter list; its arity is
//     the parameter count. Rect, Line, Vector and Circle are recognized kinds
//     with fixed accepted arities; any other (name, arity) is Generic.
//   - Group: an ordered list of children (primitives or groups) with a cached
//     master primitive. The master is the first child's master unless a child
//     was marked with '!'. It is nil only for an empty group.
//   - Selector: a positional index or a symbolic name for one parameter slot.
//     A SelectorTable maps each (name, arity) key to its ordered selectors and
//     falls back to positional selectors for undeclared keys.
//
// DSL
//
//	$point(x, y)            // declare selectors for point/2
//	rect(0, 0, 10, 10).     // a primitive ends with '.'
//	{                       // a nested group
//	    !circle(5, 5, 2).   // '!' makes the next primitive the group's master
//	    line(0, 0, 1, "a b").
//	}
//
// Parameters are identifiers, integers, floats or double-quoted non-empty
// strings. Identifiers and strings both become String values.
//
// Errors
//
//	Parse never panics and always returns the tree it managed to build. A
//	malformed primitive is dropped and parsing resumes after its '.', an
//	unexpected token at item level stops parsing, and groups left open at
//	the end are closed onto their parents. Every problem is a *ParseError
//	(matching ErrParse via errors.Is); several are joined with errors.Join.
//
// Ownership
//
//	Identifiers come from a caller-supplied *ref.Allocator. Group.Remove
//	releases the identifiers of everything it removes.
package primitive
