// SPDX-License-Identifier: MIT

// Package pattern discovers the structural rule behind a tree of primitives
// and replays it to generate more.
//
// Model
//
//	None              no regularity; extrapolation copies the start
//	PrimitivePattern  one param.Pattern per selector (plus the name) and the
//	                  repeating arity sequence of a run of siblings
//	GroupPattern      an intergroup PrimitivePattern over the groups' masters,
//	                  one child pattern per observed group, and a size
//	                  pattern predicting how many children the nth group has
//
// Level is 1 for None and PrimitivePattern and 1 + the deepest child for a
// GroupPattern. Next takes exactly Level counts, one per depth.
//
// Search walks a group depth-first. At every group, SearchGroup fits one
// column per selector of the children's masters; if any column fits nothing,
// that level is None. A group whose nested groups all come back None is
// described by its flat PrimitivePattern.
//
// Next mirrors the walk. For a GroupPattern with counts [n, m, ...], the
// intergroup pattern yields n group masters; the ith one is extrapolated by
// child pattern i mod len(children) with the budget
// [m + size(i) − 1, ...]. Counts are never mutated.
//
// DSL
//
//	document  := ('$' ident '=' literal)* instance
//	instance  := ('#' int | '&' int)? ( 'none' | primitive | group )
//	primitive := ('@' int (',' int)*)? '[' (entry (',' entry)*)? ']'
//	entry     := selector (',' selector)* ':' ident '(' (arg (',' arg)*)? ')'
//	group     := ('#' ident '(' args ')')? '(' ('#' int)? (primitive | 'none') ')'
//	             '{' (instance (',' instance)*)? '}'
//
// For example, three groups of 2, 3 and 4 rects stepping right:
//
//	#lin(2, 1)(@4[name:cte(rect), 0:lin(0, 20), 1:cte(0), 2,3:cte(10)]) {
//		@4[name:cte(rect), 0:cte(0), 1:lin(0, 20), 2,3:cte(10)],
//		...
//	}
//
// "$name = value" binds an identifier, int or float; later identifiers
// (pattern names, selectors, arguments) are expanded through the bindings.
package pattern
