// SPDX-License-Identifier: MIT

// Package config loads the sketchrule YAML configuration.
//
// A missing file means Default(). Keys absent from a file keep their
// defaults; unknown keys are rejected. Example:
//
//	tolerance:
//	  absolute: 0
//	  relative: 0.1
//	patterns: [cte, lin, prd, op, sine]
//	counts: [4, 1]
//	operator_depth: 4
//	size_pattern_fit: true
//	workers: 4
//	log:
//	  level: info
//	  format: text
package config
