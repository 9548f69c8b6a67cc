// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"

	"github.com/katalvlaran/sketchrule/config"
	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/pattern"
)

// Option configures a Session.
type Option func(*Session)

// WithKinds restricts the parameter families the search may use.
func WithKinds(kinds ...param.Kind) Option {
	return func(s *Session) {
		if len(kinds) > 0 {
			s.kinds = append([]param.Kind(nil), kinds...)
		}
	}
}

// WithTolerance sets the search tolerance.
func WithTolerance(tol param.Tolerance) Option {
	return func(s *Session) { s.tol = tol }
}

// WithSearchOptions passes options through to pattern.Search.
func WithSearchOptions(opts ...pattern.Option) Option {
	return func(s *Session) { s.search = append(s.search, opts...) }
}

// WithLogger sets the parent logger; the session adds its id attribute.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConfig applies the search settings of cfg.
func WithConfig(cfg config.Config) Option {
	return func(s *Session) {
		s.kinds = cfg.Kinds()
		s.tol = cfg.ParamTolerance()
		s.depth = cfg.OperatorDepth
		s.sizeFit = cfg.SizePatternFit
	}
}
