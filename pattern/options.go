// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sketchrule/param"
)

// Option configures Search and SearchGroup.
type Option func(*options)

type options struct {
	maxDepth int
	sizeFit  bool
	log      *slog.Logger
	err      error
}

func newOptions(opts []Option) options {
	o := options{maxDepth: param.DefaultMaxDepth, sizeFit: true, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) params() []param.Option {
	return []param.Option{param.WithMaxDepth(o.maxDepth), param.WithLogger(o.log)}
}

// WithMaxDepth bounds the operator chain search. d must be positive.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithSizePatternFit controls group size fitting. When false, size patterns
// are always Periodic.
func WithSizePatternFit(on bool) Option {
	return func(o *options) { o.sizeFit = on }
}

// WithLogger routes debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
