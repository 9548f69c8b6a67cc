// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/sketchrule/lexer"
	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/pattern"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Session is one document, its pattern and its extrapolation.
type Session struct {
	ID uuid.UUID

	alloc  *ref.Allocator
	doc    *primitive.Group
	table  primitive.SelectorTable
	found  pattern.InstancePattern
	output *primitive.Group

	console Console

	kinds   []param.Kind
	tol     param.Tolerance
	depth   int
	sizeFit bool
	search  []pattern.Option
	log     *slog.Logger
}

// New creates an empty session with a fresh id and allocator.
func New(opts ...Option) *Session {
	s := &Session{
		ID:      uuid.New(),
		kinds:   param.AllKinds,
		tol:     param.DefaultTolerance,
		depth:   param.DefaultMaxDepth,
		sizeFit: true,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(slog.String("session", s.ID.String()))
	s.alloc = ref.New(ref.WithLogger(s.log))
	s.doc = primitive.NewGroup(s.alloc.Next())
	s.table = primitive.SelectorTable{}

	return s
}

// Document is the current input tree.
func (s *Session) Document() *primitive.Group { return s.doc }

// Table is the selector table of the current document.
func (s *Session) Table() primitive.SelectorTable { return s.table }

// Pattern is the current pattern, or nil.
func (s *Session) Pattern() pattern.InstancePattern { return s.found }

// Output is the last extrapolation, or nil.
func (s *Session) Output() *primitive.Group { return s.output }

// Console is the session's error log.
func (s *Session) Console() *Console { return &s.console }

// Logger is the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.log }

// Load replaces the document with src. Parsing is best effort: the tree
// built so far is kept and the errors go to the console and are returned.
// The current pattern and output are dropped.
func (s *Session) Load(src string) error {
	s.alloc.Reset()
	s.found, s.output = nil, nil
	doc, table, err := primitive.Parse(src, s.alloc)
	s.doc, s.table = doc, table
	if err != nil {
		s.console.Report(err)
		s.log.Warn("document has errors", slog.Any("error", err))
	}
	s.log.Debug("document loaded", slog.Int("primitives", len(doc.Primitives())))

	return err
}

// SetDocument replaces the document with a tree built against Allocator.
func (s *Session) SetDocument(doc *primitive.Group, table primitive.SelectorTable) {
	if table == nil {
		table = primitive.SelectorTable{}
	}
	s.doc, s.table = doc, table
	s.found, s.output = nil, nil
}

// Allocator is the reference source of the document and patterns.
func (s *Session) Allocator() *ref.Allocator { return s.alloc }

// LoadPattern replaces the current pattern with a parsed pattern document.
// Local errors keep the partially parsed pattern; structural ones clear it.
func (s *Session) LoadPattern(src string) error {
	found, err := pattern.Parse(src, s.alloc)
	s.found, s.output = found, nil
	if err != nil {
		s.console.Report(err)
	}

	return err
}

// Search fits a pattern to the document and makes it current.
func (s *Session) Search() (pattern.InstancePattern, error) {
	if s.doc == nil || s.doc.Master() == nil {
		return nil, ErrNoDocument
	}
	found, err := pattern.Search(s.doc, s.table, s.kinds, s.tol, s.alloc, s.searchOptions()...)
	if err != nil {
		s.console.Report(err)
		return nil, err
	}
	s.found, s.output = found, nil
	s.log.Info("pattern found", slog.Int("level", found.Level()), slog.String("pattern", pattern.Serialize(found)))

	return found, nil
}

func (s *Session) searchOptions() []pattern.Option {
	opts := []pattern.Option{
		pattern.WithMaxDepth(s.depth),
		pattern.WithSizePatternFit(s.sizeFit),
		pattern.WithLogger(s.log),
	}

	return append(opts, s.search...)
}

// Extrapolate runs the current pattern from the document's master, searching
// first when there is none. A single count is repeated for every level.
// The result is built with its own allocator, as an independent document.
func (s *Session) Extrapolate(counts []int) (*primitive.Group, error) {
	if s.doc == nil || s.doc.Master() == nil {
		return nil, ErrNoDocument
	}
	if s.found == nil {
		if _, err := s.Search(); err != nil {
			return nil, err
		}
	}
	if len(counts) == 1 && s.found.Level() > 1 {
		n := counts[0]
		counts = make([]int, s.found.Level())
		for i := range counts {
			counts[i] = n
		}
	}

	out := ref.New(ref.WithLogger(s.log))
	g, err := pattern.NextGroup([]*primitive.Primitive{s.doc.Master()}, s.found, s.table, counts, out)
	if err != nil {
		s.console.Report(err)
		return nil, err
	}
	s.output = g

	return g, nil
}

// PatternText serializes the current pattern, optionally with references.
func (s *Session) PatternText(ids bool) (string, error) {
	if s.found == nil {
		return "", ErrNoPattern
	}
	if ids {
		return pattern.SerializeWithIDs(s.found), nil
	}

	return pattern.Serialize(s.found), nil
}

// FactoredPatternText is PatternText with argument literals repeated at
// least min times pulled out into "$name = value" variables.
func (s *Session) FactoredPatternText(min int) (string, error) {
	text, err := s.PatternText(false)
	if err != nil {
		return "", err
	}

	return lexer.Factor(text, min), nil
}

// DocumentText serializes the input document with its declarations.
func (s *Session) DocumentText() string {
	return primitive.SerializeDocument(s.doc, s.table)
}

// OutputText serializes the last extrapolation with the document's
// selector declarations.
func (s *Session) OutputText() string {
	if s.output == nil {
		return ""
	}

	return primitive.SerializeDocument(s.output, s.table)
}

// SpaceSaving is the percentage by which the pattern text is shorter than
// the extrapolated document it produces. ok is false until both exist.
func (s *Session) SpaceSaving() (saving float64, ok bool) {
	text, err := s.PatternText(false)
	out := s.OutputText()
	if err != nil || text == "" || out == "" {
		return 0, false
	}

	return (1 - float64(len(text))/float64(len(out))) * 100, true
}

// String summarizes the session for logs and the REPL prompt.
func (s *Session) String() string {
	level := 0
	if s.found != nil {
		level = s.found.Level()
	}

	return fmt.Sprintf("session %s: %d primitives, pattern level %d, %d console entries",
		s.ID.String()[:8], len(s.doc.Primitives()), level, s.console.Len())
}
