// Package session ties the catalog, the current selection and the classifier
// together for one interactive run. Nothing here outlives the process.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
	"github.com/abhisek/aquamib/internal/selection"
)

// Session owns the state shared by all screens.
type Session struct {
	catalog   *catalog.Catalog
	selection *selection.Selection
	lang      quality.Lang
	logger    *zap.Logger

	analyses int
}

// Option configures a Session.
type Option func(*Session)

// WithLang sets the display language.
func WithLang(lang quality.Lang) Option {
	return func(s *Session) { s.lang = lang }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session over cat with an empty selection.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:   cat,
		selection: selection.New(),
		lang:      quality.LangES,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the session catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Selection returns the live selection.
func (s *Session) Selection() *selection.Selection { return s.selection }

// Lang returns the display language.
func (s *Session) Lang() quality.Lang { return s.lang }

// Analyses returns how many verdicts have been produced this session.
func (s *Session) Analyses() int { return s.analyses }

// Toggle flips selection membership of the taxon with the given ID.
func (s *Session) Toggle(id string) (bool, error) {
	t, err := s.catalog.Get(id)
	if err != nil {
		return false, fmt.Errorf("toggle: %w", err)
	}
	selected := s.selection.Toggle(t)
	s.logger.Debug("selection toggled",
		zap.String("id", id),
		zap.Bool("selected", selected),
		zap.Int("count", s.selection.Len()))
	return selected, nil
}

// Analyze classifies the current selection.
// Returns quality.ErrEmptySelection when nothing is selected.
func (s *Session) Analyze() (quality.Verdict, error) {
	v, err := quality.Classify(s.selection.Members())
	if err != nil {
		s.logger.Warn("analysis rejected", zap.Error(err))
		return quality.Verdict{}, err
	}
	s.analyses++

	s.logger.Info("sample classified",
		zap.String("quality", string(v.Band.Quality)),
		zap.Float64("avg_tolerance", v.AvgTolerance),
		zap.Int("bmwp", v.BMWPScore),
		zap.Int("families", v.FamilyCount),
		zap.Bool("ept", v.HasEPT),
		zap.Strings("taxa", s.selection.IDs()))
	return v, nil
}

// AddTaxon registers a user taxon in the catalog.
func (s *Session) AddTaxon(in catalog.NewTaxon) (catalog.Taxon, error) {
	return s.catalog.AddUserTaxon(in)
}

// Reset clears the selection for a new analysis.
func (s *Session) Reset() {
	if !s.selection.IsEmpty() {
		s.logger.Debug("selection cleared", zap.Int("count", s.selection.Len()))
	}
	s.selection.Clear()
}
