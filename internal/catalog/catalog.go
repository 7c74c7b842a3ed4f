// Package catalog holds the reference set of benthic macroinvertebrate taxa
// and the session-scoped taxa registered by the user.
package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Presentation defaults for user-registered taxa.
const (
	UserHabitat  = "Agregado por usuario"
	UserImage    = "🦋"
	UserIDPrefix = "user-"
)

// IDFunc returns a fresh taxon ID and a display color derived from it.
type IDFunc func() (id, color string)

// Catalog exposes the built-in taxa plus an append-only set of user taxa.
// Safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	user     []Taxon
	userByID map[string]int

	newID  IDFunc
	logger *zap.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for catalog events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDFunc overrides the ID generator for user taxa.
func WithIDFunc(f IDFunc) Option {
	return func(c *Catalog) {
		if f != nil {
			c.newID = f
		}
	}
}

// New creates a catalog with no user taxa.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		userByID: make(map[string]int),
		newID:    uuidID,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// uuidID returns "user-<uuid>" and a color taken from the UUID's first bytes.
func uuidID() (string, string) {
	u := uuid.New()
	return UserIDPrefix + u.String(), fmt.Sprintf("#%02X%02X%02X", u[0], u[1], u[2])
}

// AllTaxa returns built-in taxa followed by user taxa in submission order.
func (c *Catalog) AllTaxa() []Taxon {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]Taxon, 0, len(builtin)+len(c.user))
	all = append(all, builtin...)
	return append(all, c.user...)
}

// UserTaxa returns only the taxa registered during this session.
func (c *Catalog) UserTaxa() []Taxon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.user)
}

// Get returns a taxon by ID.
func (c *Catalog) Get(id string) (Taxon, error) {
	if i, ok := builtinByID[id]; ok {
		return builtin[i], nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if i, ok := c.userByID[id]; ok {
		return c.user[i], nil
	}
	return Taxon{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Search returns taxa whose name or order contains query, ignoring case.
// A blank query returns AllTaxa.
func (c *Catalog) Search(query string) []Taxon {
	all := c.AllTaxa()
	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}

	fold := cases.Fold()
	q := fold.String(query)
	matches := make([]Taxon, 0, len(all))
	for _, t := range all {
		if strings.Contains(fold.String(t.Name), q) || strings.Contains(fold.String(t.Order), q) {
			matches = append(matches, t)
		}
	}

	c.logger.Debug("catalog search",
		zap.String("query", query),
		zap.Int("matches", len(matches)))
	return matches
}

// AddUserTaxon validates the submission, derives index scores from the
// tolerance, and appends the new taxon to the session set.
// Returns *ValidationError for bad input and *DuplicateIDError if the
// generated ID is already taken; in both cases nothing is added.
func (c *Catalog) AddUserTaxon(in NewTaxon) (Taxon, error) {
	if err := in.Validate(); err != nil {
		c.logger.Info("user taxon rejected", zap.Error(err))
		return Taxon{}, err
	}
	in = in.normalize()

	c.mu.Lock()
	defer c.mu.Unlock()

	id, color := c.newID()
	if c.idTaken(id) {
		err := &DuplicateIDError{ID: id}
		c.logger.Error("user taxon ID collision", zap.String("id", id))
		return Taxon{}, err
	}

	t := in.derive(id, color)
	c.userByID[id] = len(c.user)
	c.user = append(c.user, t)

	c.logger.Info("user taxon added",
		zap.String("id", t.ID),
		zap.String("name", t.Name),
		zap.String("order", t.Order),
		zap.Int("tolerance", t.Tolerance))
	return t, nil
}

// idTaken reports whether id is used by any taxon. Caller holds c.mu.
func (c *Catalog) idTaken(id string) bool {
	if id == "" {
		return true
	}
	if _, ok := builtinByID[id]; ok {
		return true
	}
	_, ok := c.userByID[id]
	return ok
}
