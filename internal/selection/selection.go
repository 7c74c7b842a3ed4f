// Package selection tracks the taxa a user asserts were observed in a sample.
package selection

import (
	"slices"

	"github.com/abhisek/aquamib/internal/catalog"
)

// Selection is an ordered set of taxa keyed by ID.
// Insertion order is kept for display; scoring does not depend on it.
// The zero value is an empty selection ready to use.
type Selection struct {
	members []catalog.Taxon
}

// New creates a selection holding the given taxa, skipping repeated IDs.
func New(taxa ...catalog.Taxon) *Selection {
	s := &Selection{}
	for _, t := range taxa {
		if !s.Contains(t.ID) {
			s.members = append(s.members, t)
		}
	}
	return s
}

// Toggle adds the taxon if its ID is absent, otherwise removes it.
// Returns true if the taxon is selected afterwards.
func (s *Selection) Toggle(t catalog.Taxon) bool {
	if i := s.indexOf(t.ID); i >= 0 {
		s.members = slices.Delete(s.members, i, i+1)
		return false
	}
	s.members = append(s.members, t)
	return true
}

// Contains reports whether a taxon with the given ID is selected.
func (s *Selection) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Len returns the number of selected taxa.
func (s *Selection) Len() int {
	return len(s.members)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.members) == 0
}

// Members returns the selected taxa in insertion order.
func (s *Selection) Members() []catalog.Taxon {
	return slices.Clone(s.members)
}

// IDs returns the selected taxon IDs in insertion order.
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.members))
	for i, t := range s.members {
		ids[i] = t.ID
	}
	return ids
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.members = nil
}

func (s *Selection) indexOf(id string) int {
	return slices.IndexFunc(s.members, func(t catalog.Taxon) bool {
		return t.ID == id
	})
}
