package catalog

import (
	"fmt"
	"strings"
)

// validateTaxa performs structural checks on a taxon set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTaxa(taxa []Taxon) error {
	var errs []string

	idSet := make(map[string]bool, len(taxa))
	for _, t := range taxa {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("taxon %q has an empty ID", t.Name))
		} else if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate taxon ID: %q", t.ID))
		}
		idSet[t.ID] = true

		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Sprintf("taxon %q: name must not be empty", t.ID))
		}
		if strings.TrimSpace(t.Order) == "" {
			errs = append(errs, fmt.Sprintf("taxon %q: order must not be empty", t.ID))
		}
		if t.Tolerance < MinTolerance || t.Tolerance > MaxTolerance {
			errs = append(errs, fmt.Sprintf("taxon %q: tolerance must be in [%d, %d], got %d",
				t.ID, MinTolerance, MaxTolerance, t.Tolerance))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
