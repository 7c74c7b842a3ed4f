// Package quality classifies water quality from the tolerance profile of a
// set of observed macroinvertebrate taxa.
package quality

import (
	"errors"
	"fmt"

	"github.com/abhisek/aquamib/internal/catalog"
)

// ErrEmptySelection is returned when classification is requested for zero taxa.
var ErrEmptySelection = errors.New("no taxa selected")

// eptOrders are the pollution-sensitive insect orders. Matching is exact.
var eptOrders = map[string]bool{
	"Ephemeroptera": true,
	"Plecoptera":    true,
	"Trichoptera":   true,
}

// EPTOrders returns the sensitive order names in conventional E-P-T order.
func EPTOrders() []string {
	return []string{"Ephemeroptera", "Plecoptera", "Trichoptera"}
}

// IsEPT reports whether order is one of the EPT orders, case-sensitively.
func IsEPT(order string) bool {
	return eptOrders[order]
}

// Biodiversity is a coarse richness tier based on taxon count.
type Biodiversity string

const (
	BiodiversityLow    Biodiversity = "Low"
	BiodiversityMedium Biodiversity = "Medium"
	BiodiversityHigh   Biodiversity = "High"
)

// BiodiversityFor returns the tier for n distinct taxa.
func BiodiversityFor(n int) Biodiversity {
	switch {
	case n >= 5:
		return BiodiversityHigh
	case n >= 3:
		return BiodiversityMedium
	default:
		return BiodiversityLow
	}
}

// Label returns the tier name in the given language.
func (b Biodiversity) Label(lang Lang) string {
	if lang == LangEN {
		return string(b)
	}
	switch b {
	case BiodiversityHigh:
		return "Alta"
	case BiodiversityMedium:
		return "Media"
	default:
		return "Baja"
	}
}

// Verdict is the classification of one sample.
type Verdict struct {
	Band         Band         `json:"band"`
	AvgTolerance float64      `json:"avg_tolerance"` // rounded half-up to one decimal
	BMWPScore    int          `json:"bmwp_score"`
	FamilyCount  int          `json:"family_count"`
	HasEPT       bool         `json:"has_ept"`
	Biodiversity Biodiversity `json:"biodiversity"`
}

// AvgToleranceString formats the average with one decimal place.
func (v Verdict) AvgToleranceString() string {
	return fmt.Sprintf("%.1f", v.AvgTolerance)
}

// Classify scores the given taxa. The result depends only on the multiset of
// tolerance, BMWP and order values, never on input order. Taxa are assumed to
// have distinct IDs, as guaranteed by a selection.
func Classify(taxa []catalog.Taxon) (Verdict, error) {
	n := len(taxa)
	if n == 0 {
		return Verdict{}, ErrEmptySelection
	}

	var tolSum, bmwpSum int
	hasEPT := false
	for _, t := range taxa {
		tolSum += t.Tolerance
		bmwpSum += t.BMWP
		if IsEPT(t.Order) {
			hasEPT = true
		}
	}

	return Verdict{
		Band:         bandForSum(tolSum, n),
		AvgTolerance: roundedAverage(tolSum, n),
		BMWPScore:    bmwpSum,
		FamilyCount:  n,
		HasEPT:       hasEPT,
		Biodiversity: BiodiversityFor(n),
	}, nil
}

// roundedAverage returns sum/n rounded half-up to one decimal, computed in
// integer tenths to avoid binary rounding artefacts such as 2.45 -> 2.4.
func roundedAverage(sum, n int) float64 {
	tenths := (20*sum + n) / (2 * n)
	return float64(tenths) / 10
}
