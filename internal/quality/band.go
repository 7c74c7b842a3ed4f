package quality

import (
	"math"
	"slices"
)

// Quality identifies a water-quality band, cleanest first.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityModerate  Quality = "moderate"
	QualityPoor      Quality = "poor"
	QualityCritical  Quality = "critical"
)

// Text is the localized wording for a band.
type Text struct {
	Label          string `json:"label"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// Band is one row of the average-tolerance lookup table.
// A band matches when the average tolerance is <= Upper.
type Band struct {
	Quality Quality `json:"quality"`
	Upper   float64 `json:"-"`
	Color   string  `json:"color"`
	es      Text
	en      Text
}

// Text returns the band wording in the given language.
func (b Band) Text(lang Lang) Text {
	if lang == LangEN {
		return b.en
	}
	return b.es
}

// Label is shorthand for b.Text(lang).Label.
func (b Band) Label(lang Lang) string {
	return b.Text(lang).Label
}

// bands is ordered ascending by Upper; the last band is unbounded.
var bands = []Band{
	{
		Quality: QualityExcellent,
		Upper:   2,
		Color:   "#00C851",
		es: Text{
			Label:          "Excelente",
			Description:    "Agua muy limpia, sin contaminación",
			Recommendation: "Mantener las condiciones actuales. Excelente ecosistema acuático.",
		},
		en: Text{
			Label:          "Excellent",
			Description:    "Very clean water, no pollution",
			Recommendation: "Maintain current conditions. Excellent aquatic ecosystem.",
		},
	},
	{
		Quality: QualityGood,
		Upper:   4,
		Color:   "#4ECDC4",
		es: Text{
			Label:          "Buena",
			Description:    "Agua limpia con posible poca contaminación",
			Recommendation: "Monitorear regularmente. Implementar medidas preventivas.",
		},
		en: Text{
			Label:          "Good",
			Description:    "Clean water with possible light pollution",
			Recommendation: "Monitor regularly. Put preventive measures in place.",
		},
	},
	{
		Quality: QualityModerate,
		Upper:   6,
		Color:   "#FFD93D",
		es: Text{
			Label:          "Moderada",
			Description:    "Agua con contaminación moderada",
			Recommendation: "Se requiere atención. Identificar fuentes de contaminación.",
		},
		en: Text{
			Label:          "Moderate",
			Description:    "Moderately polluted water",
			Recommendation: "Attention required. Identify pollution sources.",
		},
	},
	{
		Quality: QualityPoor,
		Upper:   8,
		Color:   "#FF6B6B",
		es: Text{
			Label:          "Mala",
			Description:    "Agua muy contaminada",
			Recommendation: "Acción urgente necesaria. Investigar actividades contaminantes.",
		},
		en: Text{
			Label:          "Poor",
			Description:    "Heavily polluted water",
			Recommendation: "Urgent action needed. Investigate polluting activities.",
		},
	},
	{
		Quality: QualityCritical,
		Upper:   math.Inf(1),
		Color:   "#C70039",
		es: Text{
			Label:          "Crítica",
			Description:    "Agua severamente contaminada",
			Recommendation: "Crisis ecológica. Se requiere intervención inmediata.",
		},
		en: Text{
			Label:          "Critical",
			Description:    "Severely polluted water",
			Recommendation: "Ecological crisis. Immediate intervention required.",
		},
	},
}

// Bands returns the band table, cleanest first.
func Bands() []Band {
	return slices.Clone(bands)
}

// BandFor returns the first band whose upper bound is >= avg.
func BandFor(avg float64) Band {
	for _, b := range bands {
		if avg <= b.Upper {
			return b
		}
	}
	return bands[len(bands)-1]
}

// bandForSum picks the band for sum/n without floating-point division,
// so averages sitting exactly on a boundary are never misplaced.
func bandForSum(sum, n int) Band {
	for _, b := range bands[:len(bands)-1] {
		if sum <= int(b.Upper)*n {
			return b
		}
	}
	return bands[len(bands)-1]
}
