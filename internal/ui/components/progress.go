package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/ui/theme"
)

// Gauge displays a value on a fixed scale as a horizontal bar.
type Gauge struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Color color.Color
	Width int
}

// NewGauge creates a gauge for value on [lo, hi].
func NewGauge(label string, value, lo, hi float64, c color.Color, width int) Gauge {
	return Gauge{Label: label, Value: value, Min: lo, Max: hi, Color: c, Width: width}
}

// Fraction returns the filled share of the bar in [0, 1].
func (g Gauge) Fraction() float64 {
	if g.Max <= g.Min {
		return 0
	}
	f := (g.Value - g.Min) / (g.Max - g.Min)
	return max(0, min(1, f))
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string
	if g.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(g.Label) + "  "
	}

	valueStr := fmt.Sprintf("  %.1f / %.0f", g.Value, g.Max)
	barWidth := max(g.Width-lipgloss.Width(result)-lipgloss.Width(valueStr), 4)

	filled := int(float64(barWidth) * g.Fraction())
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(g.Color).Render(strings.Repeat(" ", filled))
	result += theme.GaugeEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(valueStr)
	return result
}
