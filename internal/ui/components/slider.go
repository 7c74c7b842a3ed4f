package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/ui/theme"
)

// Slider selects an integer in [Min, Max] with the arrow keys.
type Slider struct {
	Label   string
	Min     int
	Max     int
	Value   int
	focused bool
}

// NewSlider creates a slider clamped to [lo, hi].
func NewSlider(label string, lo, hi, value int) Slider {
	s := Slider{Label: label, Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Set assigns v clamped to the slider range.
func (s *Slider) Set(v int) {
	s.Value = max(s.Min, min(s.Max, v))
}

func (s *Slider) Focus()        { s.focused = true }
func (s *Slider) Blur()         { s.focused = false }
func (s Slider) Focused() bool { return s.focused }

// Update moves the value with left/right (or h/l) while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "-":
		s.Set(s.Value - 1)
	case "right", "l", "+":
		s.Set(s.Value + 1)
	}
	return s, nil
}

// View renders the label and a track with the current value highlighted.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	var track strings.Builder
	for v := s.Min; v <= s.Max; v++ {
		cell := fmt.Sprintf(" %d ", v)
		if v == s.Value {
			track.WriteString(lipgloss.NewStyle().
				Background(theme.ToleranceColor(v)).
				Foreground(theme.BgDark).
				Bold(true).
				Render(cell))
		} else {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(cell))
		}
	}
	return labelStyle.Render(s.Label) + "\n" + track.String()
}
