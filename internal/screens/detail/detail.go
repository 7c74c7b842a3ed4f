// Package detail renders every field of a single taxon.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/session"
	"github.com/abhisek/aquamib/internal/ui/components"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
	"github.com/abhisek/aquamib/internal/ui/theme"
)

// DetailScreen shows one taxon and lets the user toggle it.
type DetailScreen struct {
	sess  *session.Session
	taxon catalog.Taxon
	str   i18n.Strings
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for t.
func New(sess *session.Session, t catalog.Taxon) *DetailScreen {
	return &DetailScreen{sess: sess, taxon: t, str: i18n.For(sess.Lang())}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.taxon.Name }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "space" {
		// The taxon came from the catalog, so the lookup cannot miss.
		_, _ = d.sess.Toggle(d.taxon.ID)
	}
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: d.str.KeyToggle},
		{Key: "Esc", Description: d.str.KeyBack},
	}
}

func (d *DetailScreen) View(width, height int) string {
	t := d.taxon
	cw := min(width-8, 70)

	var b strings.Builder

	mark := "○"
	if d.sess.Selection().Contains(t.ID) {
		mark = "●"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Hex(t.Color)).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s %s", mark, t.Image, t.Name)))
	if t.UserAdded {
		b.WriteString("  " + theme.Badge.Render("["+d.str.UserBadge+"]"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("     " + t.Order))
	b.WriteString("\n\n")

	if t.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(t.Description))
		b.WriteString("\n\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	row := func(label, value string) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s", label)) + valStyle.Render(value) + "\n")
	}
	row(d.str.Habitat+":", t.Habitat)
	row("BMWP:", fmt.Sprintf("%d", t.BMWP))
	row("ABI:", fmt.Sprintf("%d", t.ABI))
	row("IBF:", fmt.Sprintf("%d", t.IBF))
	b.WriteString("\n")

	group := catalog.GroupFor(t.Tolerance)
	gauge := components.NewGauge(d.str.Tolerance, float64(t.Tolerance),
		0, catalog.MaxTolerance, theme.ToleranceColor(t.Tolerance), cw)
	b.WriteString("  " + gauge.View() + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ToleranceColor(t.Tolerance)).
		Render(fmt.Sprintf("  %s (%s): %s", d.str.GroupLabel(group), group.Range(), d.str.GroupHint(group))))

	return b.String()
}
