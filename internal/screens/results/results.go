// Package results renders a water-quality verdict.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
	"github.com/abhisek/aquamib/internal/router"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/session"
	"github.com/abhisek/aquamib/internal/ui/components"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
	"github.com/abhisek/aquamib/internal/ui/theme"
)

// ResultsScreen shows the verdict for the taxa that were selected when the
// analysis ran.
type ResultsScreen struct {
	sess    *session.Session
	verdict quality.Verdict
	taxa    []catalog.Taxon
	str     i18n.Strings
	scroll  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.BackHandler = (*ResultsScreen)(nil)

// New creates a results screen. taxa is the analysed sample.
func New(sess *session.Session, v quality.Verdict, taxa []catalog.Taxon) *ResultsScreen {
	return &ResultsScreen{
		sess:    sess,
		verdict: v,
		taxa:    taxa,
		str:     i18n.For(sess.Lang()),
	}
}

func (r *ResultsScreen) Init() tea.Cmd { return nil }

func (r *ResultsScreen) Title() string { return r.str.TitleStats }

// Verdict returns the verdict on display.
func (r *ResultsScreen) Verdict() quality.Verdict { return r.verdict }

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "n":
		r.sess.Reset()
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "h":
		return r, r.Back()
	case "up", "k":
		r.scroll = max(r.scroll-1, 0)
	case "down", "j":
		r.scroll++
	}
	return r, nil
}

// Back clears the selection and returns to the home screen.
func (r *ResultsScreen) Back() tea.Cmd {
	r.sess.Reset()
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: r.str.KeyNavigate},
		{Key: "n", Description: r.str.NewAnalysis},
		{Key: "h/Esc", Description: r.str.Home},
	}
}

func (r *ResultsScreen) View(width, height int) string {
	cw := min(width-8, 72)
	lang := r.sess.Lang()
	v := r.verdict
	text := v.Band.Text(lang)
	bandColor := theme.Hex(v.Band.Color)

	var sections []string

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bandColor).
		Padding(0, 2).
		Width(cw).
		Render(lipgloss.NewStyle().Foreground(bandColor).Bold(true).Render("💧 "+text.Label) +
			"\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(text.Description))
	sections = append(sections, card)

	var m strings.Builder
	m.WriteString(theme.Heading.Render(r.str.Metrics) + "\n")
	m.WriteString(components.NewGauge(r.str.AvgTolerance, v.AvgTolerance,
		0, catalog.MaxTolerance, bandColor, cw).View() + "\n")
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	metric := func(label, value string) {
		m.WriteString(dimStyle.Render(fmt.Sprintf("%-22s", label)) + valStyle.Render(value) + "\n")
	}
	metric(r.str.Families, fmt.Sprintf("%d", v.FamilyCount))
	metric(r.str.BMWPScore, fmt.Sprintf("%d", v.BMWPScore))
	metric(r.str.Biodiversity, v.Biodiversity.Label(lang))
	sections = append(sections, strings.TrimRight(m.String(), "\n"))

	if v.HasEPT {
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Success).
			Padding(0, 2).
			Width(cw).
			Render(theme.Badge.Render(r.str.EPTTitle)+"\n"+
				lipgloss.NewStyle().Foreground(theme.Text).Render(r.str.EPTText)))
	}

	var t strings.Builder
	t.WriteString(theme.Heading.Render(r.str.Identified))
	for _, taxon := range r.taxa {
		t.WriteString("\n")
		t.WriteString(lipgloss.NewStyle().Foreground(theme.Hex(taxon.Color)).Render(taxon.Image + " " + taxon.Name))
		t.WriteString(dimStyle.Render("  " + taxon.Order + "  "))
		t.WriteString(lipgloss.NewStyle().
			Foreground(theme.ToleranceColor(taxon.Tolerance)).
			Render(fmt.Sprintf("%s %d", r.str.ToleranceShort, taxon.Tolerance)))
	}
	sections = append(sections, t.String())

	sections = append(sections, theme.Heading.Render("💡 "+r.str.Recommendation)+"\n"+
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(text.Recommendation))

	lines := strings.Split(strings.Join(sections, "\n\n"), "\n")
	if height > 0 {
		r.scroll = min(r.scroll, max(len(lines)-height, 0))
		lines = lines[r.scroll:min(r.scroll+height, len(lines))]
	}
	return layout.Center(strings.Join(lines, "\n"), width)
}
