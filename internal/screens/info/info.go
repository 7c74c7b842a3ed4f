// Package info explains bioindicators, the tolerance scale and the indices.
package info

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
	"github.com/abhisek/aquamib/internal/ui/theme"
)

// InfoScreen is a scrollable page of reference text.
type InfoScreen struct {
	lang   quality.Lang
	str    i18n.Strings
	scroll int
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates the info screen for lang.
func New(lang quality.Lang) *InfoScreen {
	return &InfoScreen{lang: lang, str: i18n.For(lang)}
}

func (s *InfoScreen) Init() tea.Cmd { return nil }
func (s *InfoScreen) Title() string { return s.str.TitleInfo }

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.scroll = max(s.scroll-1, 0)
		case "down", "j":
			s.scroll++
		case "home", "g":
			s.scroll = 0
		}
	}
	return s, nil
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.str.KeyNavigate},
		{Key: "Esc", Description: s.str.KeyBack},
	}
}

func (s *InfoScreen) View(width, height int) string {
	cw := min(width-8, 76)
	para := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)

	var sections []string

	sections = append(sections,
		theme.Heading.Render("🔬 "+s.str.InfoWhatTitle)+"\n"+para.Render(s.str.InfoWhatText))

	var scale strings.Builder
	scale.WriteString(theme.Heading.Render("📊 " + s.str.InfoScaleTitle))
	for _, lo := range []int{1, 4, 7} {
		g := catalog.GroupFor(lo)
		scale.WriteString("\n")
		scale.WriteString(lipgloss.NewStyle().
			Foreground(theme.ToleranceColor(lo)).
			Bold(true).
			Render(g.Range() + "  " + s.str.GroupLabel(g)))
		scale.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + s.str.GroupHint(g)))
	}
	sections = append(sections, scale.String())

	var bands strings.Builder
	bands.WriteString(theme.Heading.Render("💧 " + s.str.InfoBandsTitle))
	for _, b := range quality.Bands() {
		bands.WriteString("\n")
		bands.WriteString(lipgloss.NewStyle().Foreground(theme.Hex(b.Color)).Bold(true).Render("■ " + b.Label(s.lang)))
		bands.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + b.Text(s.lang).Description))
	}
	sections = append(sections, bands.String())

	var idx strings.Builder
	idx.WriteString(theme.Heading.Render("📐 " + s.str.InfoIndexTitle))
	for _, line := range s.str.InfoIndexLines {
		idx.WriteString("\n" + para.Render("• "+line))
	}
	sections = append(sections, idx.String())

	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Success).
		Padding(0, 2).
		Width(cw).
		Render(theme.Badge.Render(s.str.InfoCitizenHead)+"\n"+para.Width(cw-6).Render(s.str.InfoCitizenText)))

	lines := strings.Split(strings.Join(sections, "\n\n"), "\n")
	if height > 0 {
		s.scroll = min(s.scroll, max(len(lines)-height, 0))
		lines = lines[s.scroll:min(s.scroll+height, len(lines))]
	}
	return layout.Center(strings.Join(lines, "\n"), width)
}
