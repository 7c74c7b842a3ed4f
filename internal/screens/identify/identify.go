// Package identify is the sample-building screen: search the catalog,
// toggle the taxa found in the sample, and run the analysis.
package identify

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/router"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/screens/detail"
	"github.com/abhisek/aquamib/internal/screens/results"
	"github.com/abhisek/aquamib/internal/session"
	"github.com/abhisek/aquamib/internal/ui/components"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
	"github.com/abhisek/aquamib/internal/ui/theme"
)

// rows reserved below the list for the selection bar and the analyze button.
const chromeHeight = 9

// IdentifyScreen lists catalog taxa filtered by a search box.
type IdentifyScreen struct {
	sess   *session.Session
	str    i18n.Strings
	search components.TextInput
	taxa   []catalog.Taxon
	cursor int
	offset int
	errMsg string
}

var _ screen.Screen = (*IdentifyScreen)(nil)
var _ screen.KeyHintProvider = (*IdentifyScreen)(nil)
var _ screen.Resumer = (*IdentifyScreen)(nil)

// New creates the identify screen with the whole catalog listed.
func New(sess *session.Session) *IdentifyScreen {
	str := i18n.For(sess.Lang())
	s := &IdentifyScreen{
		sess:   sess,
		str:    str,
		search: components.NewTextInput("🔍", str.SearchPlaceholder, 64),
	}
	s.refresh()
	return s
}

func (s *IdentifyScreen) Init() tea.Cmd { return nil }

func (s *IdentifyScreen) Title() string { return s.str.TitleTaxa }

// Resume re-runs the search so taxa added elsewhere show up.
func (s *IdentifyScreen) Resume() tea.Cmd {
	s.refresh()
	return nil
}

// Taxa returns the taxa currently listed.
func (s *IdentifyScreen) Taxa() []catalog.Taxon { return s.taxa }

// Searching reports whether the search box has focus.
func (s *IdentifyScreen) Searching() bool { return s.search.Focused() }

func (s *IdentifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.search.Focused() {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.search.Focused() {
		switch kmsg.String() {
		case "tab", "enter", "down":
			s.search.Blur()
			return s, nil
		}
		before := s.search.Value()
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		if s.search.Value() != before {
			s.refresh()
		}
		return s, cmd
	}

	s.errMsg = ""
	switch kmsg.String() {
	case "tab", "/":
		return s, s.search.Focus()
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
	case "down", "j":
		s.cursor = min(s.cursor+1, max(len(s.taxa)-1, 0))
	case "space":
		if t, ok := s.current(); ok {
			if _, err := s.sess.Toggle(t.ID); err != nil {
				s.errMsg = err.Error()
			}
		}
	case "i":
		if t, ok := s.current(); ok {
			d := detail.New(s.sess, t)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: d} }
		}
	case "enter":
		return s, s.analyze()
	}
	return s, nil
}

// analyze classifies the selection and opens the results screen.
func (s *IdentifyScreen) analyze() tea.Cmd {
	if s.sess.Selection().IsEmpty() {
		return nil
	}
	sample := s.sess.Selection().Members()
	v, err := s.sess.Analyze()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	r := results.New(s.sess, v, sample)
	return func() tea.Msg { return router.PushScreenMsg{Screen: r} }
}

func (s *IdentifyScreen) current() (catalog.Taxon, bool) {
	if s.cursor < 0 || s.cursor >= len(s.taxa) {
		return catalog.Taxon{}, false
	}
	return s.taxa[s.cursor], true
}

func (s *IdentifyScreen) refresh() {
	s.taxa = s.sess.Catalog().Search(s.search.Value())
	s.cursor = min(s.cursor, max(len(s.taxa)-1, 0))
}

func (s *IdentifyScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Tab", Description: s.str.KeySearch},
			{Key: "Esc", Description: s.str.KeyBack},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.str.KeyNavigate},
		{Key: "Space", Description: s.str.KeyToggle},
		{Key: "i", Description: s.str.KeyDetail},
		{Key: "Tab", Description: s.str.KeySearch},
		{Key: "Enter", Description: s.str.Analyze},
		{Key: "Esc", Description: s.str.KeyBack},
	}
}

func (s *IdentifyScreen) View(width, height int) string {
	cw := min(width-4, 90)
	var b strings.Builder

	b.WriteString(s.search.View())
	b.WriteString("\n\n")

	listHeight := max(height-chromeHeight, 1)
	s.adjustScroll(listHeight)

	if len(s.taxa) == 0 {
		b.WriteString(theme.Hint.Render("  " + s.str.NoMatches))
		b.WriteString("\n")
	}
	end := min(s.offset+listHeight, len(s.taxa))
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(s.taxa[i], i == s.cursor, cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Divider(cw + 8))
	b.WriteString("\n")

	n := s.sess.Selection().Len()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.str.SelectedCount + ": "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("%d", n)))
	b.WriteString("\n")
	b.WriteString(components.NewButton("💧 "+s.str.Analyze, n > 0).View())
	if s.errMsg != "" {
		b.WriteString("\n" + theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// adjustScroll keeps the cursor inside the visible window.
func (s *IdentifyScreen) adjustScroll(height int) {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+height {
		s.offset = s.cursor - height + 1
	}
	s.offset = max(min(s.offset, len(s.taxa)-height), 0)
}

func (s *IdentifyScreen) renderRow(t catalog.Taxon, active bool, width int) string {
	mark := "[ ]"
	if s.sess.Selection().Contains(t.ID) {
		mark = "[✓]"
	}
	prefix := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Hex(t.Color))
	if active && !s.search.Focused() {
		prefix = "▸ "
		nameStyle = nameStyle.Bold(true)
	}

	line := prefix + mark + " " + t.Image + " " + nameStyle.Render(fmt.Sprintf("%-18s", t.Name))
	line += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-16s", t.Order))
	line += lipgloss.NewStyle().
		Foreground(theme.ToleranceColor(t.Tolerance)).
		Render(fmt.Sprintf("%s %2d", s.str.ToleranceShort, t.Tolerance))
	if t.UserAdded {
		line += "  " + theme.Badge.Render(s.str.UserBadge)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
