// Package home is the root screen with the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aquamib/internal/router"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/screens/addtaxon"
	"github.com/abhisek/aquamib/internal/screens/identify"
	"github.com/abhisek/aquamib/internal/screens/info"
	"github.com/abhisek/aquamib/internal/session"
	"github.com/abhisek/aquamib/internal/ui/components"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
	"github.com/abhisek/aquamib/internal/ui/theme"
)

var banner = []string{
	"  ~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~  ",
	"    🦐  🐛  🐌  A Q U A M I B    ",
	"  ~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~≈~  ",
}

// HomeScreen is the main menu.
type HomeScreen struct {
	sess *session.Session
	str  i18n.Strings
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen for sess.
func New(sess *session.Session) *HomeScreen {
	str := i18n.For(sess.Lang())
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{
			Label:       "🔍 " + str.MenuItems[0].Label,
			Description: str.MenuItems[0].Description,
			Action:      push(func() screen.Screen { return identify.New(sess) }),
		},
		{
			Label:       "➕ " + str.MenuItems[1].Label,
			Description: str.MenuItems[1].Description,
			Action:      push(func() screen.Screen { return addtaxon.New(sess) }),
		},
		{
			Label:       "📖 " + str.MenuItems[2].Label,
			Description: str.MenuItems[2].Description,
			Action:      push(func() screen.Screen { return info.New(sess.Lang()) }),
		},
		{
			Label:  "🚪 " + str.MenuItems[3].Label,
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		sess: sess,
		str:  str,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Title() string { return h.str.TitleHome }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.str.KeyNavigate},
		{Key: "Enter", Description: h.str.KeySelect},
		{Key: "q", Description: h.str.KeyQuit},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	if !layout.IsCompact(width, height+6) {
		sections = append(sections, theme.Title.Render(strings.Join(banner, "\n")))
	}
	sections = append(sections, theme.Subtitle.Render(h.str.Tagline))
	sections = append(sections, theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	credits := make([]string, 0, len(h.str.Credits))
	for _, c := range h.str.Credits {
		credits = append(credits, theme.Hint.Render(c))
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Center, credits...))

	spaced := make([]string, 0, 2*len(sections))
	for i, sec := range sections {
		if i > 0 {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, sec)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, spaced...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
