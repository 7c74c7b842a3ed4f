package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/aquamib/internal/router"
	"github.com/abhisek/aquamib/internal/screen"
	"github.com/abhisek/aquamib/internal/screens/home"
	"github.com/abhisek/aquamib/internal/session"
	"github.com/abhisek/aquamib/internal/ui/i18n"
	"github.com/abhisek/aquamib/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	Session *session.Session
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	str    i18n.Strings
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(sess *session.Session) AppModel {
	return AppModel{
		router: router.New(home.New(sess)),
		sess:   sess,
		str:    i18n.For(sess.Lang()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok {
				return m, bh.Back()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if n := m.sess.Selection().Len(); n > 0 {
		status = fmt.Sprintf(m.str.Selected, n)
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: m.str.KeyBack},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: m.str.KeyQuit})
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("tui started", zap.String("lang", string(opts.Session.Lang())))
	p := tea.NewProgram(newAppModel(opts.Session))
	if _, err := p.Run(); err != nil {
		logger.Error("tui failed", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("tui stopped", zap.Int("analyses", opts.Session.Analyses()))
	return nil
}
