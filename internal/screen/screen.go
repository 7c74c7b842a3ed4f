package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aquamib/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is an optional interface for screens that refresh their state
// when they become active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// BackHandler is an optional interface for screens that replace the default
// esc behaviour of popping one screen.
type BackHandler interface {
	Back() tea.Cmd
}
