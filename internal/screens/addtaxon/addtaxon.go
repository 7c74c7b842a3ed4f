// Package addtaxon is the form for registering taxa that are missing from
// the built-in catalog. Additions live for the current run only.
package addtaxon

import (
	"errors"
	"fmt"
	"strings"
	"time"

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

const statusTimeout = 3 * time.Second

// Form field indices in focus order.
const (
	fieldName = iota
	fieldOrder
	fieldDescription
	fieldTolerance
	fieldSubmit
	fieldCount
)

// clearStatusMsg hides the status line set by submission seq.
type clearStatusMsg struct{ seq int }

// AddTaxonScreen collects a NewTaxon and submits it to the catalog.
type AddTaxonScreen struct {
	sess *session.Session
	str  i18n.Strings

	name        components.TextInput
	order       components.TextInput
	description components.TextInput
	tolerance   components.Slider
	focus       int

	status    string
	statusErr bool
	seq       int
}

var _ screen.Screen = (*AddTaxonScreen)(nil)
var _ screen.KeyHintProvider = (*AddTaxonScreen)(nil)

// New creates the form with the name field focused.
func New(sess *session.Session) *AddTaxonScreen {
	str := i18n.For(sess.Lang())
	a := &AddTaxonScreen{
		sess:        sess,
		str:         str,
		name:        components.NewTextInput(str.FieldName, str.NamePlaceholder, 64),
		order:       components.NewTextInput(str.FieldOrder, str.OrderPlaceholder, 64),
		description: components.NewTextInput(str.FieldDescription, str.DescPlaceholder, 280),
		tolerance:   components.NewSlider(str.FieldTolerance, catalog.MinTolerance, catalog.MaxTolerance, catalog.DefaultTolerance),
	}
	a.name.Focus()
	return a
}

func (a *AddTaxonScreen) Init() tea.Cmd { return nil }

func (a *AddTaxonScreen) Title() string { return a.str.TitleAdd }

// Status returns the current status line and whether it reports an error.
func (a *AddTaxonScreen) Status() (string, bool) { return a.status, a.statusErr }

func (a *AddTaxonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		if msg.seq == a.seq {
			a.status = ""
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case "ctrl+s":
			return a, a.submit()
		case "enter":
			if a.focus == fieldSubmit {
				return a, a.submit()
			}
			return a, a.setFocus(a.focus + 1)
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case fieldName:
		a.name, cmd = a.name.Update(msg)
	case fieldOrder:
		a.order, cmd = a.order.Update(msg)
	case fieldDescription:
		a.description, cmd = a.description.Update(msg)
	case fieldTolerance:
		a.tolerance, cmd = a.tolerance.Update(msg)
	}
	return a, cmd
}

func (a *AddTaxonScreen) setFocus(f int) tea.Cmd {
	a.name.Blur()
	a.order.Blur()
	a.description.Blur()
	a.tolerance.Blur()
	a.focus = f

	switch f {
	case fieldName:
		return a.name.Focus()
	case fieldOrder:
		return a.order.Focus()
	case fieldDescription:
		return a.description.Focus()
	case fieldTolerance:
		a.tolerance.Focus()
	}
	return nil
}

// submit sends the form to the catalog and schedules the status line to clear.
func (a *AddTaxonScreen) submit() tea.Cmd {
	_, err := a.sess.AddTaxon(catalog.NewTaxon{
		Name:        a.name.Value(),
		Order:       a.order.Value(),
		Description: a.description.Value(),
		Tolerance:   a.tolerance.Value,
	})

	a.seq++
	seq := a.seq
	hide := tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })

	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		a.statusErr = true
		a.status = a.str.Incomplete
		switch verr.Field {
		case "name":
			a.name.MarkInvalid()
			return tea.Batch(hide, a.setFocus(fieldName))
		case "order":
			a.order.MarkInvalid()
			return tea.Batch(hide, a.setFocus(fieldOrder))
		default:
			a.status = verr.Error()
		}
		return hide
	case err != nil:
		a.statusErr = true
		a.status = err.Error()
		return hide
	}

	a.statusErr = false
	a.status = a.str.Added
	a.name.Reset()
	a.order.Reset()
	a.description.Reset()
	a.tolerance.Set(catalog.DefaultTolerance)
	return tea.Batch(hide, a.setFocus(fieldName))
}

func (a *AddTaxonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab/↑↓", Description: a.str.KeyNext},
	}
	if a.focus == fieldTolerance {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: a.str.KeyAdjust})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: a.str.Submit},
		layout.KeyHint{Key: "Esc", Description: a.str.KeyBack},
	)
}

func (a *AddTaxonScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(a.name.View() + "\n\n")
	b.WriteString(a.order.View() + "\n\n")
	b.WriteString(a.description.View() + "\n\n")
	b.WriteString(a.tolerance.View() + "\n")

	group := catalog.GroupFor(a.tolerance.Value)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("1 = %s   10 = %s", a.str.ScaleSensitive, a.str.ScaleTolerant)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ToleranceColor(a.tolerance.Value)).Render(
		a.str.GroupLabel(group) + ": " + a.str.GroupHint(group)))
	b.WriteString("\n\n")

	b.WriteString(components.NewButton(a.str.Submit, a.focus == fieldSubmit).View())
	b.WriteString("\n")

	if a.status != "" {
		style := theme.Badge
		if a.statusErr {
			style = theme.ErrorText
		}
		b.WriteString(style.Render(a.status) + "\n")
	}

	if added := a.sess.Catalog().UserTaxa(); len(added) > 0 {
		b.WriteString("\n" + theme.Heading.Render(fmt.Sprintf(a.str.AddedList, len(added))))
		for _, t := range added {
			b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Hex(t.Color)).Render(t.Image+" "+t.Name))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("  %s · %s %d", t.Order, a.str.ToleranceShort, t.Tolerance)))
		}
	}

	return lipgloss.NewStyle().PaddingLeft(2).Width(min(width, 80)).Render(b.String())
}
