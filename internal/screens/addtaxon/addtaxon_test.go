package addtaxon

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/session"
)

var (
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	save  = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

func typeText(a *AddTaxonScreen, text string) {
	for _, r := range text {
		a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newScreen() (*AddTaxonScreen, *session.Session) {
	sess := session.New(catalog.New())
	return New(sess), sess
}

func TestAddTaxonScreen_RejectsEmptyForm(t *testing.T) {
	a, sess := newScreen()

	_, cmd := a.Update(save)
	if cmd == nil {
		t.Error("expected a command to clear the status line")
	}
	status, isErr := a.Status()
	if !isErr || !strings.Contains(status, "completa") {
		t.Errorf("status = %q (err=%v), want the incomplete-form message", status, isErr)
	}
	if got := len(sess.Catalog().UserTaxa()); got != 0 {
		t.Errorf("user taxa = %d, want 0", got)
	}
}

func TestAddTaxonScreen_Submit(t *testing.T) {
	a, sess := newScreen()

	typeText(a, "Perlidae")
	a.Update(tab)
	typeText(a, "Plecoptera")
	a.Update(tab)
	a.Update(tab)
	a.Update(right)
	a.Update(right)
	a.Update(save)

	added := sess.Catalog().UserTaxa()
	if len(added) != 1 {
		t.Fatalf("user taxa = %d, want 1", len(added))
	}
	got := added[0]
	if got.Name != "Perlidae" || got.Order != "Plecoptera" {
		t.Errorf("added %q/%q, want Perlidae/Plecoptera", got.Name, got.Order)
	}
	if got.Tolerance != catalog.DefaultTolerance+2 {
		t.Errorf("Tolerance = %d, want %d", got.Tolerance, catalog.DefaultTolerance+2)
	}

	status, isErr := a.Status()
	if isErr || status == "" {
		t.Errorf("status = %q (err=%v), want success message", status, isErr)
	}
	if a.name.Value() != "" || a.order.Value() != "" {
		t.Error("form should be cleared after a successful add")
	}
	if a.tolerance.Value != catalog.DefaultTolerance {
		t.Errorf("tolerance = %d after reset, want %d", a.tolerance.Value, catalog.DefaultTolerance)
	}
	if !strings.Contains(a.View(100, 40), "Organismos Agregados (1)") {
		t.Error("view should list the added taxon")
	}
}

func TestAddTaxonScreen_EnterAdvancesThenSubmits(t *testing.T) {
	a, sess := newScreen()
	enter := tea.KeyPressMsg{Code: tea.KeyEnter}

	typeText(a, "Gripopterygidae")
	a.Update(enter)
	typeText(a, "Plecoptera")
	for range 3 {
		a.Update(enter)
	}
	if a.focus != fieldSubmit {
		t.Fatalf("focus = %d, want submit button", a.focus)
	}
	a.Update(enter)

	if got := len(sess.Catalog().UserTaxa()); got != 1 {
		t.Errorf("user taxa = %d, want 1", got)
	}
}

func TestAddTaxonScreen_MissingOrderFocusesOrder(t *testing.T) {
	a, _ := newScreen()
	typeText(a, "Perlidae")
	a.Update(save)
	if a.focus != fieldOrder {
		t.Errorf("focus = %d, want order field", a.focus)
	}
}

func TestAddTaxonScreen_StatusClears(t *testing.T) {
	a, _ := newScreen()
	a.Update(save)

	a.Update(clearStatusMsg{seq: a.seq - 1})
	if status, _ := a.Status(); status == "" {
		t.Error("stale clear message should not hide the current status")
	}
	a.Update(clearStatusMsg{seq: a.seq})
	if status, _ := a.Status(); status != "" {
		t.Errorf("status = %q, want cleared", status)
	}
}

func TestAddTaxonScreen_FocusWraps(t *testing.T) {
	a, _ := newScreen()
	a.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if a.focus != fieldSubmit {
		t.Errorf("focus = %d, want submit after shift+tab from the first field", a.focus)
	}
	a.Update(tab)
	if a.focus != fieldName {
		t.Errorf("focus = %d, want name after tab from submit", a.focus)
	}
}
