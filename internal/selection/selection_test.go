package selection

import (
	"testing"

	"github.com/abhisek/aquamib/internal/catalog"
)

func taxon(id string) catalog.Taxon {
	return catalog.Taxon{ID: id, Name: id, Order: "Diptera", Tolerance: 5}
}

func TestToggle_AddsAndRemoves(t *testing.T) {
	var s Selection

	if !s.Toggle(taxon("a")) {
		t.Error("first toggle should select")
	}
	if !s.Contains("a") || s.Len() != 1 {
		t.Errorf("expected {a}, got %v", s.IDs())
	}
	if s.Toggle(taxon("a")) {
		t.Error("second toggle should deselect")
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty, got %v", s.IDs())
	}
}

func TestToggle_TwiceRestoresMembership(t *testing.T) {
	s := New(taxon("a"), taxon("b"), taxon("c"))
	before := s.IDs()

	for _, id := range []string{"b", "z"} {
		s.Toggle(taxon(id))
		s.Toggle(taxon(id))

		after := s.IDs()
		if len(after) != len(before) {
			t.Fatalf("toggle %q twice: got %v, want %v", id, after, before)
		}
		for _, want := range before {
			if !s.Contains(want) {
				t.Errorf("toggle %q twice: lost %q", id, want)
			}
		}
	}
}

func TestToggle_MatchesByID(t *testing.T) {
	var s Selection
	a := taxon("a")
	s.Toggle(a)

	// A separately looked-up copy with different metadata is the same member.
	copyA := a
	copyA.Name = "renamed"
	s.Toggle(copyA)

	if !s.IsEmpty() {
		t.Errorf("expected toggle by equal ID to remove, got %v", s.IDs())
	}
}

func TestMembers_InsertionOrder(t *testing.T) {
	var s Selection
	for _, id := range []string{"c", "a", "b"} {
		s.Toggle(taxon(id))
	}
	s.Toggle(taxon("a"))
	s.Toggle(taxon("d"))

	want := []string{"c", "b", "d"}
	got := s.IDs()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", got, want)
		}
	}
}

func TestMembers_ReturnsCopy(t *testing.T) {
	s := New(taxon("a"))
	m := s.Members()
	m[0].ID = "x"
	if !s.Contains("a") {
		t.Error("selection mutated through Members()")
	}
}

func TestNew_SkipsDuplicates(t *testing.T) {
	s := New(taxon("a"), taxon("a"), taxon("b"))
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := New(taxon("a"), taxon("b"))
	s.Clear()
	if !s.IsEmpty() || s.Contains("a") {
		t.Errorf("expected empty after Clear, got %v", s.IDs())
	}
	s.Toggle(taxon("a"))
	if s.Len() != 1 {
		t.Errorf("selection unusable after Clear: %v", s.IDs())
	}
}

func TestNoDuplicateIDs(t *testing.T) {
	var s Selection
	ids := []string{"a", "b", "a", "c", "b", "a", "a"}
	for _, id := range ids {
		s.Toggle(taxon(id))
		seen := make(map[string]bool)
		for _, got := range s.IDs() {
			if seen[got] {
				t.Fatalf("duplicate ID %q in %v", got, s.IDs())
			}
			seen[got] = true
		}
	}
}
