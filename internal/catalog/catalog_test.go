package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func validInput() NewTaxon {
	return NewTaxon{
		Name:        "Perlidae",
		Order:       "Plecoptera",
		Description: "Ninfa de plecóptero con dos colas.",
		Tolerance:   7,
	}
}

// sequenceIDs returns an IDFunc that yields the given IDs in order.
func sequenceIDs(ids ...string) IDFunc {
	i := 0
	return func() (string, string) {
		id := ids[i%len(ids)]
		i++
		return id, "#000000"
	}
}

func TestAllTaxa_BuiltinOnly(t *testing.T) {
	c := New()
	all := c.AllTaxa()
	if len(all) != 7 {
		t.Fatalf("got %d taxa, want 7", len(all))
	}
	if all[0].ID != "hyalellidae" || all[6].ID != "elmidae" {
		t.Errorf("unexpected order: first %q, last %q", all[0].ID, all[6].ID)
	}
	for _, tx := range all {
		if tx.UserAdded {
			t.Errorf("built-in taxon %q flagged as user-added", tx.ID)
		}
	}
}

func TestAllTaxa_ReturnsCopy(t *testing.T) {
	c := New()
	all := c.AllTaxa()
	all[0].Name = "mutated"

	again := c.AllTaxa()
	if again[0].Name != "Hyalellidae" {
		t.Errorf("catalog mutated through returned slice: got %q", again[0].Name)
	}
}

func TestAddUserTaxon_DerivesScores(t *testing.T) {
	c := New()
	tx, err := c.AddUserTaxon(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.BMWP != 3 || tx.ABI != 3 || tx.IBF != 7 {
		t.Errorf("scores = bmwp %d abi %d ibf %d, want 3 3 7", tx.BMWP, tx.ABI, tx.IBF)
	}
	if !tx.UserAdded {
		t.Error("expected UserAdded = true")
	}
	if !strings.HasPrefix(tx.ID, UserIDPrefix) {
		t.Errorf("ID %q missing prefix %q", tx.ID, UserIDPrefix)
	}
	for _, b := range Builtin() {
		if b.ID == tx.ID {
			t.Errorf("user ID %q collides with built-in", tx.ID)
		}
	}
	if tx.Habitat != UserHabitat {
		t.Errorf("Habitat = %q, want %q", tx.Habitat, UserHabitat)
	}
	if len(tx.Color) != 7 || tx.Color[0] != '#' {
		t.Errorf("Color = %q, want #RRGGBB", tx.Color)
	}
}

func TestAddUserTaxon_AppendsInSubmissionOrder(t *testing.T) {
	c := New()
	first, _ := c.AddUserTaxon(NewTaxon{Name: "A", Order: "X", Tolerance: 2})
	second, _ := c.AddUserTaxon(NewTaxon{Name: "B", Order: "Y", Tolerance: 9})

	all := c.AllTaxa()
	if len(all) != 9 {
		t.Fatalf("got %d taxa, want 9", len(all))
	}
	if all[7].ID != first.ID || all[8].ID != second.ID {
		t.Errorf("user taxa not appended in submission order")
	}
	if first.ID == second.ID {
		t.Errorf("two adds produced the same ID %q", first.ID)
	}

	user := c.UserTaxa()
	if len(user) != 2 {
		t.Errorf("UserTaxa: got %d, want 2", len(user))
	}
}

func TestAddUserTaxon_TrimsFields(t *testing.T) {
	c := New()
	tx, err := c.AddUserTaxon(NewTaxon{Name: "  Leptoceridae ", Order: " Trichoptera\t", Tolerance: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Name != "Leptoceridae" || tx.Order != "Trichoptera" {
		t.Errorf("fields not trimmed: %q / %q", tx.Name, tx.Order)
	}
}

func TestAddUserTaxon_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    NewTaxon
		field string
	}{
		{"empty name", NewTaxon{Order: "Diptera", Tolerance: 5}, "name"},
		{"blank name", NewTaxon{Name: "   ", Order: "Diptera", Tolerance: 5}, "name"},
		{"empty order", NewTaxon{Name: "Chironomidae", Tolerance: 5}, "order"},
		{"tolerance zero", NewTaxon{Name: "Chironomidae", Order: "Diptera", Tolerance: 0}, "tolerance"},
		{"tolerance eleven", NewTaxon{Name: "Chironomidae", Order: "Diptera", Tolerance: 11}, "tolerance"},
		{"tolerance negative", NewTaxon{Name: "Chironomidae", Order: "Diptera", Tolerance: -3}, "tolerance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, err := c.AddUserTaxon(tt.in)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			if valErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", valErr.Field, tt.field)
			}
			if got := len(c.AllTaxa()); got != 7 {
				t.Errorf("catalog mutated on rejected add: %d taxa", got)
			}
		})
	}
}

func TestAddUserTaxon_BoundaryTolerances(t *testing.T) {
	c := New()
	for _, tol := range []int{MinTolerance, MaxTolerance} {
		tx, err := c.AddUserTaxon(NewTaxon{Name: "N", Order: "O", Tolerance: tol})
		if err != nil {
			t.Fatalf("tolerance %d: unexpected error: %v", tol, err)
		}
		if tx.BMWP != 10-tol || tx.IBF != tol {
			t.Errorf("tolerance %d: bmwp %d ibf %d", tol, tx.BMWP, tx.IBF)
		}
	}
}

func TestAddUserTaxon_DuplicateID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"collides with built-in", []string{"baetidae"}},
		{"collides with user taxon", []string{"user-1", "user-1"}},
		{"empty id", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithIDFunc(sequenceIDs(tt.ids...)))
			var err error
			for range tt.ids {
				_, err = c.AddUserTaxon(validInput())
			}
			var dupErr *DuplicateIDError
			if !errors.As(err, &dupErr) {
				t.Fatalf("expected *DuplicateIDError, got %T (%v)", err, err)
			}
			if dupErr.ID != tt.ids[len(tt.ids)-1] {
				t.Errorf("ID = %q, want %q", dupErr.ID, tt.ids[len(tt.ids)-1])
			}
			if got := len(c.UserTaxa()); got != len(tt.ids)-1 {
				t.Errorf("UserTaxa: got %d, want %d", got, len(tt.ids)-1)
			}
		})
	}
}

func TestAddUserTaxon_ConcurrentAddsUniqueIDs(t *testing.T) {
	c := New()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := c.AddUserTaxon(NewTaxon{Name: fmt.Sprintf("T%d", i), Order: "O", Tolerance: 5}); err != nil {
				t.Errorf("add %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, tx := range c.AllTaxa() {
		if seen[tx.ID] {
			t.Errorf("duplicate ID %q", tx.ID)
		}
		seen[tx.ID] = true
	}
	if len(seen) != 7+n {
		t.Errorf("got %d unique IDs, want %d", len(seen), 7+n)
	}
}

func TestGet(t *testing.T) {
	c := New()
	tx, err := c.Get("physidae")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Order != "Gasteropoda" {
		t.Errorf("Order = %q, want Gasteropoda", tx.Order)
	}

	added, _ := c.AddUserTaxon(validInput())
	got, err := c.Get(added.ID)
	if err != nil || got.Name != added.Name {
		t.Errorf("Get(user) = %+v, %v", got, err)
	}

	if _, err := c.Get("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	c := New()
	c.AddUserTaxon(NewTaxon{Name: "Perlidae", Order: "Plecoptera", Tolerance: 1})

	tests := []struct {
		query string
		want  []string
	}{
		{"baet", []string{"baetidae"}},
		{"BAET", []string{"baetidae"}},
		{"ptera", []string{"baetidae", "tipulidae", "elmidae"}},
		{"idae", []string{"hyalellidae", "baetidae", "physidae", "tipulidae", "planariidae", "elmidae"}},
		{"diptera", []string{"tipulidae"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got := c.Search(tt.query)
		var ids []string
		for _, tx := range got {
			if tx.UserAdded {
				continue
			}
			ids = append(ids, tx.ID)
		}
		if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Search(%q) = %v, want %v", tt.query, ids, tt.want)
		}
	}

	user := c.Search("plecop")
	if len(user) != 1 || !user[0].UserAdded {
		t.Errorf("Search should include user taxa, got %+v", user)
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	c := New()
	c.AddUserTaxon(validInput())

	for _, q := range []string{"", "   "} {
		got := c.Search(q)
		all := c.AllTaxa()
		if len(got) != len(all) {
			t.Fatalf("Search(%q): got %d, want %d", q, len(got), len(all))
		}
		for i := range all {
			if got[i].ID != all[i].ID {
				t.Errorf("Search(%q)[%d] = %q, want %q", q, i, got[i].ID, all[i].ID)
			}
		}
	}
}

func TestAddUserTaxon_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(WithLogger(zap.New(core)))

	c.AddUserTaxon(validInput())
	c.AddUserTaxon(NewTaxon{})

	if n := logs.FilterMessage("user taxon added").Len(); n != 1 {
		t.Errorf("added log entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("user taxon rejected").Len(); n != 1 {
		t.Errorf("rejected log entries = %d, want 1", n)
	}
}
