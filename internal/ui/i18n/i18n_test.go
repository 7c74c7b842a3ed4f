package i18n

import (
	"reflect"
	"testing"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
)

func TestFor(t *testing.T) {
	if For(quality.LangEN).Tagline != english.Tagline {
		t.Error("For(en) should return English wording")
	}
	if For(quality.LangES).Tagline != spanish.Tagline {
		t.Error("For(es) should return Spanish wording")
	}
	if For("").Tagline != spanish.Tagline {
		t.Error("unknown language should fall back to Spanish")
	}
}

// Every string field must be filled in for both languages.
func TestStringsComplete(t *testing.T) {
	for name, s := range map[string]Strings{"es": spanish, "en": english} {
		v := reflect.ValueOf(s)
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() == reflect.String && f.String() == "" {
				t.Errorf("%s: %s is empty", name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestGroupWording(t *testing.T) {
	s := For(quality.LangES)
	tests := []struct {
		tolerance int
		label     string
	}{
		{1, "Muy Sensibles"},
		{5, "Moderadamente Tolerantes"},
		{10, "Muy Tolerantes"},
	}
	for _, tt := range tests {
		if got := s.GroupLabel(catalog.GroupFor(tt.tolerance)); got != tt.label {
			t.Errorf("GroupLabel(GroupFor(%d)) = %q, want %q", tt.tolerance, got, tt.label)
		}
	}
	if s.GroupHint(catalog.GroupTolerant) != "Indican contaminación" {
		t.Errorf("GroupHint(tolerant) = %q", s.GroupHint(catalog.GroupTolerant))
	}
}
