package quality

import (
	"fmt"
	"strings"
)

// Lang selects the language for user-facing wording.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
)

// ParseLang parses a language code; empty input yields LangES.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "es", "spa", "spanish", "español":
		return LangES, nil
	case "en", "eng", "english":
		return LangEN, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want es or en)", s)
	}
}
