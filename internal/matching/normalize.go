package matching

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a profession label to the key it is compared by.
type Normalizer func(label string) string

const (
	ModeExact  = "exact"
	ModeFolded = "folded"
)

// Exact compares labels byte for byte.
func Exact(label string) string {
	return label
}

// Folded ignores case, diacritics and surrounding or repeated whitespace,
// so "Técnico  de Enfermagem" and "tecnico de enfermagem" share a key.
func Folded(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, label)
	if err != nil {
		stripped = label
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// NormalizerFor resolves a configured match mode.
func NormalizerFor(mode string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeExact:
		return Exact, nil
	case ModeFolded:
		return Folded, nil
	default:
		return nil, fmt.Errorf("unknown profession match mode %q", mode)
	}
}
