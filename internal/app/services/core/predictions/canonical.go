package predictions

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CanonicalSymptom lower-cases name and joins its words with single underscores,
// so "Skin Rash", "skin  rash" and "skin__rash" all become "skin_rash".
func CanonicalSymptom(name string) string {
	normalized := norm.NFKC.String(name)
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r) || unicode.IsControl(r)
	})
	// A Caser keeps state between calls, so one is built per call.
	return cases.Lower(language.Und).String(strings.Join(fields, "_"))
}
