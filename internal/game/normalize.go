package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"flag-quiz-service/internal/domain"
)

// NormalizeAnswer folds a free-text answer for comparison: diacritics are
// stripped, case is lowered, apostrophes are dropped so "d'Ivoire" matches
// "divoire", and any other non-alphanumeric run becomes a single space.
func NormalizeAnswer(s string) string {
	// transform.Chain keeps per-call buffers, so it is built each time.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case isApostrophe(r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '’', '‘', '`', 'ʼ':
		return true
	}
	return false
}

// MatchesCountry reports whether input names the country in any of its languages.
func MatchesCountry(input string, c domain.Country) bool {
	want := NormalizeAnswer(input)
	if want == "" {
		return false
	}
	for _, name := range c.Names {
		if NormalizeAnswer(name) == want {
			return true
		}
	}
	return false
}
