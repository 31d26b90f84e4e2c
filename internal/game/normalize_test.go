package game

import (
	"testing"

	"flag-quiz-service/internal/catalog"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"CÔTE D'IVOIRE", "cote divoire"},
		{"cote divoire", "cote divoire"},
		{"Côte d’Ivoire", "cote divoire"},
		{"  United-States  ", "united states"},
		{"Émirats Arabes Unis", "emirats arabes unis"},
		{"Nouvelle---Zélande!!", "nouvelle zelande"},
		{"", ""},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAnswer(tc.in); got != tc.want {
			t.Fatalf("NormalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchesCountryAcceptsEveryLanguage(t *testing.T) {
	idx := catalog.Index(catalog.Countries())
	us := idx["US"]
	for _, answer := range []string{"united states", "UNITED STATES", "etats unis", "États-Unis"} {
		if !MatchesCountry(answer, us) {
			t.Fatalf("expected %q to match %s", answer, us.Code)
		}
	}
	if MatchesCountry("canada", us) {
		t.Fatalf("expected canada not to match US")
	}
	if MatchesCountry("   ", us) {
		t.Fatalf("expected blank input not to match")
	}
}
