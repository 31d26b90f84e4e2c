package game

import (
	"testing"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
)

func TestClassifyDifficulty(t *testing.T) {
	idx := catalog.Index(catalog.Countries())
	cases := map[string]domain.Difficulty{
		"US": domain.DifficultyEasy,
		"IS": domain.DifficultyHard,
		"AR": domain.DifficultyMedium,
	}
	for code, want := range cases {
		if got := ClassifyDifficulty(idx[code]); got != want {
			t.Fatalf("%s: expected %s, got %s", code, want, got)
		}
	}

	override := idx["US"]
	override.Difficulty = domain.DifficultyHard
	if got := ClassifyDifficulty(override); got != domain.DifficultyHard {
		t.Fatalf("expected catalog override to win, got %s", got)
	}
}

// Medium countries are admitted by both the easy and the hard band; every
// other country is admitted by exactly one of them.
func TestFilterByDifficultyOverlap(t *testing.T) {
	countries := catalog.Countries()
	easy := codes(FilterByDifficulty(countries, domain.DifficultyEasy))
	hard := codes(FilterByDifficulty(countries, domain.DifficultyHard))

	for _, c := range countries {
		inEasy, inHard := easy[c.Code], hard[c.Code]
		switch ClassifyDifficulty(c) {
		case domain.DifficultyMedium:
			if !inEasy || !inHard {
				t.Fatalf("medium %s should be in both bands (easy=%v hard=%v)", c.Code, inEasy, inHard)
			}
		case domain.DifficultyEasy:
			if !inEasy || inHard {
				t.Fatalf("easy %s should only be in the easy band", c.Code)
			}
		case domain.DifficultyHard:
			if inEasy || !inHard {
				t.Fatalf("hard %s should only be in the hard band", c.Code)
			}
		}
	}

	medium := codes(FilterByDifficulty(countries, domain.DifficultyMedium))
	if len(medium) != len(hard) {
		t.Fatalf("expected medium and hard bands to match, got %d and %d", len(medium), len(hard))
	}
	if got := FilterByDifficulty(countries, "extreme"); len(got) != 0 {
		t.Fatalf("expected unknown band to admit nothing, got %d", len(got))
	}
}

func TestFindSimilarFlagsUnionsGroups(t *testing.T) {
	countries := catalog.Countries()
	idx := catalog.Index(countries)

	got := codes(FindSimilarFlags(NewSource(1), idx["AU"], countries))
	for _, want := range []string{"GB", "NZ", "BR"} {
		if !got[want] {
			t.Fatalf("expected %s among AU look-alikes, got %v", want, got)
		}
	}
	if len(got) != 3 || got["AU"] {
		t.Fatalf("expected exactly GB, NZ, BR, got %v", got)
	}

	nordic := codes(FindSimilarFlags(NewSource(1), idx["SE"], countries))
	if len(nordic) != 4 || !nordic["NO"] || !nordic["IS"] {
		t.Fatalf("unexpected nordic look-alikes %v", nordic)
	}
}

func TestFindSimilarFlagsFallsBackToRandom(t *testing.T) {
	countries := catalog.Countries()
	ca := catalog.Index(countries)["CA"]
	if len(SimilarGroupNames("CA")) != 0 {
		t.Fatalf("test assumes CA has no similarity group")
	}

	got := FindSimilarFlags(NewSource(3), ca, countries)
	if len(got) != 10 {
		t.Fatalf("expected 10 fallback countries, got %d", len(got))
	}
	seen := codes(got)
	if seen["CA"] || len(seen) != 10 {
		t.Fatalf("expected 10 distinct countries other than CA, got %v", seen)
	}
}

func codes(countries []domain.Country) map[string]bool {
	out := make(map[string]bool, len(countries))
	for _, c := range countries {
		out[c.Code] = true
	}
	return out
}
