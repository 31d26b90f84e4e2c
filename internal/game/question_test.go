package game

import (
	"errors"
	"testing"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
)

func assertWellFormed(t *testing.T, q domain.Question, optionCount int) {
	t.Helper()
	if len(q.Options) != optionCount {
		t.Fatalf("expected %d options, got %d", optionCount, len(q.Options))
	}
	seen := map[string]bool{}
	correct := 0
	for _, opt := range q.Options {
		if seen[opt.Code] {
			t.Fatalf("duplicate option %s", opt.Code)
		}
		seen[opt.Code] = true
		if opt.Code == q.Correct.Code {
			correct++
		}
	}
	if correct != 1 {
		t.Fatalf("expected the correct country exactly once, got %d", correct)
	}
}

func TestBuildBasicQuestionIsWellFormed(t *testing.T) {
	src := NewSource(11)
	countries := catalog.Countries()
	for _, n := range []int{4, 6, 8} {
		for i := 0; i < 200; i++ {
			q, err := BuildBasicQuestion(src, countries, "", n)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			assertWellFormed(t, q, n)
		}
	}
}

func TestBuildBasicQuestionDefaultsOptionCount(t *testing.T) {
	q, err := BuildBasicQuestion(NewSource(1), catalog.Countries(), "", 0)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	assertWellFormed(t, q, DefaultOptionCount)
}

func TestBuildBasicQuestionAvoidsPrevious(t *testing.T) {
	src := NewSource(5)
	countries := testCountries(4)
	for i := 0; i < 500; i++ {
		q, err := BuildBasicQuestion(src, countries, "C0", 4)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if q.Correct.Code == "C0" {
			t.Fatalf("previous country repeated as target")
		}
		assertWellFormed(t, q, 4)
	}
}

func TestBuildBasicQuestionRepeatsSoleCountry(t *testing.T) {
	q, err := BuildBasicQuestion(NewSource(1), testCountries(1), "C0", 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if q.Correct.Code != "C0" || len(q.Options) != 1 {
		t.Fatalf("expected the sole country as target, got %+v", q)
	}
}

func TestBuildBasicQuestionInsufficientCountries(t *testing.T) {
	_, err := BuildBasicQuestion(NewSource(1), testCountries(3), "", 4)
	if !errors.Is(err, domain.ErrInsufficientCountries) {
		t.Fatalf("expected insufficient countries error, got %v", err)
	}
}

func TestBuildDifficultyAwareQuestionDrawsFromBand(t *testing.T) {
	src := NewSource(9)
	countries := catalog.Countries()
	for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		band := codes(FilterByDifficulty(countries, difficulty))
		prev := ""
		for i := 0; i < 200; i++ {
			q, err := BuildDifficultyAwareQuestion(src, countries, difficulty, prev, 4)
			if err != nil {
				t.Fatalf("%s: build: %v", difficulty, err)
			}
			assertWellFormed(t, q, 4)
			if !band[q.Correct.Code] {
				t.Fatalf("%s: target %s outside the band", difficulty, q.Correct.Code)
			}
			if q.Correct.Code == prev {
				t.Fatalf("%s: previous target %s repeated", difficulty, prev)
			}
			prev = q.Correct.Code
		}
	}
}

func TestBuildDifficultyAwareQuestionPrefersSimilarFlags(t *testing.T) {
	countries := testCountries(10)
	for i := range countries {
		countries[i].Difficulty = domain.DifficultyEasy
	}
	for _, code := range []string{"SE", "NO", "DK", "FI", "IS"} {
		countries = append(countries, domain.Country{
			Code:       code,
			Names:      map[domain.Language]string{domain.LangEN: code},
			Difficulty: domain.DifficultyHard,
		})
	}
	nordic := map[string]bool{"SE": true, "NO": true, "DK": true, "FI": true, "IS": true}

	src := NewSource(21)
	for i := 0; i < 100; i++ {
		q, err := BuildDifficultyAwareQuestion(src, countries, domain.DifficultyHard, "", 4)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		assertWellFormed(t, q, 4)
		for _, opt := range q.Options {
			if !nordic[opt.Code] {
				t.Fatalf("expected only nordic-cross options, got %s", opt.Code)
			}
		}
	}
}

func TestBuildDifficultyAwareQuestionFallsBackWhenBandTooSmall(t *testing.T) {
	countries := testCountries(6)
	for i := range countries {
		countries[i].Difficulty = domain.DifficultyHard
	}
	q, err := BuildDifficultyAwareQuestion(NewSource(2), countries, domain.DifficultyEasy, "", 4)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	assertWellFormed(t, q, 4)
}

func TestBuildQuestionUnknownDifficultyIsBasic(t *testing.T) {
	q, err := BuildQuestion(NewSource(4), catalog.Countries(), "", "", 6)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	assertWellFormed(t, q, 6)
}
