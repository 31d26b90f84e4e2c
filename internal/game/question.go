package game

import (
	"fmt"

	"flag-quiz-service/internal/domain"
)

// DefaultOptionCount is used when a caller passes a non-positive option count.
const DefaultOptionCount = 4

// BuildQuestion builds a difficulty-aware question for a known band and a
// basic one otherwise.
func BuildQuestion(src Source, countries []domain.Country, difficulty domain.Difficulty, previousCode string, optionCount int) (domain.Question, error) {
	if difficulty.Valid() {
		return BuildDifficultyAwareQuestion(src, countries, difficulty, previousCode, optionCount)
	}
	return BuildBasicQuestion(src, countries, previousCode, optionCount)
}

// BuildBasicQuestion picks a target other than previousCode and fills the
// remaining options with distinct random countries.
func BuildBasicQuestion(src Source, countries []domain.Country, previousCode string, optionCount int) (domain.Question, error) {
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	if len(countries) < optionCount {
		return domain.Question{}, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientCountries, len(countries), optionCount)
	}

	correct, err := PickRandomCountry(src, countries, previousCode)
	if err != nil {
		// Only previousCode is left; repeating it beats failing.
		correct, err = PickRandomCountry(src, countries, "")
		if err != nil {
			return domain.Question{}, err
		}
	}

	pool := Shuffle(src, without(countries, correct.Code))
	return assemble(src, correct, pool[:optionCount-1]), nil
}

// BuildDifficultyAwareQuestion draws the target from the difficulty band and,
// for medium and hard, prefers visually similar flags as distractors. It
// degrades to BuildBasicQuestion over the full catalog when the band is too
// small.
func BuildDifficultyAwareQuestion(src Source, countries []domain.Country, difficulty domain.Difficulty, previousCode string, optionCount int) (domain.Question, error) {
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	filtered := FilterByDifficulty(countries, difficulty)
	if len(filtered) < optionCount {
		return BuildBasicQuestion(src, countries, previousCode, optionCount)
	}

	candidates := filtered
	if previousCode != "" {
		candidates = without(filtered, previousCode)
		if len(candidates) == 0 {
			return BuildBasicQuestion(src, countries, previousCode, optionCount)
		}
	}
	correct, err := PickRandomCountry(src, candidates, "")
	if err != nil {
		return domain.Question{}, err
	}

	need := optionCount - 1
	distractors := make([]domain.Country, 0, need)
	chosen := map[string]struct{}{correct.Code: {}}

	if difficulty == domain.DifficultyMedium || difficulty == domain.DifficultyHard {
		for _, c := range Shuffle(src, FindSimilarFlags(src, correct, countries)) {
			if len(distractors) == need {
				break
			}
			if _, dup := chosen[c.Code]; dup {
				continue
			}
			chosen[c.Code] = struct{}{}
			distractors = append(distractors, c)
		}
	}

	if len(distractors) < need {
		for _, c := range Shuffle(src, filtered) {
			if len(distractors) == need {
				break
			}
			if _, dup := chosen[c.Code]; dup {
				continue
			}
			chosen[c.Code] = struct{}{}
			distractors = append(distractors, c)
		}
	}

	return assemble(src, correct, distractors), nil
}

func assemble(src Source, correct domain.Country, distractors []domain.Country) domain.Question {
	options := make([]domain.Country, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	return domain.Question{Correct: correct, Options: Shuffle(src, options)}
}

func without(countries []domain.Country, code string) []domain.Country {
	out := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if c.Code != code {
			out = append(out, c)
		}
	}
	return out
}
