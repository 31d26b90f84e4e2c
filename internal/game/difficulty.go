package game

import "flag-quiz-service/internal/domain"

// tier is the internal three-level scale behind the difficulty bands.
type tier int

const (
	tierEasy   tier = 1
	tierMedium tier = 2
	tierHard   tier = 3
)

// Hand-curated and non-exhaustive; codes in neither list are medium.
var (
	easyCodes = codeSet("US", "CA", "MX", "BR", "GB", "FR", "DE", "IT", "ES", "JP", "CN", "IN", "AU", "RU", "KR", "CH")
	hardCodes = codeSet("IS", "NZ", "PE", "CL", "AE", "NG", "KE", "MA", "TH", "VN", "ID", "PH", "IE", "AT", "CZ", "FI")
)

func codeSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// bands lists the tiers admitted by each difficulty. Medium countries are
// admitted by every band, and medium and hard admit the same tiers.
var bands = map[domain.Difficulty]map[tier]bool{
	domain.DifficultyEasy:   {tierEasy: true, tierMedium: true},
	domain.DifficultyMedium: {tierMedium: true, tierHard: true},
	domain.DifficultyHard:   {tierMedium: true, tierHard: true},
}

func tierOf(d domain.Difficulty) tier {
	switch d {
	case domain.DifficultyEasy:
		return tierEasy
	case domain.DifficultyHard:
		return tierHard
	}
	return tierMedium
}

// ClassifyDifficulty returns the country's tier, honoring a catalog override.
func ClassifyDifficulty(c domain.Country) domain.Difficulty {
	if c.Difficulty.Valid() {
		return c.Difficulty
	}
	if _, ok := easyCodes[c.Code]; ok {
		return domain.DifficultyEasy
	}
	if _, ok := hardCodes[c.Code]; ok {
		return domain.DifficultyHard
	}
	return domain.DifficultyMedium
}

// FilterByDifficulty returns the countries admitted by the difficulty band.
// An unknown band admits nothing.
func FilterByDifficulty(countries []domain.Country, difficulty domain.Difficulty) []domain.Country {
	admitted := bands[difficulty]
	out := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if admitted[tierOf(ClassifyDifficulty(c))] {
			out = append(out, c)
		}
	}
	return out
}
