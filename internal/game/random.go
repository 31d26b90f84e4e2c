package game

import (
	"math/rand"

	"flag-quiz-service/internal/domain"
)

// Source is the random source used by every selection in this package.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// DefaultSource is safe for concurrent use.
var DefaultSource Source = globalSource{}

// NewSource returns a seeded source. It is not safe for concurrent use.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func orDefault(src Source) Source {
	if src == nil {
		return DefaultSource
	}
	return src
}

// Shuffle returns a uniformly shuffled copy of items (Fisher-Yates).
func Shuffle[T any](src Source, items []T) []T {
	src = orDefault(src)
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickRandom returns a uniformly chosen element among those not rejected by exclude.
func PickRandom[T any](src Source, items []T, exclude func(T) bool) (T, error) {
	var zero T
	pool := items
	if exclude != nil {
		pool = make([]T, 0, len(items))
		for _, item := range items {
			if !exclude(item) {
				pool = append(pool, item)
			}
		}
	}
	if len(pool) == 0 {
		return zero, domain.ErrEmptyPool
	}
	return pool[orDefault(src).Intn(len(pool))], nil
}

// PickRandomCountry picks a country, skipping excludeCode when it is non-empty.
func PickRandomCountry(src Source, countries []domain.Country, excludeCode string) (domain.Country, error) {
	if excludeCode == "" {
		return PickRandom(src, countries, nil)
	}
	return PickRandom(src, countries, func(c domain.Country) bool { return c.Code == excludeCode })
}
