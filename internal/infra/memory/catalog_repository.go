package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
)

// CatalogLoader fetches the country catalog from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Country, error)
}

// CatalogRepository caches the catalog with a TTL to avoid repeated loads.
// A ttl <= 0 keeps the first successful load forever.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	countries []domain.Country
	expiresAt time.Time
}

const catalogFlightKey = "catalog"

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) ([]domain.Country, error) {
	if countries, ok := r.cached(r.clock()); ok {
		return countries, nil
	}

	result, err, _ := r.sf.Do(catalogFlightKey, func() (interface{}, error) {
		now := r.clock()
		if countries, ok := r.cached(now); ok {
			return countries, nil
		}

		countries, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if len(countries) == 0 {
			return nil, domain.ErrCatalogNotFound
		}

		r.mu.Lock()
		r.countries = countries
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Country), nil
}

func (r *CatalogRepository) cached(now time.Time) ([]domain.Country, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.countries != nil && (r.ttl <= 0 || r.expiresAt.After(now)) {
		return r.countries, true
	}
	return nil, false
}

// ttlWithJitter needs no lock on rnd: it only runs inside the single flight.
func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader serves a fixed catalog (the built-in one by default).
type StaticCatalogLoader struct {
	countries []domain.Country
}

func NewStaticCatalogLoader(countries []domain.Country) *StaticCatalogLoader {
	if countries == nil {
		countries = catalog.Countries()
	}
	return &StaticCatalogLoader{countries: countries}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context) ([]domain.Country, error) {
	if len(l.countries) == 0 {
		return nil, domain.ErrCatalogNotFound
	}
	out := make([]domain.Country, len(l.countries))
	copy(out, l.countries)
	return out, nil
}
