package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"flag-quiz-service/internal/domain"
)

// CatalogLoader fetches the catalog from a backing store (e.g. Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Country, error)
}

// CatalogKey holds the JSON-encoded catalog.
const CatalogKey = "flagquiz:catalog"

// CatalogRepository caches the catalog in Redis and falls back to a loader on cache miss.
// A ttl <= 0 stores the key without expiry.
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) ([]domain.Country, error) {
	if countries, ok := r.cached(ctx); ok {
		return countries, nil
	}

	result, err, _ := r.sf.Do(CatalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if countries, ok := r.cached(ctx); ok {
			return countries, nil
		}

		countries, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		if len(countries) == 0 {
			return nil, domain.ErrCatalogNotFound
		}

		if raw, err := json.Marshal(countries); err == nil {
			// best-effort: a failed write only costs another load
			_ = r.client.Set(ctx, CatalogKey, raw, r.ttlWithJitter()).Err()
		}
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Country), nil
}

func (r *CatalogRepository) cached(ctx context.Context) ([]domain.Country, bool) {
	raw, err := r.client.Get(ctx, CatalogKey).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	var countries []domain.Country
	if err := json.Unmarshal(raw, &countries); err != nil || len(countries) == 0 {
		return nil, false
	}
	return countries, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
