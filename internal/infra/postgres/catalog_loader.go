package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"flag-quiz-service/internal/domain"
)

// CatalogLoader loads the country catalog from the countries table.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) ([]domain.Country, error) {
	rows, err := l.pool.Query(ctx, `SELECT code, names, flag_url, difficulty FROM countries ORDER BY position, code`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var (
			c          domain.Country
			rawNames   []byte
			difficulty string
		)
		if err := rows.Scan(&c.Code, &rawNames, &c.FlagURL, &difficulty); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		if err := json.Unmarshal(rawNames, &c.Names); err != nil {
			return nil, fmt.Errorf("unmarshal names for %s: %w", c.Code, err)
		}
		c.Difficulty = domain.Difficulty(difficulty)
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(countries) == 0 {
		return nil, domain.ErrCatalogNotFound
	}
	return countries, nil
}
