package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"flag-quiz-service/internal/domain"
)

// ProfileStore keeps one row per player in the players table.
type ProfileStore struct {
	pool *pgxpool.Pool
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) LoadCumulativeScore(ctx context.Context, playerID string) (int, error) {
	var score int
	err := s.pool.QueryRow(ctx, `SELECT cumulative_score FROM players WHERE id=$1`, playerID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load score: %w", err)
	}
	return score, nil
}

func (s *ProfileStore) SaveCumulativeScore(ctx context.Context, playerID string, score int) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (id, cumulative_score) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET cumulative_score=EXCLUDED.cumulative_score, updated_at=now()`,
		playerID, score)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

func (s *ProfileStore) IncrementCumulativeScore(ctx context.Context, playerID string) (int, error) {
	var score int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO players (id, cumulative_score) VALUES ($1, 1)
		ON CONFLICT (id) DO UPDATE SET cumulative_score=players.cumulative_score + 1, updated_at=now()
		RETURNING cumulative_score`, playerID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("increment score: %w", err)
	}
	return score, nil
}

func (s *ProfileStore) ResetCumulativeScore(ctx context.Context, playerID string) error {
	if _, err := s.pool.Exec(ctx, `UPDATE players SET cumulative_score=0, updated_at=now() WHERE id=$1`, playerID); err != nil {
		return fmt.Errorf("reset score: %w", err)
	}
	return nil
}

func (s *ProfileStore) LoadSettings(ctx context.Context, playerID string) (domain.Settings, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT settings FROM players WHERE id=$1`, playerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && len(raw) == 0) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, nil
}

func (s *ProfileStore) SaveSettings(ctx context.Context, playerID string, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO players (id, settings) VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET settings=EXCLUDED.settings, updated_at=now()`,
		playerID, string(raw))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *ProfileStore) LoadDisplayName(ctx context.Context, playerID string) (string, error) {
	var name string
	err := s.pool.QueryRow(ctx, `SELECT display_name FROM players WHERE id=$1`, playerID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load display name: %w", err)
	}
	return name, nil
}

func (s *ProfileStore) SaveDisplayName(ctx context.Context, playerID string, name string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (id, display_name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET display_name=EXCLUDED.display_name, updated_at=now()`,
		playerID, domain.TrimDisplayName(name))
	if err != nil {
		return fmt.Errorf("save display name: %w", err)
	}
	return nil
}
