package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"flag-quiz-service/internal/domain"
)

// ProfileStore keeps player data in plain Redis keys without expiry:
//
//	flagquiz:player:{id}:score     integer
//	flagquiz:player:{id}:settings  JSON
//	flagquiz:player:{id}:name      string
type ProfileStore struct {
	client *redis.Client
}

func NewProfileStore(client *redis.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) LoadCumulativeScore(ctx context.Context, playerID string) (int, error) {
	raw, err := s.client.Get(ctx, s.key(playerID, "score")).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load score: %w", err)
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

func (s *ProfileStore) SaveCumulativeScore(ctx context.Context, playerID string, score int) error {
	if err := s.client.Set(ctx, s.key(playerID, "score"), score, 0).Err(); err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

func (s *ProfileStore) IncrementCumulativeScore(ctx context.Context, playerID string) (int, error) {
	score, err := s.client.Incr(ctx, s.key(playerID, "score")).Result()
	if err != nil {
		return 0, fmt.Errorf("increment score: %w", err)
	}
	return int(score), nil
}

func (s *ProfileStore) ResetCumulativeScore(ctx context.Context, playerID string) error {
	if err := s.client.Del(ctx, s.key(playerID, "score")).Err(); err != nil {
		return fmt.Errorf("reset score: %w", err)
	}
	return nil
}

func (s *ProfileStore) LoadSettings(ctx context.Context, playerID string) (domain.Settings, error) {
	raw, err := s.client.Get(ctx, s.key(playerID, "settings")).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *ProfileStore) SaveSettings(ctx context.Context, playerID string, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.client.Set(ctx, s.key(playerID, "settings"), raw, 0).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *ProfileStore) LoadDisplayName(ctx context.Context, playerID string) (string, error) {
	name, err := s.client.Get(ctx, s.key(playerID, "name")).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load display name: %w", err)
	}
	return name, nil
}

func (s *ProfileStore) SaveDisplayName(ctx context.Context, playerID string, name string) error {
	if err := s.client.Set(ctx, s.key(playerID, "name"), domain.TrimDisplayName(name), 0).Err(); err != nil {
		return fmt.Errorf("save display name: %w", err)
	}
	return nil
}

func (s *ProfileStore) key(playerID, field string) string {
	return "flagquiz:player:" + playerID + ":" + field
}
