package memory

import (
	"context"
	"sync"

	"flag-quiz-service/internal/domain"
)

type profile struct {
	score       int
	settings    *domain.Settings
	displayName string
}

// ProfileStore is an in-memory implementation of app.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]*profile)}
}

func (s *ProfileStore) LoadCumulativeScore(_ context.Context, playerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[playerID]; ok {
		return p.score, nil
	}
	return 0, nil
}

func (s *ProfileStore) SaveCumulativeScore(_ context.Context, playerID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileLocked(playerID).score = score
	return nil
}

func (s *ProfileStore) IncrementCumulativeScore(_ context.Context, playerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(playerID)
	p.score++
	return p.score, nil
}

func (s *ProfileStore) ResetCumulativeScore(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[playerID]; ok {
		p.score = 0
	}
	return nil
}

func (s *ProfileStore) LoadSettings(_ context.Context, playerID string) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[playerID]; ok && p.settings != nil {
		return *p.settings, nil
	}
	return domain.DefaultSettings(), nil
}

func (s *ProfileStore) SaveSettings(_ context.Context, playerID string, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileLocked(playerID).settings = &settings
	return nil
}

func (s *ProfileStore) LoadDisplayName(_ context.Context, playerID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[playerID]; ok {
		return p.displayName, nil
	}
	return "", nil
}

func (s *ProfileStore) SaveDisplayName(_ context.Context, playerID string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileLocked(playerID).displayName = domain.TrimDisplayName(name)
	return nil
}

func (s *ProfileStore) profileLocked(playerID string) *profile {
	p, ok := s.profiles[playerID]
	if !ok {
		p = &profile{}
		s.profiles[playerID] = p
	}
	return p
}
