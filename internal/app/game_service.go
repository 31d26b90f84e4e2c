package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flag-quiz-service/internal/domain"
	"flag-quiz-service/internal/game"
)

// SessionRepository abstracts where live sessions are kept (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
	// ForPlayer lists the live sessions owned by the player.
	ForPlayer(playerID string) []*Session
}

// CatalogRepository loads the country catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) ([]domain.Country, error)
}

// ProfileStore persists per-player data. Every call may fail; callers apply
// defaults on read failure and treat writes as best-effort.
type ProfileStore interface {
	LoadCumulativeScore(ctx context.Context, playerID string) (int, error)
	// IncrementCumulativeScore atomically adds one and returns the new total.
	IncrementCumulativeScore(ctx context.Context, playerID string) (int, error)
	ResetCumulativeScore(ctx context.Context, playerID string) error
	LoadSettings(ctx context.Context, playerID string) (domain.Settings, error)
	SaveSettings(ctx context.Context, playerID string, settings domain.Settings) error
	LoadDisplayName(ctx context.Context, playerID string) (string, error)
	SaveDisplayName(ctx context.Context, playerID string, name string) error
}

// GameService contains the game use cases shared by every transport.
type GameService struct {
	sessions    SessionRepository
	catalog     CatalogRepository
	profiles    ProfileStore
	logger      *zap.Logger
	scheduler   Scheduler
	now         func() time.Time
	newSource   func() game.Source
	observer    Observer
	autoAdvance int
}

// Option customizes a GameService.
type Option func(*GameService)

// WithScheduler replaces the ticker-based scheduler used by sessions.
func WithScheduler(s Scheduler) Option {
	return func(g *GameService) { g.scheduler = s }
}

// WithClock is mostly for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(g *GameService) { g.now = now }
}

// WithSourceFactory sets how each session gets its random source.
func WithSourceFactory(f func() game.Source) Option {
	return func(g *GameService) { g.newSource = f }
}

// WithObserver reports session and round events, typically to metrics.
func WithObserver(o Observer) Option {
	return func(g *GameService) {
		if o != nil {
			g.observer = o
		}
	}
}

// WithAutoAdvance sets the feedback countdown in seconds.
func WithAutoAdvance(seconds int) Option {
	return func(g *GameService) { g.autoAdvance = seconds }
}

func NewGameService(sessions SessionRepository, catalog CatalogRepository, profiles ProfileStore, logger *zap.Logger, opts ...Option) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &GameService{
		sessions:    sessions,
		catalog:     catalog,
		profiles:    profiles,
		logger:      logger,
		scheduler:   NewTickerScheduler(),
		now:         time.Now,
		newSource:   func() game.Source { return game.NewSource(time.Now().UnixNano()) },
		observer:    nopObserver{},
		autoAdvance: DefaultAutoAdvanceSeconds,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start creates a session for the player using their stored settings.
func (g *GameService) Start(ctx context.Context, playerID, displayName string) (*Session, error) {
	countries, err := g.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if displayName != "" {
		g.SaveDisplayName(ctx, playerID, displayName)
	}

	session, err := NewSession(SessionConfig{
		ID:                 uuid.NewString(),
		PlayerID:           playerID,
		Catalog:            countries,
		Settings:           g.Settings(ctx, playerID),
		CumulativeScore:    g.CumulativeScore(ctx, playerID),
		Profiles:           g.profiles,
		Scheduler:          g.scheduler,
		Source:             g.newSource(),
		Now:                g.now,
		Logger:             g.logger,
		Observer:           g.observer,
		AutoAdvanceSeconds: g.autoAdvance,
	})
	if err != nil {
		return nil, err
	}
	g.sessions.Put(session)
	g.observer.SessionStarted()
	g.logger.Info("session started",
		zap.String("session_id", session.ID()),
		zap.String("player_id", playerID))
	return session, nil
}

// Session looks up a live session.
func (g *GameService) Session(sessionID string) (*Session, error) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// End tears the session down and forgets it.
func (g *GameService) End(sessionID string) {
	session, ok := g.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	g.sessions.Delete(sessionID)
	g.observer.SessionEnded()
}

// Countries returns the catalog.
func (g *GameService) Countries(ctx context.Context) ([]domain.Country, error) {
	return g.catalog.GetCatalog(ctx)
}

// Country looks a catalog entry up by ISO code, case-insensitively.
func (g *GameService) Country(ctx context.Context, code string) (domain.Country, error) {
	countries, err := g.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.Country{}, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range countries {
		if c.Code == code {
			return c, nil
		}
	}
	return domain.Country{}, fmt.Errorf("%w: %s", domain.ErrCountryNotFound, code)
}

// PreviewQuestion builds a standalone question outside of any session.
func (g *GameService) PreviewQuestion(ctx context.Context, difficulty domain.Difficulty, previousCode string, optionCount int) (domain.Question, error) {
	countries, err := g.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	return game.BuildQuestion(game.DefaultSource, countries, difficulty, previousCode, optionCount)
}

// Settings returns the player's settings, or defaults when they cannot be read.
func (g *GameService) Settings(ctx context.Context, playerID string) domain.Settings {
	settings, err := g.profiles.LoadSettings(ctx, playerID)
	if err != nil {
		g.logger.Warn("load settings failed", zap.String("player_id", playerID), zap.Error(err))
		return domain.DefaultSettings()
	}
	return settings.Normalize()
}

// SaveSettings stores the normalized settings and returns them.
func (g *GameService) SaveSettings(ctx context.Context, playerID string, settings domain.Settings) domain.Settings {
	settings = settings.Normalize()
	if err := g.profiles.SaveSettings(ctx, playerID, settings); err != nil {
		g.logger.Warn("save settings failed", zap.String("player_id", playerID), zap.Error(err))
	}
	return settings
}

// CumulativeScore returns the stored total, or 0 when it cannot be read.
func (g *GameService) CumulativeScore(ctx context.Context, playerID string) int {
	score, err := g.profiles.LoadCumulativeScore(ctx, playerID)
	if err != nil || score < 0 {
		if err != nil {
			g.logger.Warn("load cumulative score failed", zap.String("player_id", playerID), zap.Error(err))
		}
		return 0
	}
	return score
}

// ResetCumulativeScore clears the stored total and the total shown by the
// player's live sessions.
func (g *GameService) ResetCumulativeScore(ctx context.Context, playerID string) {
	if err := g.profiles.ResetCumulativeScore(ctx, playerID); err != nil {
		g.logger.Warn("reset cumulative score failed", zap.String("player_id", playerID), zap.Error(err))
	}
	for _, session := range g.sessions.ForPlayer(playerID) {
		session.setCumulative(0)
	}
}

// DisplayName returns the stored name, or "" when it cannot be read.
func (g *GameService) DisplayName(ctx context.Context, playerID string) string {
	name, err := g.profiles.LoadDisplayName(ctx, playerID)
	if err != nil {
		g.logger.Warn("load display name failed", zap.String("player_id", playerID), zap.Error(err))
		return ""
	}
	return name
}

// SaveDisplayName trims and stores the name, returning what was kept.
func (g *GameService) SaveDisplayName(ctx context.Context, playerID, name string) string {
	name = domain.TrimDisplayName(name)
	if err := g.profiles.SaveDisplayName(ctx, playerID, name); err != nil {
		g.logger.Warn("save display name failed", zap.String("player_id", playerID), zap.Error(err))
	}
	return name
}
