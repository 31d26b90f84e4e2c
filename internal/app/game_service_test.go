package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flag-quiz-service/internal/app"
	"flag-quiz-service/internal/domain"
	"flag-quiz-service/internal/game"
	"flag-quiz-service/internal/infra/memory"
)

func newTestService(profiles app.ProfileStore) (*app.GameService, *memory.SessionStore, *app.ManualScheduler) {
	sessions := memory.NewSessionStore()
	sched := app.NewManualScheduler()
	catalogRepo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(nil), time.Hour)
	service := app.NewGameService(sessions, catalogRepo, profiles, nil,
		app.WithScheduler(sched),
		app.WithClock(func() time.Time { return testStart }),
		app.WithSourceFactory(func() game.Source { return game.NewSource(3) }),
		app.WithAutoAdvance(2),
	)
	return service, sessions, sched
}

func TestStartUsesStoredSettings(t *testing.T) {
	ctx := context.Background()
	profiles := memory.NewProfileStore()
	service, sessions, _ := newTestService(profiles)

	settings := domain.DefaultSettings()
	settings.OptionCount = 8
	settings.QuestionCount = 10
	settings.TimerEnabled = false
	service.SaveSettings(ctx, "p1", settings)
	if err := profiles.SaveCumulativeScore(ctx, "p1", 12); err != nil {
		t.Fatalf("seed score: %v", err)
	}

	session, err := service.Start(ctx, "p1", "  Alice  ")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	snap := session.Snapshot()
	if len(snap.Question.Options) != 8 || snap.State.TargetRounds != 10 || snap.TimeLeft != 0 {
		t.Fatalf("expected stored settings applied, got %+v", snap)
	}
	if snap.CumulativeScore != 12 {
		t.Fatalf("expected stored cumulative score, got %d", snap.CumulativeScore)
	}
	if got := service.DisplayName(ctx, "p1"); got != "Alice" {
		t.Fatalf("expected trimmed display name, got %q", got)
	}
	if sessions.Len() != 1 {
		t.Fatalf("expected session registered, got %d", sessions.Len())
	}

	found, err := service.Session(session.ID())
	if err != nil || found != session {
		t.Fatalf("expected session lookup to succeed, got %v", err)
	}
}

func TestAutoAdvanceOption(t *testing.T) {
	ctx := context.Background()
	service, _, sched := newTestService(memory.NewProfileStore())
	session, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	snap, err := session.SubmitChoice(ctx, session.Snapshot().Question.Correct.Code)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.Countdown != 2 {
		t.Fatalf("expected 2s countdown, got %d", snap.Countdown)
	}
	sched.Tick()
	sched.Tick()
	if got := session.Snapshot().Answer; got != domain.StateUnanswered {
		t.Fatalf("expected next round after 2 ticks, got %s", got)
	}
}

func TestEndClosesSession(t *testing.T) {
	ctx := context.Background()
	service, sessions, sched := newTestService(memory.NewProfileStore())
	session, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	service.End(session.ID())
	if sessions.Len() != 0 || sched.Active() != 0 {
		t.Fatalf("expected session removed and timers stopped, got %d sessions %d tasks", sessions.Len(), sched.Active())
	}
	if _, err := service.Session(session.ID()); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := session.Skip(); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("expected closed session, got %v", err)
	}
	service.End(session.ID())
}

func TestStartWithFailingProfileStoreUsesDefaults(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(failingProfiles{})

	session, err := service.Start(ctx, "p1", "Alice")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	snap := session.Snapshot()
	if snap.Settings != domain.DefaultSettings() || snap.CumulativeScore != 0 {
		t.Fatalf("expected defaults, got %+v", snap)
	}
	if got := service.DisplayName(ctx, "p1"); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
	if got := service.SaveDisplayName(ctx, "p1", strings.Repeat("x", 30)); len(got) != domain.DisplayNameMaxLength {
		t.Fatalf("expected truncated name returned, got %q", got)
	}
}

func TestSaveSettingsNormalizes(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(memory.NewProfileStore())

	saved := service.SaveSettings(ctx, "p1", domain.Settings{OptionCount: 5, TimerDuration: 90, QuestionCount: 50, Language: domain.LangFR})
	if saved.OptionCount != 4 || saved.TimerDuration != 20 || saved.QuestionCount != 50 || saved.Language != domain.LangFR {
		t.Fatalf("unexpected normalized settings %+v", saved)
	}
	if got := service.Settings(ctx, "p1"); got != saved {
		t.Fatalf("expected stored settings %+v, got %+v", saved, got)
	}
}

func TestCumulativeScoreLifecycle(t *testing.T) {
	ctx := context.Background()
	profiles := memory.NewProfileStore()
	service, _, _ := newTestService(profiles)

	if got := service.CumulativeScore(ctx, "p1"); got != 0 {
		t.Fatalf("expected 0 for a new player, got %d", got)
	}
	_ = profiles.SaveCumulativeScore(ctx, "p1", 7)
	if got := service.CumulativeScore(ctx, "p1"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	service.ResetCumulativeScore(ctx, "p1")
	if got := service.CumulativeScore(ctx, "p1"); got != 0 {
		t.Fatalf("expected reset to 0, got %d", got)
	}
}

func TestPreviewQuestion(t *testing.T) {
	service, _, _ := newTestService(memory.NewProfileStore())
	q, err := service.PreviewQuestion(context.Background(), domain.DifficultyHard, "IS", 6)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(q.Options) != 6 || q.Correct.Code == "IS" {
		t.Fatalf("unexpected preview %+v", q)
	}
}

func TestCountryLookup(t *testing.T) {
	service, _, _ := newTestService(memory.NewProfileStore())
	c, err := service.Country(context.Background(), " fr ")
	if err != nil || c.Code != "FR" {
		t.Fatalf("expected France, got %+v (%v)", c, err)
	}
	if _, err := service.Country(context.Background(), "ZZ"); !errors.Is(err, domain.ErrCountryNotFound) {
		t.Fatalf("expected country not found, got %v", err)
	}
}

type countingObserver struct {
	started, ended, completed int
	rounds                    map[string]int
}

func (o *countingObserver) SessionStarted()              { o.started++ }
func (o *countingObserver) SessionEnded()                { o.ended++ }
func (o *countingObserver) RoundResolved(outcome string) { o.rounds[outcome]++ }
func (o *countingObserver) GameCompleted()               { o.completed++ }

func TestObserverSeesGameplay(t *testing.T) {
	ctx := context.Background()
	obs := &countingObserver{rounds: map[string]int{}}
	profiles := memory.NewProfileStore()
	settings := domain.DefaultSettings()
	settings.QuestionCount = 10
	settings.TimerDuration = 1
	service := app.NewGameService(memory.NewSessionStore(),
		memory.NewCatalogRepository(memory.NewStaticCatalogLoader(nil), time.Hour),
		profiles, nil,
		app.WithScheduler(app.NewManualScheduler()),
		app.WithObserver(obs),
	)
	service.SaveSettings(ctx, "p1", settings)

	session, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := session.SubmitChoice(ctx, session.Snapshot().Question.Correct.Code); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := session.TimeUp(); err != nil {
		t.Fatalf("time up: %v", err)
	}
	if _, err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 0; i < 8; i++ {
		if _, err := session.Skip(); err != nil {
			t.Fatalf("skip: %v", err)
		}
	}
	service.End(session.ID())

	if obs.started != 1 || obs.ended != 1 || obs.completed != 1 {
		t.Fatalf("unexpected lifecycle counts %+v", obs)
	}
	if obs.rounds[app.OutcomeCorrect] != 1 || obs.rounds[app.OutcomeTimeout] != 1 || obs.rounds[app.OutcomeSkipped] != 8 {
		t.Fatalf("unexpected round counts %v", obs.rounds)
	}
}

func TestCumulativeScoreSharedAcrossSessions(t *testing.T) {
	ctx := context.Background()
	profiles := memory.NewProfileStore()
	service, _, _ := newTestService(profiles)

	a, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start a: %v", err)
	}
	b, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start b: %v", err)
	}
	other, err := service.Start(ctx, "p2", "")
	if err != nil {
		t.Fatalf("start other: %v", err)
	}

	if _, err := a.SubmitChoice(ctx, a.Snapshot().Question.Correct.Code); err != nil {
		t.Fatalf("submit a: %v", err)
	}
	snap, err := b.SubmitChoice(ctx, b.Snapshot().Question.Correct.Code)
	if err != nil {
		t.Fatalf("submit b: %v", err)
	}
	if snap.CumulativeScore != 2 {
		t.Fatalf("expected b to see both points, got %d", snap.CumulativeScore)
	}
	if stored, _ := profiles.LoadCumulativeScore(ctx, "p1"); stored != 2 {
		t.Fatalf("expected stored total 2, got %d", stored)
	}
	if _, err := other.SubmitChoice(ctx, other.Snapshot().Question.Correct.Code); err != nil {
		t.Fatalf("submit other: %v", err)
	}

	service.ResetCumulativeScore(ctx, "p1")
	if got := a.Snapshot().CumulativeScore; got != 0 {
		t.Fatalf("expected live session a cleared, got %d", got)
	}
	if got := b.Snapshot().CumulativeScore; got != 0 {
		t.Fatalf("expected live session b cleared, got %d", got)
	}
	if got := other.Snapshot().CumulativeScore; got != 1 {
		t.Fatalf("expected other player untouched, got %d", got)
	}

	if _, err := a.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	snap, err = a.SubmitChoice(ctx, a.Snapshot().Question.Correct.Code)
	if err != nil {
		t.Fatalf("submit after reset: %v", err)
	}
	if snap.CumulativeScore != 1 {
		t.Fatalf("expected 1 after reset, got %d", snap.CumulativeScore)
	}
	if stored, _ := profiles.LoadCumulativeScore(ctx, "p1"); stored != 1 {
		t.Fatalf("expected stored total 1 after reset, got %d", stored)
	}
}

func TestResetClearsLiveSessionsWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(failingProfiles{})

	session, err := service.Start(ctx, "p1", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	snap, _ := session.SubmitChoice(ctx, session.Snapshot().Question.Correct.Code)
	if snap.CumulativeScore != 1 {
		t.Fatalf("expected in-memory point, got %d", snap.CumulativeScore)
	}
	service.ResetCumulativeScore(ctx, "p1")
	if got := session.Snapshot().CumulativeScore; got != 0 {
		t.Fatalf("expected live session cleared, got %d", got)
	}
}
