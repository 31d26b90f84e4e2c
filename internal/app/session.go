package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"flag-quiz-service/internal/domain"
	"flag-quiz-service/internal/game"
	"flag-quiz-service/internal/share"
)

// DefaultAutoAdvanceSeconds is the feedback countdown after an answered round.
const DefaultAutoAdvanceSeconds = 5

const tickInterval = time.Second

// SessionConfig carries the collaborators of a single game session.
type SessionConfig struct {
	ID       string
	PlayerID string
	Catalog  []domain.Country
	Settings domain.Settings

	// CumulativeScore is the persisted total at session start.
	CumulativeScore    int
	Profiles           ProfileStore
	Scheduler          Scheduler
	Source             game.Source
	Now                func() time.Time
	Logger             *zap.Logger
	Observer           Observer
	AutoAdvanceSeconds int
}

// Session is the per-player question/answer state machine.
//
// Unanswered -> Correct|Incorrect -> (auto-advance) -> Unanswered | Complete.
// All transitions happen under mu; timer callbacks carry a generation number
// and are ignored once the timer they belong to has been replaced or cancelled.
type Session struct {
	id          string
	playerID    string
	catalog     []domain.Country
	settings    domain.Settings
	profiles    ProfileStore
	sched       Scheduler
	src         game.Source
	now         func() time.Time
	logger      *zap.Logger
	observer    Observer
	autoAdvance int

	mu         sync.Mutex
	state      domain.SessionState
	question   domain.Question
	answer     domain.AnswerState
	lastAnswer domain.AnswerState
	selected   string
	timeLeft   int
	countdown  int
	cumulative int
	endTime    time.Time
	closed     bool

	gen         uint64
	roundGen    uint64
	roundTask   Task
	advanceGen  uint64
	advanceTask Task

	subscribers map[chan domain.Snapshot]struct{}
}

// NewSession builds the first question and starts the round timer. It fails
// only when the catalog cannot supply a question.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTickerScheduler()
	}
	if cfg.Source == nil {
		cfg.Source = game.DefaultSource
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	if cfg.AutoAdvanceSeconds <= 0 {
		cfg.AutoAdvanceSeconds = DefaultAutoAdvanceSeconds
	}
	settings := cfg.Settings.Normalize()

	s := &Session{
		id:          cfg.ID,
		playerID:    cfg.PlayerID,
		catalog:     cfg.Catalog,
		settings:    settings,
		profiles:    cfg.Profiles,
		sched:       cfg.Scheduler,
		src:         cfg.Source,
		now:         cfg.Now,
		logger:      cfg.Logger.With(zap.String("session_id", cfg.ID), zap.String("player_id", cfg.PlayerID)),
		observer:    cfg.Observer,
		autoAdvance: cfg.AutoAdvanceSeconds,
		cumulative:  cfg.CumulativeScore,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resetLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// PlayerID returns the owning player.
func (s *Session) PlayerID() string { return s.playerID }

// Snapshot returns the current state view.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SubmitChoice answers the round with one of the displayed options. It is a
// no-op unless the round is unanswered, and free-text games reject it.
func (s *Session) SubmitChoice(ctx context.Context, code string) (domain.Snapshot, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if s.settings.Mode == domain.ModeFreeText {
		s.mu.Unlock()
		return domain.Snapshot{}, domain.ErrWrongMode
	}
	if s.answer != domain.StateUnanswered {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	if !s.question.HasOption(code) {
		s.mu.Unlock()
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrOptionNotFound, code)
	}

	s.selected = code
	correct := code == s.question.Correct.Code
	s.resolveLocked(outcomeOf(correct), true)
	snap := s.broadcastLocked()
	s.mu.Unlock()

	if correct {
		snap = s.recordCorrect(ctx, snap)
	}
	return snap, nil
}

// SubmitText answers the round with a typed country name. Blank input and
// answers outside the unanswered state are ignored.
func (s *Session) SubmitText(ctx context.Context, input string) (domain.Snapshot, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if s.answer != domain.StateUnanswered || strings.TrimSpace(input) == "" {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	correct := game.MatchesCountry(input, s.question.Correct)
	s.resolveLocked(outcomeOf(correct), true)
	snap := s.broadcastLocked()
	s.mu.Unlock()

	if correct {
		snap = s.recordCorrect(ctx, snap)
	}
	return snap, nil
}

// TimeUp resolves the round as incorrect. The previous answer is left
// untouched since the player never saw the reveal.
func (s *Session) TimeUp() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if s.answer != domain.StateUnanswered {
		return s.snapshotLocked(), nil
	}
	s.resolveLocked(OutcomeTimeout, false)
	return s.broadcastLocked(), nil
}

// Skip counts the round as missed and moves straight to the next question.
func (s *Session) Skip() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if s.answer != domain.StateUnanswered {
		return s.snapshotLocked(), nil
	}

	s.cancelRoundLocked()
	s.state.RoundsPlayed++
	s.state.PreviousCorrectCode = s.question.Correct.Code
	s.lastAnswer = domain.StateIncorrect
	s.selected = ""
	s.observer.RoundResolved(OutcomeSkipped)
	if s.state.RoundsPlayed >= s.state.TargetRounds {
		s.answer = domain.StateComplete
		s.endTime = s.now()
		s.observer.GameCompleted()
		return s.broadcastLocked(), nil
	}
	if err := s.nextQuestionLocked(); err != nil {
		return domain.Snapshot{}, err
	}
	return s.broadcastLocked(), nil
}

// Next cancels the auto-advance countdown and builds the next question.
// It has no effect unless the current round has been answered.
func (s *Session) Next() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if s.answer != domain.StateCorrect && s.answer != domain.StateIncorrect {
		return s.snapshotLocked(), nil
	}
	s.cancelAdvanceLocked()
	if err := s.nextQuestionLocked(); err != nil {
		return domain.Snapshot{}, err
	}
	return s.broadcastLocked(), nil
}

// Restart zeroes the session and builds a question without repeat exclusion.
func (s *Session) Restart() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Snapshot{}, domain.ErrSessionClosed
	}
	if err := s.resetLocked(); err != nil {
		return domain.Snapshot{}, err
	}
	return s.broadcastLocked(), nil
}

// ShareToken encodes the current result for sharing.
func (s *Session) ShareToken(username string) (string, error) {
	s.mu.Lock()
	now := s.now()
	score, total := s.state.Score, s.state.RoundsPlayed
	elapsed := s.elapsedLocked(now)
	s.mu.Unlock()
	return share.Encode(username, score, total, elapsed, now)
}

// setCumulative replaces the displayed total without touching the store.
func (s *Session) setCumulative(total int) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cumulative = total
	if s.closed {
		return s.snapshotLocked()
	}
	return s.broadcastLocked()
}

// Subscribe returns a channel of snapshots, starting with the current one.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close cancels outstanding timers and closes every subscription.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelRoundLocked()
	s.cancelAdvanceLocked()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) resetLocked() error {
	q, err := game.BuildQuestion(s.src, s.catalog, s.settings.Difficulty, "", s.settings.OptionCount)
	if err != nil {
		return err
	}
	s.cancelRoundLocked()
	s.cancelAdvanceLocked()
	s.state = domain.SessionState{
		StartTime:    s.now(),
		TargetRounds: s.settings.QuestionCount,
	}
	s.question = q
	s.answer = domain.StateUnanswered
	s.lastAnswer = ""
	s.selected = ""
	s.countdown = 0
	s.endTime = time.Time{}
	s.startRoundLocked()
	return nil
}

// resolveLocked applies the outcome of the current round.
func (s *Session) resolveLocked(outcome string, recordPrevious bool) {
	s.cancelRoundLocked()
	s.state.RoundsPlayed++
	s.observer.RoundResolved(outcome)
	if outcome == OutcomeCorrect {
		s.state.Score++
		s.cumulative++
		s.answer = domain.StateCorrect
	} else {
		s.answer = domain.StateIncorrect
	}
	s.lastAnswer = s.answer
	if recordPrevious {
		s.state.PreviousCorrectCode = s.question.Correct.Code
	}

	if s.state.RoundsPlayed >= s.state.TargetRounds {
		s.answer = domain.StateComplete
		s.endTime = s.now()
		s.observer.GameCompleted()
		return
	}
	s.startAdvanceLocked()
}

func (s *Session) nextQuestionLocked() error {
	if s.answer == domain.StateComplete {
		return nil
	}
	q, err := game.BuildQuestion(s.src, s.catalog, s.settings.Difficulty, s.state.PreviousCorrectCode, s.settings.OptionCount)
	if err != nil {
		return err
	}
	s.question = q
	s.answer = domain.StateUnanswered
	s.selected = ""
	s.countdown = 0
	s.startRoundLocked()
	return nil
}

func (s *Session) startRoundLocked() {
	s.cancelRoundLocked()
	if !s.settings.TimerEnabled {
		s.timeLeft = 0
		return
	}
	s.timeLeft = s.settings.TimerDuration
	s.gen++
	gen := s.gen
	s.roundGen = gen
	s.roundTask = s.sched.Every(tickInterval, func() { s.roundTick(gen) })
}

func (s *Session) roundTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.roundTask == nil || s.roundGen != gen {
		return
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.resolveLocked(OutcomeTimeout, false)
	}
	s.broadcastLocked()
}

func (s *Session) cancelRoundLocked() {
	if s.roundTask != nil {
		s.roundTask.Cancel()
		s.roundTask = nil
	}
	s.roundGen = 0
}

func (s *Session) startAdvanceLocked() {
	s.cancelAdvanceLocked()
	s.countdown = s.autoAdvance
	s.gen++
	gen := s.gen
	s.advanceGen = gen
	s.advanceTask = s.sched.Every(tickInterval, func() { s.advanceTick(gen) })
}

func (s *Session) advanceTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.advanceTask == nil || s.advanceGen != gen {
		return
	}
	s.countdown--
	if s.countdown <= 0 {
		s.cancelAdvanceLocked()
		if err := s.nextQuestionLocked(); err != nil {
			s.logger.Error("auto-advance failed", zap.Error(err))
		}
	}
	s.broadcastLocked()
}

func (s *Session) cancelAdvanceLocked() {
	if s.advanceTask != nil {
		s.advanceTask.Cancel()
		s.advanceTask = nil
	}
	s.advanceGen = 0
	s.countdown = 0
}

// recordCorrect adds the point to the stored total and adopts what the store
// returns, which includes points from the player's other sessions. When the
// store fails the in-memory +1 stands.
func (s *Session) recordCorrect(ctx context.Context, snap domain.Snapshot) domain.Snapshot {
	if s.profiles == nil {
		return snap
	}
	total, err := s.profiles.IncrementCumulativeScore(ctx, s.playerID)
	if err != nil {
		s.logger.Warn("increment cumulative score failed", zap.Int("total", snap.CumulativeScore), zap.Error(err))
		return snap
	}
	return s.setCumulative(total)
}

func (s *Session) elapsedLocked(now time.Time) int {
	if !s.endTime.IsZero() {
		now = s.endTime
	}
	elapsed := int(now.Sub(s.state.StartTime) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Session) broadcastLocked() domain.Snapshot {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale update so a slow reader never blocks a transition.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (s *Session) snapshotLocked() domain.Snapshot {
	options := make([]domain.Country, len(s.question.Options))
	copy(options, s.question.Options)
	return domain.Snapshot{
		SessionID:       s.id,
		State:           s.state,
		Question:        domain.Question{Correct: s.question.Correct, Options: options},
		Answer:          s.answer,
		LastAnswerState: s.lastAnswer,
		SelectedCode:    s.selected,
		TimeLeft:        s.timeLeft,
		Countdown:       s.countdown,
		CumulativeScore: s.cumulative,
		ElapsedSeconds:  s.elapsedLocked(s.now()),
		Settings:        s.settings,
	}
}
