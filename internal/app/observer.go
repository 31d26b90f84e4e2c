package app

// Round outcomes reported to an Observer.
const (
	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
	OutcomeTimeout   = "timeout"
	OutcomeSkipped   = "skipped"
)

// Observer receives gameplay events. Calls happen while a session holds its
// lock, so implementations must not block or call back into the session.
type Observer interface {
	SessionStarted()
	SessionEnded()
	RoundResolved(outcome string)
	GameCompleted()
}

type nopObserver struct{}

func (nopObserver) SessionStarted()      {}
func (nopObserver) SessionEnded()        {}
func (nopObserver) RoundResolved(string) {}
func (nopObserver) GameCompleted()       {}

func outcomeOf(correct bool) string {
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}
