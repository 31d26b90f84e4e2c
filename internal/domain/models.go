package domain

import "time"

// Language is a display language tag.
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
)

// Difficulty is the requested difficulty band of a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known bands.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Country is an immutable catalog entry.
type Country struct {
	Code    string              `json:"code"`
	Names   map[Language]string `json:"names"`
	FlagURL string              `json:"flagUrl"`

	// Difficulty overrides the classification table when set.
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// Name returns the localized name, falling back to English.
func (c Country) Name(lang Language) string {
	if name, ok := c.Names[lang]; ok && name != "" {
		return name
	}
	return c.Names[LangEN]
}

// Question is one round: a target country and its shuffled options.
type Question struct {
	Correct Country   `json:"correct"`
	Options []Country `json:"options"`
}

// HasOption reports whether code is among the question options.
func (q Question) HasOption(code string) bool {
	for _, opt := range q.Options {
		if opt.Code == code {
			return true
		}
	}
	return false
}

// AnswerState is the per-round state of a session.
type AnswerState string

const (
	StateUnanswered AnswerState = "unanswered"
	StateCorrect    AnswerState = "correct"
	StateIncorrect  AnswerState = "incorrect"
	StateComplete   AnswerState = "complete"
)

// SessionState is the score/progress part of a game session.
type SessionState struct {
	Score               int       `json:"score"`
	RoundsPlayed        int       `json:"roundsPlayed"`
	PreviousCorrectCode string    `json:"previousCorrectCode,omitempty"`
	StartTime           time.Time `json:"startTime"`
	TargetRounds        int       `json:"targetRounds"`
}

// Snapshot is the view of a session exposed to presentation code.
type Snapshot struct {
	SessionID       string       `json:"sessionId"`
	State           SessionState `json:"progress"`
	Question        Question     `json:"question"`
	Answer          AnswerState  `json:"answer"`
	LastAnswerState AnswerState  `json:"lastAnswer,omitempty"`
	SelectedCode    string       `json:"selectedCode,omitempty"`
	TimeLeft        int          `json:"timeLeft"`
	Countdown       int          `json:"countdown"`
	CumulativeScore int          `json:"cumulativeScore"`
	ElapsedSeconds  int          `json:"elapsedSeconds"`
	Settings        Settings     `json:"settings"`
}

// SharePayload is the decoded content of a share token.
type SharePayload struct {
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	Total          int       `json:"total"`
	ElapsedSeconds *int      `json:"elapsedSeconds,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
