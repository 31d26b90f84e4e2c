package http

import "flag-quiz-service/internal/domain"

type countryView struct {
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	FlagURL    string            `json:"flagUrl,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
}

type questionView struct {
	FlagURL string        `json:"flagUrl"`
	Options []countryView `json:"options"`

	// Correct is only filled once the round is resolved.
	Correct *countryView `json:"correct,omitempty"`
}

type stateView struct {
	SessionID       string             `json:"sessionId"`
	Score           int                `json:"score"`
	RoundsPlayed    int                `json:"roundsPlayed"`
	TargetRounds    int                `json:"targetRounds"`
	Answer          domain.AnswerState `json:"answer"`
	LastAnswer      domain.AnswerState `json:"lastAnswer,omitempty"`
	SelectedCode    string             `json:"selectedCode,omitempty"`
	TimeLeft        int                `json:"timeLeft"`
	Countdown       int                `json:"countdown"`
	CumulativeScore int                `json:"cumulativeScore"`
	ElapsedSeconds  int                `json:"elapsedSeconds"`
	Mode            domain.GameMode    `json:"gameMode"`
	Question        questionView       `json:"question"`
}

func newCountryView(c domain.Country, lang domain.Language) countryView {
	return countryView{Code: c.Code, Name: c.Name(lang)}
}

// newStateView hides the answer while the round is still open. Free-text
// games get no options.
func newStateView(s domain.Snapshot) stateView {
	lang := s.Settings.Language
	options := make([]countryView, 0, len(s.Question.Options))
	if s.Settings.Mode != domain.ModeFreeText {
		for _, opt := range s.Question.Options {
			options = append(options, newCountryView(opt, lang))
		}
	}
	q := questionView{FlagURL: s.Question.Correct.FlagURL, Options: options}
	if s.Answer != domain.StateUnanswered {
		correct := newCountryView(s.Question.Correct, lang)
		q.Correct = &correct
	}
	return stateView{
		SessionID:       s.SessionID,
		Score:           s.State.Score,
		RoundsPlayed:    s.State.RoundsPlayed,
		TargetRounds:    s.State.TargetRounds,
		Answer:          s.Answer,
		LastAnswer:      s.LastAnswerState,
		SelectedCode:    s.SelectedCode,
		TimeLeft:        s.TimeLeft,
		Countdown:       s.Countdown,
		CumulativeScore: s.CumulativeScore,
		ElapsedSeconds:  s.ElapsedSeconds,
		Mode:            s.Settings.Mode,
		Question:        q,
	}
}
