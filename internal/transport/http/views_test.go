package http

import (
	"testing"

	"flag-quiz-service/internal/catalog"
	"flag-quiz-service/internal/domain"
)

func TestStateViewOmitsOptionsInFreeText(t *testing.T) {
	countries := catalog.Countries()
	snap := domain.Snapshot{
		Question: domain.Question{Correct: countries[0], Options: countries[:4]},
		Answer:   domain.StateUnanswered,
		Settings: domain.DefaultSettings(),
	}
	if view := newStateView(snap); len(view.Question.Options) != 4 || view.Question.Correct != nil {
		t.Fatalf("expected 4 options and a hidden answer, got %+v", view.Question)
	}

	snap.Settings.Mode = domain.ModeFreeText
	view := newStateView(snap)
	if view.Question.Options == nil || len(view.Question.Options) != 0 {
		t.Fatalf("expected an empty option list, got %v", view.Question.Options)
	}
	if view.Question.FlagURL != countries[0].FlagURL {
		t.Fatalf("expected the flag to stay visible")
	}

	snap.Answer = domain.StateIncorrect
	if view = newStateView(snap); view.Question.Correct == nil || view.Question.Correct.Code != countries[0].Code {
		t.Fatalf("expected the answer revealed once resolved, got %+v", view.Question.Correct)
	}
}
