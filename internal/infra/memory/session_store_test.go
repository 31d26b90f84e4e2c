package memory

import (
	"testing"

	"flag-quiz-service/internal/app"
	"flag-quiz-service/internal/catalog"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session, err := app.NewSession(app.SessionConfig{
		ID:        "s1",
		PlayerID:  "p1",
		Catalog:   catalog.Countries(),
		Scheduler: app.NewManualScheduler(),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	store.Put(session)
	if got, ok := store.Get("s1"); !ok || got != session {
		t.Fatalf("expected session present")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}
	if got := store.ForPlayer("p1"); len(got) != 1 || got[0] != session {
		t.Fatalf("expected p1 to own the session, got %v", got)
	}
	if got := store.ForPlayer("p2"); len(got) != 0 {
		t.Fatalf("expected no sessions for p2, got %d", len(got))
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}
