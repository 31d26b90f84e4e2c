package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"flag-quiz-service/internal/app"
	"flag-quiz-service/internal/catalog"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewSessionStore(newClient(mr), time.Minute)
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
	if got, _ := mr.Get("flagquiz:session:s1"); got != "p1" {
		t.Fatalf("expected liveness key holding player id, got %q", got)
	}
	if _, ok := store.Get("s1"); !ok {
		t.Fatalf("expected session present")
	}
	if got := store.ForPlayer("p1"); len(got) != 1 || got[0] != session {
		t.Fatalf("expected p1 to own the session")
	}

	store.Delete("s1")
	if mr.Exists("flagquiz:session:s1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}
