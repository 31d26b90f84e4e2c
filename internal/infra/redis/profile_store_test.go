package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"flag-quiz-service/internal/domain"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewProfileStore(newClient(mr))

	if score, err := store.LoadCumulativeScore(ctx, "p1"); err != nil || score != 0 {
		t.Fatalf("expected zero score for unknown player, got %d (%v)", score, err)
	}
	if err := store.SaveCumulativeScore(ctx, "p1", 12); err != nil {
		t.Fatalf("save score: %v", err)
	}
	if score, _ := store.LoadCumulativeScore(ctx, "p1"); score != 12 {
		t.Fatalf("expected 12, got %d", score)
	}
	if score, err := store.IncrementCumulativeScore(ctx, "p1"); err != nil || score != 13 {
		t.Fatalf("expected increment to 13, got %d (%v)", score, err)
	}
	if score, _ := store.IncrementCumulativeScore(ctx, "fresh"); score != 1 {
		t.Fatalf("expected first increment to start at 1, got %d", score)
	}
	if err := store.ResetCumulativeScore(ctx, "p1"); err != nil {
		t.Fatalf("reset score: %v", err)
	}
	if mr.Exists("flagquiz:player:p1:score") {
		t.Fatalf("expected score key removed")
	}

	settings := domain.DefaultSettings()
	settings.OptionCount = 8
	settings.Difficulty = domain.DifficultyHard
	if err := store.SaveSettings(ctx, "p1", settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	loaded, err := store.LoadSettings(ctx, "p1")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded != settings {
		t.Fatalf("expected %+v, got %+v", settings, loaded)
	}

	if err := store.SaveDisplayName(ctx, "p1", "Alice"); err != nil {
		t.Fatalf("save name: %v", err)
	}
	if name, _ := store.LoadDisplayName(ctx, "p1"); name != "Alice" {
		t.Fatalf("expected Alice, got %q", name)
	}
}

func TestProfileStoreCorruptScoreReadsAsZero(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	_ = mr.Set("flagquiz:player:p1:score", "-4")
	store := NewProfileStore(newClient(mr))
	if score, err := store.LoadCumulativeScore(context.Background(), "p1"); err != nil || score != 0 {
		t.Fatalf("expected corrupt score to read as 0, got %d (%v)", score, err)
	}
}

func TestProfileStoreReportsUnavailableRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	client := newClient(mr)
	mr.Close()

	store := NewProfileStore(client)
	if err := store.SaveCumulativeScore(context.Background(), "p1", 1); err == nil {
		t.Fatalf("expected error when redis is down")
	}
	if _, err := store.LoadSettings(context.Background(), "p1"); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
