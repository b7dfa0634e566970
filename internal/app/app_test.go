package app

import (
	"context"
	"errors"
	"testing"

	"sanguo/internal/config"
	"sanguo/internal/game"
)

func TestNewWithoutStores(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	cfg.MongoURI, cfg.RedisURI = "", ""

	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	defer a.Close(context.Background())

	if a.Container.ArchiveService.Enabled() {
		t.Fatalf("archive should be off without MONGO_URI")
	}
	if a.Handler() == nil {
		t.Fatalf("nil handler")
	}
}

func TestNewRejectsRoundsTheRosterCannotCover(t *testing.T) {
	t.Setenv("GAME_MAX_ROUNDS", "6")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	cfg.MongoURI, cfg.RedisURI = "", ""

	if _, err := New(context.Background(), cfg); !errors.Is(err, game.ErrRosterTooSmall) {
		t.Fatalf("expected ErrRosterTooSmall, got %v", err)
	}
}
