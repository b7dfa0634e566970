package config

import "testing"

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.HTTPPort == "" {
		t.Fatalf("expected a default port")
	}
	if cfg.Game.MaxRounds != 5 {
		t.Fatalf("expected 5 rounds, got %d", cfg.Game.MaxRounds)
	}
	if cfg.AI.Timeout() <= 0 {
		t.Fatalf("expected positive provider timeout")
	}
}

func TestLoadOverridesScoring(t *testing.T) {
	t.Setenv("GAME_RANK_POINTS", "10,6,4,2")
	t.Setenv("GAME_CRIT_GAP", "40")
	t.Setenv("DIALOGUE_PROVIDERS", "openai,gemini")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	want := []int{10, 6, 4, 2}
	if len(cfg.Game.RankPoints) != len(want) {
		t.Fatalf("rank points = %v, want %v", cfg.Game.RankPoints, want)
	}
	for i := range want {
		if cfg.Game.RankPoints[i] != want[i] {
			t.Fatalf("rank points = %v, want %v", cfg.Game.RankPoints, want)
		}
	}
	if cfg.Game.CritGap != 40 {
		t.Fatalf("crit gap = %d, want 40", cfg.Game.CritGap)
	}
	if cfg.AI.ProviderOrder[0] != ProviderOpenAI {
		t.Fatalf("provider order = %v", cfg.AI.ProviderOrder)
	}
}

func TestPointsForRank(t *testing.T) {
	g := DefaultGameConfig()
	cases := map[int]int{1: 5, 2: 3, 3: 2, 4: 1, 5: 0, 0: 0}
	for rank, want := range cases {
		if got := g.PointsForRank(rank); got != want {
			t.Fatalf("PointsForRank(%d) = %d, want %d", rank, got, want)
		}
	}
}

func TestRedisAddrStripsScheme(t *testing.T) {
	c := &Config{RedisURI: "redis://cache:6379"}
	if got := c.RedisAddr(); got != "cache:6379" {
		t.Fatalf("RedisAddr = %q", got)
	}
}
