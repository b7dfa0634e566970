package catalog

import (
	"testing"

	"sanguo/internal/model"
)

func TestDefaultRosterCoversFiveRounds(t *testing.T) {
	c := Default(DefaultStats)
	for _, f := range model.AllFactions {
		if got := len(c.Roster(f)); got < 15 {
			t.Fatalf("faction %s has %d characters, need at least 15 for five rounds of three", f, got)
		}
	}
}

func TestRosterNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ch := range roster {
		if seen[ch.Name] {
			t.Fatalf("duplicate roster entry %q", ch.Name)
		}
		seen[ch.Name] = true
	}
}

func TestLookupUnknownNameUsesDefaultVector(t *testing.T) {
	fallback := model.Stats{Leadership: 10, Might: 20, Intellect: 30, Politics: 40, Charisma: 50, Fortune: 60}
	c := Default(fallback)

	ch := c.Lookup("Nobody In Particular")
	if ch.Stats != fallback {
		t.Fatalf("expected fallback stats, got %+v", ch.Stats)
	}
	if ch.Faction != "" {
		t.Fatalf("unknown character should have no faction, got %q", ch.Faction)
	}
	if c.Has("Nobody In Particular") {
		t.Fatalf("Has should be false for an unknown name")
	}
}

func TestLookupKnownName(t *testing.T) {
	c := Default(DefaultStats)
	ch := c.Lookup("Zhuge Liang")
	if ch.Faction != model.FactionShu {
		t.Fatalf("expected shu, got %q", ch.Faction)
	}
	if ch.Stats.Intellect != 100 {
		t.Fatalf("expected intellect 100, got %d", ch.Stats.Intellect)
	}
}

func TestRosterReturnsCopy(t *testing.T) {
	c := Default(DefaultStats)
	names := c.Roster(model.FactionWu)
	names[0] = "tampered"
	if c.Roster(model.FactionWu)[0] == "tampered" {
		t.Fatalf("Roster must not expose internal slice")
	}
}
