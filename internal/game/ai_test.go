package game

import (
	"testing"

	"sanguo/internal/model"
)

type stubCatalog map[string]model.Stats

func (c stubCatalog) Lookup(name string) model.Character {
	s, ok := c[name]
	if !ok {
		s = model.Stats{Leadership: 60, Might: 60, Intellect: 60, Politics: 60, Charisma: 60, Fortune: 60}
	}
	return model.Character{Name: name, Stats: s}
}

func (c stubCatalog) Roster(model.Faction) []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	return names
}

var aiDeck = stubCatalog{
	"brute":    {Leadership: 90, Might: 99, Intellect: 10, Politics: 10, Charisma: 10, Fortune: 10},
	"captain":  {Leadership: 95, Might: 80, Intellect: 40, Politics: 40, Charisma: 40, Fortune: 20},
	"sage":     {Leadership: 20, Might: 10, Intellect: 99, Politics: 90, Charisma: 80, Fortune: 30},
	"envoy":    {Leadership: 30, Might: 20, Intellect: 70, Politics: 95, Charisma: 95, Fortune: 40},
	"lucky":    {Leadership: 40, Might: 70, Intellect: 30, Politics: 30, Charisma: 30, Fortune: 99},
	"allround": {Leadership: 80, Might: 80, Intellect: 80, Politics: 80, Charisma: 80, Fortune: 80},
	"recruit":  {Leadership: 10, Might: 10, Intellect: 10, Politics: 10, Charisma: 10, Fortune: 10},
}

func names(c stubCatalog) []string {
	return c.Roster("")
}

func TestSelectAICardsByPersonality(t *testing.T) {
	cases := []struct {
		p    model.Personality
		want []string
	}{
		{model.PersonalityBalanced, []string{"allround", "envoy", "sage"}},
		{model.PersonalityWarlord, []string{"brute", "captain", "allround"}},
		{model.PersonalityStrategist, []string{"sage", "envoy", "allround"}},
		{model.PersonalityWildcard, []string{"lucky", "allround", "brute"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.p), func(t *testing.T) {
			got := SelectAICards(names(aiDeck), tc.p, aiDeck)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestSelectAICardsDeterministicOnTies(t *testing.T) {
	flat := stubCatalog{
		"d": {Might: 50}, "b": {Might: 50}, "a": {Might: 50}, "c": {Might: 50},
	}
	first := SelectAICards(names(flat), model.PersonalityWarlord, flat)
	want := []string{"a", "b", "c"}
	for i := range want {
		if first[i] != want[i] {
			t.Fatalf("got %v, want %v", first, want)
		}
	}
}

func TestSelectAICardsShortDeck(t *testing.T) {
	got := SelectAICards([]string{"sage", "brute"}, model.PersonalityBalanced, aiDeck)
	if len(got) != 2 {
		t.Fatalf("expected whole deck back, got %v", got)
	}
}

func TestSelectAICardsUnknownPersonalityFallsBackToBalanced(t *testing.T) {
	got := SelectAICards(names(aiDeck), model.Personality("mystery"), aiDeck)
	want := SelectAICards(names(aiDeck), model.PersonalityBalanced, aiDeck)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
