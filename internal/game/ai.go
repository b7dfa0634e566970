package game

import (
	"sort"

	"sanguo/internal/model"
)

// heuristic scores a character for one personality; higher is picked first
type heuristic func(model.Stats) int

var heuristics = map[model.Personality]heuristic{
	model.PersonalityBalanced: model.Stats.Sum,
	model.PersonalityWarlord: func(s model.Stats) int {
		return s.Leadership + s.Might
	},
	model.PersonalityStrategist: func(s model.Stats) int {
		return s.Intellect + s.Politics + s.Charisma
	},
	model.PersonalityWildcard: func(s model.Stats) int {
		return s.Fortune + s.Might
	},
}

// SelectAICards picks the top three cards of deck under the personality's
// key. Ties break by name so the choice is deterministic for a given input.
func SelectAICards(deck []string, p model.Personality, cat Catalog) []string {
	key, ok := heuristics[p]
	if !ok {
		key = heuristics[model.PersonalityBalanced]
	}

	scored := make([]struct {
		name  string
		score int
	}, len(deck))
	for i, name := range deck {
		scored[i].name = name
		scored[i].score = key(cat.Lookup(name).Stats)
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].name < scored[j].name
	})

	n := 3
	if len(scored) < n {
		n = len(scored)
	}
	picks := make([]string, n)
	for i := 0; i < n; i++ {
		picks[i] = scored[i].name
	}
	return picks
}
