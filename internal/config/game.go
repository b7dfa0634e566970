package config

import (
	"errors"

	"sanguo/internal/model"
)

// GameConfig holds the scoring constants. They are product-tuning values and
// can be overridden from the environment.
type GameConfig struct {
	MaxRounds  int   `env:"GAME_MAX_ROUNDS" envDefault:"5" json:"maxRounds"`
	RankPoints []int `env:"GAME_RANK_POINTS" envDefault:"5,3,2,1" envSeparator:"," json:"rankPoints"`

	// rank-1 blowout when gap(1st,2nd) > CritGap
	CritGap    int `env:"GAME_CRIT_GAP" envDefault:"30" json:"critGap"`
	CritPoints int `env:"GAME_CRIT_POINTS" envDefault:"8" json:"critPoints"`
	// rank-1 narrow win when gap(1st,2nd) < NarrowGap
	NarrowGap    int `env:"GAME_NARROW_GAP" envDefault:"5" json:"narrowGap"`
	NarrowPoints int `env:"GAME_NARROW_POINTS" envDefault:"4" json:"narrowPoints"`
	// rank-4 total defeat when gap(1st,4th) > DefeatGap
	DefeatGap    int `env:"GAME_DEFEAT_GAP" envDefault:"60" json:"defeatGap"`
	DefeatPoints int `env:"GAME_DEFEAT_POINTS" envDefault:"0" json:"defeatPoints"`

	DefaultStat int `env:"GAME_DEFAULT_STAT" envDefault:"60" json:"defaultStat"`
}

// DefaultGameConfig returns the standard rules without reading the environment
func DefaultGameConfig() GameConfig {
	return GameConfig{
		MaxRounds:    5,
		RankPoints:   []int{5, 3, 2, 1},
		CritGap:      30,
		CritPoints:   8,
		NarrowGap:    5,
		NarrowPoints: 4,
		DefeatGap:    60,
		DefeatPoints: 0,
		DefaultStat:  60,
	}
}

// Validate rejects configurations the engine cannot play
func (g GameConfig) Validate() error {
	if g.MaxRounds < 1 {
		return errors.New("GAME_MAX_ROUNDS must be at least 1")
	}
	if len(g.RankPoints) == 0 {
		return errors.New("GAME_RANK_POINTS must not be empty")
	}
	return nil
}

// PointsForRank returns the base points for a 1-based rank
func (g GameConfig) PointsForRank(rank int) int {
	if rank < 1 || rank > len(g.RankPoints) {
		return 0
	}
	return g.RankPoints[rank-1]
}

// DefaultStats is the vector used for characters missing from the catalog
func (g GameConfig) DefaultStats() model.Stats {
	v := g.DefaultStat
	return model.Stats{Leadership: v, Might: v, Intellect: v, Politics: v, Charisma: v, Fortune: v}
}
