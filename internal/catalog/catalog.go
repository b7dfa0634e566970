// Package catalog is the read-only character roster. Lookups are total: an
// unknown name resolves to the default vector instead of failing.
package catalog

import (
	"sort"

	"sanguo/internal/model"
)

// DefaultStats is used for names missing from the roster
var DefaultStats = model.Stats{Leadership: 60, Might: 60, Intellect: 60, Politics: 60, Charisma: 60, Fortune: 60}

// Catalog indexes characters by name and by faction
type Catalog struct {
	byName   map[string]model.Character
	rosters  map[model.Faction][]string
	fallback model.Stats
}

// New builds a catalog from a character list and a default vector
func New(chars []model.Character, fallback model.Stats) *Catalog {
	c := &Catalog{
		byName:   make(map[string]model.Character, len(chars)),
		rosters:  make(map[model.Faction][]string),
		fallback: fallback,
	}
	for _, ch := range chars {
		if _, dup := c.byName[ch.Name]; dup {
			continue
		}
		c.byName[ch.Name] = ch
		c.rosters[ch.Faction] = append(c.rosters[ch.Faction], ch.Name)
	}
	for f := range c.rosters {
		sort.Strings(c.rosters[f])
	}
	return c
}

// Default returns the built-in roster with the given default vector
func Default(fallback model.Stats) *Catalog {
	return New(roster, fallback)
}

// Lookup returns the character by name, or a faction-less character carrying
// the default vector when the name is unknown.
func (c *Catalog) Lookup(name string) model.Character {
	if ch, ok := c.byName[name]; ok {
		return ch
	}
	return model.Character{Name: name, Stats: c.fallback}
}

// Has reports whether name is a roster entry
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Roster returns a copy of the sorted character names of a faction
func (c *Catalog) Roster(f model.Faction) []string {
	names := c.rosters[f]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ByFaction returns every faction's characters, for display
func (c *Catalog) ByFaction() map[model.Faction][]model.Character {
	out := make(map[model.Faction][]model.Character, len(c.rosters))
	for f, names := range c.rosters {
		chars := make([]model.Character, 0, len(names))
		for _, n := range names {
			chars = append(chars, c.byName[n])
		}
		out[f] = chars
	}
	return out
}
