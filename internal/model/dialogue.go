package model

// Personality is the behavioral profile of an AI faction
type Personality string

const (
	PersonalityBalanced   Personality = "balanced"
	PersonalityWarlord    Personality = "warlord"
	PersonalityStrategist Personality = "strategist"
	PersonalityWildcard   Personality = "wildcard"
)

// AllPersonalities is the pool AI factions draw from, one personality per AI
var AllPersonalities = []Personality{PersonalityBalanced, PersonalityWarlord, PersonalityStrategist, PersonalityWildcard}

// Valid reports whether p is in the personality pool
func (p Personality) Valid() bool {
	for _, v := range AllPersonalities {
		if v == p {
			return true
		}
	}
	return false
}

// DialogueVault maps personality -> attribute -> rank (1..4) -> flavor line.
// It is built once per game and read-only afterwards.
type DialogueVault map[Personality]map[Attribute]map[int]string

// Line looks up a flavor line; ok is false when any level is missing.
func (v DialogueVault) Line(p Personality, a Attribute, rank int) (string, bool) {
	if v == nil {
		return "", false
	}
	byAttr, ok := v[p]
	if !ok {
		return "", false
	}
	byRank, ok := byAttr[a]
	if !ok {
		return "", false
	}
	line, ok := byRank[rank]
	if !ok || line == "" {
		return "", false
	}
	return line, true
}

// Set stores a line, creating intermediate maps as needed
func (v DialogueVault) Set(p Personality, a Attribute, rank int, line string) {
	if v[p] == nil {
		v[p] = make(map[Attribute]map[int]string)
	}
	if v[p][a] == nil {
		v[p][a] = make(map[int]string)
	}
	v[p][a][rank] = line
}

// Size counts the stored lines
func (v DialogueVault) Size() int {
	n := 0
	for _, byAttr := range v {
		for _, byRank := range byAttr {
			n += len(byRank)
		}
	}
	return n
}
