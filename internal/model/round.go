package model

import "time"

// Round modifier tags attached to a participant's result
const (
	ModifierCrit   = "crit"
	ModifierNarrow = "narrow"
	ModifierDefeat = "defeat"
)

// ParticipantResult is one participant's breakdown for a resolved round
type ParticipantResult struct {
	ParticipantID string   `json:"participantId" bson:"participantId"`
	Faction       Faction  `json:"faction" bson:"faction"`
	IsAI          bool     `json:"isAi" bson:"isAi"`
	Cards         []string `json:"cards" bson:"cards"`
	Total         int      `json:"total" bson:"total"`
	Rank          int      `json:"rank" bson:"rank"`
	Points        int      `json:"points" bson:"points"`
	Modifier      string   `json:"modifier,omitempty" bson:"modifier,omitempty"`
	Line          string   `json:"line,omitempty" bson:"line,omitempty"`
}

// RoundRecord is the archived outcome of a single round
type RoundRecord struct {
	Round     int                 `json:"round" bson:"round"`
	Attribute Attribute           `json:"attribute" bson:"attribute"`
	Results   []ParticipantResult `json:"results" bson:"results"`
}

// GameRecord is a finished game as stored in the archive
type GameRecord struct {
	ID         string             `json:"id" bson:"_id"`
	RoomCode   string             `json:"roomCode" bson:"roomCode"`
	Players    map[string]Faction `json:"players" bson:"players"`
	Nicknames  map[string]string  `json:"nicknames" bson:"nicknames"`
	AIFactions []Faction          `json:"aiFactions" bson:"aiFactions"`
	Scores     map[string]int     `json:"scores" bson:"scores"`
	Winners    []string           `json:"winners" bson:"winners"`
	Rounds     []RoundRecord      `json:"rounds" bson:"rounds"`
	StartedAt  time.Time          `json:"startedAt" bson:"startedAt"`
	FinishedAt time.Time          `json:"finishedAt" bson:"finishedAt"`
}
