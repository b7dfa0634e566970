package model

// ParticipantView is what any participant may see about another participant.
// It never carries the participant's sealed bid.
type ParticipantView struct {
	ID          string      `json:"id"`
	Nickname    string      `json:"nickname,omitempty"`
	Faction     Faction     `json:"faction,omitempty"`
	IsAI        bool        `json:"isAi"`
	Personality Personality `json:"personality,omitempty"`
	Score       int         `json:"score"`
	Submitted   bool        `json:"submitted"`
	CardsLeft   int         `json:"cardsLeft"`
}

// RoomView is a participant-scoped snapshot of a room
type RoomView struct {
	Code          string              `json:"code"`
	Status        RoomStatus          `json:"status"`
	Round         int                 `json:"round"`
	MaxRounds     int                 `json:"maxRounds"`
	You           string              `json:"you"`
	YourFaction   Faction             `json:"yourFaction,omitempty"`
	YourDeck      []string            `json:"yourDeck,omitempty"`
	YourSelection []string            `json:"yourSelection,omitempty"`
	Participants  []ParticipantView   `json:"participants"`
	TakenFactions []Faction           `json:"takenFactions"`
	LastAttribute Attribute           `json:"lastAttribute,omitempty"`
	LastResults   []ParticipantResult `json:"lastResults,omitempty"`
}

// JoinResponse is returned when a participant joins a room
type JoinResponse struct {
	ParticipantID string    `json:"participantId"`
	Token         string    `json:"token"`
	Room          *RoomView `json:"room"`
}
