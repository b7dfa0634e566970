package model

import (
	"sync"
	"time"
)

type RoomStatus string

const (
	RoomStatusLobby             RoomStatus = "lobby"
	RoomStatusPlaying           RoomStatus = "playing"
	RoomStatusResolutionPending RoomStatus = "resolution_pending"
	RoomStatusResolutionResult  RoomStatus = "resolution_result"
	RoomStatusFinished          RoomStatus = "finished"
)

// Room is one game instance. All fields are guarded by the room lock; callers
// must hold it (Lock/Unlock) for every read or write.
type Room struct {
	Code      string     `json:"code" bson:"code"`
	Status    RoomStatus `json:"status" bson:"status"`
	Round     int        `json:"round" bson:"round"`
	MaxRounds int        `json:"maxRounds" bson:"maxRounds"`

	Nicknames       map[string]string          `json:"nicknames" bson:"nicknames"` // participant -> display name
	Players         map[string]Faction         `json:"players" bson:"players"`     // human participant -> faction
	AIFactions      []Faction                  `json:"aiFactions" bson:"aiFactions"`
	AIPersonalities map[string]Personality     `json:"aiPersonalities" bson:"aiPersonalities"` // ai participant -> personality
	Decks           map[string]map[string]bool `json:"-" bson:"-"`
	LockedCards     map[string][]string        `json:"-" bson:"-"` // sealed bids for the current round
	Scores          map[string]int             `json:"scores" bson:"scores"`
	DialogueVault   DialogueVault              `json:"-" bson:"-"`
	VaultProvider   string                     `json:"vaultProvider,omitempty" bson:"vaultProvider,omitempty"`

	LastAttribute Attribute           `json:"lastAttribute,omitempty" bson:"lastAttribute,omitempty"`
	LastResults   []ParticipantResult `json:"lastResults,omitempty" bson:"lastResults,omitempty"`
	History       []RoundRecord       `json:"history,omitempty" bson:"history,omitempty"`

	// Starting is set while the dialogue vault is generated outside the lock.
	Starting bool `json:"-" bson:"-"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty" bson:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty" bson:"finishedAt,omitempty"`

	mu sync.Mutex
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// AIParticipantID is the synthetic participant id used for an AI-held faction.
func AIParticipantID(f Faction) string {
	return "ai_" + string(f)
}

// ParticipantIDs returns every participant that must bid: humans with a
// faction plus one synthetic id per AI faction.
func (r *Room) ParticipantIDs() []string {
	ids := make([]string, 0, len(r.Players)+len(r.AIFactions))
	for id := range r.Players {
		ids = append(ids, id)
	}
	for _, f := range r.AIFactions {
		ids = append(ids, AIParticipantID(f))
	}
	return ids
}

// FactionOf returns the faction held by a human or AI participant.
func (r *Room) FactionOf(participantID string) (Faction, bool) {
	if f, ok := r.Players[participantID]; ok {
		return f, true
	}
	for _, f := range r.AIFactions {
		if AIParticipantID(f) == participantID {
			return f, true
		}
	}
	return "", false
}

// IsAI reports whether the participant id belongs to an AI faction.
func (r *Room) IsAI(participantID string) bool {
	_, ok := r.AIPersonalities[participantID]
	return ok
}

// RoomMeta is the lightweight room summary mirrored into Redis
type RoomMeta struct {
	Code         string     `json:"code"`
	Status       RoomStatus `json:"status"`
	Round        int        `json:"round"`
	Participants int        `json:"participants"`
	CreatedAt    time.Time  `json:"createdAt"`
}
