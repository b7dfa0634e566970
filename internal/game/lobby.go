package game

import (
	"fmt"
	"time"

	"sanguo/internal/model"
)

// Catalog is the read-only character lookup the engine consumes
type Catalog interface {
	Lookup(name string) model.Character
	Roster(f model.Faction) []string
}

// Join seats a participant in the lobby without a faction
func Join(room *model.Room, participantID, nickname string) error {
	if room.Status != model.RoomStatusLobby || room.Starting {
		return ErrWrongStatus
	}
	room.Nicknames[participantID] = nickname
	return nil
}

// AssignFaction records participant -> faction. A participant holds at most
// one faction; claiming another releases the previous one.
func AssignFaction(room *model.Room, participantID string, faction model.Faction) error {
	if !faction.Valid() {
		return ErrInvalidFaction
	}
	if _, ok := room.Nicknames[participantID]; !ok {
		return ErrUnknownParticipant
	}
	if room.Status != model.RoomStatusLobby || room.Starting {
		return ErrWrongStatus
	}
	for other, held := range room.Players {
		if held == faction && other != participantID {
			return ErrFactionTaken
		}
	}
	room.Players[participantID] = faction
	return nil
}

// PrepareStart computes the AI factions, deals every deck, zeroes scores and
// assigns personalities. The room stays in lobby with Starting set until
// CommitStart; the returned personalities are the ones that need dialogue.
func PrepareStart(room *model.Room, cat Catalog, src Source) ([]model.Personality, error) {
	if room.Status != model.RoomStatusLobby {
		return nil, ErrWrongStatus
	}
	if room.Starting {
		return nil, ErrStartInProgress
	}
	if len(room.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if err := CheckRoster(cat, room.MaxRounds); err != nil {
		return nil, err
	}

	taken := make(map[model.Faction]bool, len(room.Players))
	for _, f := range room.Players {
		taken[f] = true
	}
	room.AIFactions = room.AIFactions[:0]
	for _, f := range model.AllFactions {
		if !taken[f] {
			room.AIFactions = append(room.AIFactions, f)
		}
	}

	room.Decks = make(map[string]map[string]bool)
	room.Scores = make(map[string]int)
	room.LockedCards = make(map[string][]string)
	room.AIPersonalities = make(map[string]model.Personality)

	for id, f := range room.Players {
		room.Decks[id] = deal(cat, f)
		room.Scores[id] = 0
	}

	pool := shufflePersonalities(src)
	inPlay := make([]model.Personality, 0, len(room.AIFactions))
	for i, f := range room.AIFactions {
		id := model.AIParticipantID(f)
		p := pool[i%len(pool)]
		room.AIPersonalities[id] = p
		room.Decks[id] = deal(cat, f)
		room.Scores[id] = 0
		inPlay = append(inPlay, p)
	}

	room.Starting = true
	return inPlay, nil
}

// CommitStart installs the dialogue vault and opens round 1
func CommitStart(room *model.Room, vault model.DialogueVault, provider string, now time.Time) error {
	if room.Status != model.RoomStatusLobby || !room.Starting {
		return ErrWrongStatus
	}
	if err := transition(room, model.RoomStatusPlaying); err != nil {
		return err
	}
	if vault == nil {
		vault = model.DialogueVault{}
	}
	room.DialogueVault = vault
	room.VaultProvider = provider
	room.Starting = false
	room.Round = 1
	room.StartedAt = &now
	return nil
}

// CheckRoster fails when some faction has fewer than maxRounds full
// selections in its roster.
func CheckRoster(cat Catalog, maxRounds int) error {
	need := maxRounds * SelectionSize
	for _, f := range model.AllFactions {
		if n := len(cat.Roster(f)); n < need {
			return fmt.Errorf("%w: %s has %d characters, %d rounds need %d", ErrRosterTooSmall, f, n, maxRounds, need)
		}
	}
	return nil
}

func deal(cat Catalog, f model.Faction) map[string]bool {
	deck := make(map[string]bool)
	for _, name := range cat.Roster(f) {
		deck[name] = true
	}
	return deck
}
