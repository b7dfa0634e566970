package game

import (
	"sort"

	"sanguo/internal/model"
)

// SelectionSize is the number of characters committed per round
const SelectionSize = 3

// SubmitSelection stores a human participant's sealed bid, auto-bids for every
// AI faction still missing, and moves the room to resolution_pending once the
// set is complete. It returns true when that transition happened.
func SubmitSelection(room *model.Room, participantID string, cards []string, cat Catalog) (bool, error) {
	if room.Status != model.RoomStatusPlaying {
		return false, ErrWrongStatus
	}
	if _, ok := room.Players[participantID]; !ok {
		return false, ErrUnknownParticipant
	}
	if _, done := room.LockedCards[participantID]; done {
		return false, ErrAlreadySubmitted
	}
	if err := validateSelection(room.Decks[participantID], cards); err != nil {
		return false, err
	}

	bid := make([]string, len(cards))
	copy(bid, cards)
	room.LockedCards[participantID] = bid

	autoSelectAI(room, cat)

	if !BidsComplete(room) {
		return false, nil
	}
	if err := transition(room, model.RoomStatusResolutionPending); err != nil {
		return false, err
	}
	return true, nil
}

// BidsComplete reports whether every participant (humans and AI) has a bid
func BidsComplete(room *model.Room) bool {
	ids := room.ParticipantIDs()
	if len(room.LockedCards) != len(ids) {
		return false
	}
	for _, id := range ids {
		if len(room.LockedCards[id]) != SelectionSize {
			return false
		}
	}
	return true
}

// DeckList returns a participant's remaining cards in name order
func DeckList(room *model.Room, participantID string) []string {
	deck := room.Decks[participantID]
	names := make([]string, 0, len(deck))
	for name := range deck {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateSelection(deck map[string]bool, cards []string) error {
	if len(cards) != SelectionSize {
		return ErrInvalidSelection
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return ErrInvalidSelection
		}
		seen[c] = true
		if !deck[c] {
			return ErrCardNotOwned
		}
	}
	return nil
}

func autoSelectAI(room *model.Room, cat Catalog) {
	for _, f := range room.AIFactions {
		id := model.AIParticipantID(f)
		if _, done := room.LockedCards[id]; done {
			continue
		}
		picks := SelectAICards(DeckList(room, id), room.AIPersonalities[id], cat)
		if len(picks) != SelectionSize {
			continue
		}
		room.LockedCards[id] = picks
	}
}
