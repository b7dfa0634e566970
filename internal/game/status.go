package game

import (
	"fmt"
	"time"

	"sanguo/internal/model"
)

var transitions = map[model.RoomStatus][]model.RoomStatus{
	model.RoomStatusLobby:             {model.RoomStatusPlaying},
	model.RoomStatusPlaying:           {model.RoomStatusResolutionPending},
	model.RoomStatusResolutionPending: {model.RoomStatusResolutionResult},
	model.RoomStatusResolutionResult:  {model.RoomStatusPlaying, model.RoomStatusFinished},
}

// CanTransition reports whether the state machine allows from -> to
func CanTransition(from, to model.RoomStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func transition(room *model.Room, to model.RoomStatus) error {
	if !CanTransition(room.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, room.Status, to)
	}
	room.Status = to
	return nil
}

// NewRoom returns an empty room in lobby
func NewRoom(code string, maxRounds int, now time.Time) *model.Room {
	return &model.Room{
		Code:            code,
		Status:          model.RoomStatusLobby,
		Round:           0,
		MaxRounds:       maxRounds,
		Nicknames:       make(map[string]string),
		Players:         make(map[string]model.Faction),
		AIPersonalities: make(map[string]model.Personality),
		Decks:           make(map[string]map[string]bool),
		LockedCards:     make(map[string][]string),
		Scores:          make(map[string]int),
		CreatedAt:       now,
	}
}
