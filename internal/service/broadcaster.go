package service

import (
	"sync"

	"sanguo/internal/model"
)

// WebSocket message types
const (
	MsgRoomUpdate    = "room_update"
	MsgRoundResolved = "round_resolved"
	MsgGameFinished  = "game_finished"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	SendToParticipant(roomCode, participantID string, msgType string, payload interface{})
	BroadcastToRoom(roomCode string, msgType string, payload interface{})
	DisconnectRoom(roomCode string)
}

// GameFinishedPayload is pushed to everyone once the last round is advanced
type GameFinishedPayload struct {
	Scores  map[string]int `json:"scores"`
	Winners []string       `json:"winners"`
}

// outbox collects, under the room lock, everything that is published after
// the lock is released.
type outbox struct {
	code     string
	views    map[string]*model.RoomView
	meta     *model.RoomMeta
	scores   map[string]int
	resolved *model.RoundRecord
	record   *model.GameRecord

	turn   *turnstile
	ticket uint64
}

// turnstile lets the publishers of one room through in the order their
// tickets were taken. Tickets are taken under the room lock, so pushes and
// store writes follow the order the mutations were applied in.
type turnstile struct {
	mu      sync.Mutex
	cond    *sync.Cond
	issued  uint64
	serving uint64
}

func newTurnstile() *turnstile {
	t := &turnstile{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

func (t *turnstile) take() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.issued
	t.issued++
	return n
}

func (t *turnstile) wait(ticket uint64) {
	t.mu.Lock()
	for t.serving != ticket {
		t.cond.Wait()
	}
	t.mu.Unlock()
}

func (t *turnstile) done() {
	t.mu.Lock()
	t.serving++
	t.cond.Broadcast()
	t.mu.Unlock()
}
