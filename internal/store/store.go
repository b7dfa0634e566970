// Package store holds the live rooms of this process
package store

import (
	"errors"
	"sync"

	"sanguo/internal/model"
)

// ErrRoomNotFound is returned for codes that name no live room
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomExists is returned when Put would overwrite a live room
var ErrRoomExists = errors.New("room code already in use")

// RoomStore maps room codes to rooms. The map is guarded here; each room's
// own state is guarded by the room's lock.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*model.Room
}

// NewRoomStore creates an empty store
func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[string]*model.Room)}
}

// Get returns the room for code
func (s *RoomStore) Get(code string) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Put stores a new room; it never replaces an existing one
func (s *RoomStore) Put(room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.Code]; ok {
		return ErrRoomExists
	}
	s.rooms[room.Code] = room
	return nil
}

// Exists reports whether code is in use
func (s *RoomStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok
}

// Len returns the number of live rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
