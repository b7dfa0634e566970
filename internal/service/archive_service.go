package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sanguo/internal/game"
	"sanguo/internal/model"
	"sanguo/internal/repository"
)

// ErrGameNotFound is returned for an archive id with no stored game
var ErrGameNotFound = errors.New("game not found")

// ArchiveService stores finished games and lists them back
type ArchiveService struct {
	games repository.GameRepo
}

// NewArchiveService creates a new archive service; a nil repo disables it
func NewArchiveService(games repository.GameRepo) *ArchiveService {
	return &ArchiveService{games: games}
}

// Enabled reports whether a backing store is configured
func (s *ArchiveService) Enabled() bool {
	return s != nil && s.games != nil
}

// Archive saves a finished game
func (s *ArchiveService) Archive(ctx context.Context, record *model.GameRecord) error {
	if !s.Enabled() {
		return nil
	}
	return s.games.Save(ctx, record)
}

// Recent lists the latest finished games, newest first
func (s *ArchiveService) Recent(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	if !s.Enabled() {
		return []*model.GameRecord{}, nil
	}
	games, err := s.games.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []*model.GameRecord{}
	}
	return games, nil
}

// RoomHistory lists the finished games played in one room
func (s *ArchiveService) RoomHistory(ctx context.Context, roomCode string) ([]*model.GameRecord, error) {
	if !s.Enabled() {
		return []*model.GameRecord{}, nil
	}
	games, err := s.games.ListByRoom(ctx, roomCode)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []*model.GameRecord{}
	}
	return games, nil
}

// Game returns one archived game by id
func (s *ArchiveService) Game(ctx context.Context, id string) (*model.GameRecord, error) {
	if !s.Enabled() {
		return nil, ErrGameNotFound
	}
	rec, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrGameNotFound
	}
	return rec, nil
}

// RecordFor builds the archive record of a finished room; caller holds the lock
func RecordFor(room *model.Room) *model.GameRecord {
	rec := &model.GameRecord{
		ID:         uuid.New().String(),
		RoomCode:   room.Code,
		Players:    make(map[string]model.Faction, len(room.Players)),
		Nicknames:  make(map[string]string, len(room.Nicknames)),
		AIFactions: append([]model.Faction(nil), room.AIFactions...),
		Scores:     copyScores(room.Scores),
		Winners:    game.Winners(room),
		Rounds:     append([]model.RoundRecord(nil), room.History...),
	}
	for id, f := range room.Players {
		rec.Players[id] = f
	}
	for id, n := range room.Nicknames {
		rec.Nicknames[id] = n
	}
	if room.StartedAt != nil {
		rec.StartedAt = *room.StartedAt
	}
	if room.FinishedAt != nil {
		rec.FinishedAt = *room.FinishedAt
	} else {
		rec.FinishedAt = time.Now()
	}
	return rec
}
