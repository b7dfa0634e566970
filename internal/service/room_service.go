package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sanguo/internal/cache"
	"sanguo/internal/config"
	"sanguo/internal/game"
	"sanguo/internal/model"
	"sanguo/internal/store"
)

var (
	ErrInvalidNickname = errors.New("nickname must be 3-12 letters, digits or underscores")
	ErrCodeExhausted   = errors.New("failed to generate unique room code")
)

var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,12}$`)

// DialogueGenerator produces the per-game vault of AI flavor lines
type DialogueGenerator interface {
	GenerateDialogueVault(ctx context.Context, personalities []model.Personality) (model.DialogueVault, string)
}

// ActionResult is returned by every participant mutation. Applied is false
// when the call lost a race against a status change and changed nothing.
type ActionResult struct {
	Room    *model.RoomView `json:"room"`
	Applied bool            `json:"applied"`
}

// RoomService owns the live rooms and runs every game operation under the
// room's lock.
type RoomService struct {
	rooms    *store.RoomStore
	catalog  game.Catalog
	rules    config.GameConfig
	dialogue DialogueGenerator
	authSvc  *AuthService
	audit    *Auditor

	roomCache   cache.RoomCache
	leaderboard cache.LeaderboardCache
	archive     *ArchiveService
	broadcaster Broadcaster
	turnstiles  sync.Map // room code -> *turnstile

	random game.Source
	now    func() time.Time
}

// NewRoomService creates a new room service
func NewRoomService(
	rooms *store.RoomStore,
	catalog game.Catalog,
	rules config.GameConfig,
	dialogue DialogueGenerator,
	authSvc *AuthService,
	audit *Auditor,
) *RoomService {
	return &RoomService{
		rooms:    rooms,
		catalog:  catalog,
		rules:    rules,
		dialogue: dialogue,
		authSvc:  authSvc,
		audit:    audit,
		random:   game.CryptoSource(),
		now:      time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *RoomService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SetCaches enables the Redis room mirror and leaderboard
func (s *RoomService) SetCaches(roomCache cache.RoomCache, leaderboard cache.LeaderboardCache) {
	s.roomCache = roomCache
	s.leaderboard = leaderboard
}

// SetArchive enables archiving of finished games
func (s *RoomService) SetArchive(a *ArchiveService) {
	s.archive = a
}

// CreateRoom opens an empty lobby and returns its code
func (s *RoomService) CreateRoom(ctx context.Context) (string, error) {
	for attempts := 0; attempts < 10; attempts++ {
		code, err := generateRoomCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		if s.rooms.Exists(code) {
			continue
		}

		room := game.NewRoom(code, s.rules.MaxRounds, s.now())
		if s.roomCache != nil {
			ok, err := s.roomCache.Reserve(ctx, metaFor(room))
			if err != nil {
				log.Printf("room cache unavailable, using local uniqueness for %s: %v", code, err)
			} else if !ok {
				continue
			}
		}
		if err := s.rooms.Put(room); err != nil {
			if errors.Is(err, store.ErrRoomExists) {
				continue
			}
			return "", err
		}

		s.audit.Record(code, "", "create_room")
		log.Printf("room %s created", code)
		return code, nil
	}
	return "", ErrCodeExhausted
}

// JoinRoom seats a new participant in a lobby and mints their token
func (s *RoomService) JoinRoom(ctx context.Context, code, nickname string) (*model.JoinResponse, error) {
	nick, err := NormalizeNickname(nickname)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.Get(code)
	if err != nil {
		return nil, err
	}

	participantID := "p_" + uuid.New().String()[:8]
	token, err := s.authSvc.GenerateParticipantToken(code, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	room.Lock()
	if err := game.Join(room, participantID, nick); err != nil {
		room.Unlock()
		return nil, err
	}
	view := game.ViewFor(room, participantID)
	out := s.capture(room)
	room.Unlock()

	s.audit.Record(code, participantID, "join_room")
	s.publish(ctx, out)

	return &model.JoinResponse{
		ParticipantID: participantID,
		Token:         token,
		Room:          view,
	}, nil
}

// LiveRooms returns the number of rooms held by this process
func (s *RoomService) LiveRooms() int {
	return s.rooms.Len()
}

// GetView returns the caller's view of the room
func (s *RoomService) GetView(ctx context.Context, code, participantID string) (*model.RoomView, error) {
	room, err := s.rooms.Get(code)
	if err != nil {
		return nil, err
	}
	room.Lock()
	defer room.Unlock()
	if _, ok := room.Nicknames[participantID]; !ok {
		return nil, game.ErrUnknownParticipant
	}
	return game.ViewFor(room, participantID), nil
}

// AssignFaction claims a faction for the caller
func (s *RoomService) AssignFaction(ctx context.Context, code, participantID string, faction model.Faction) (*ActionResult, error) {
	return s.mutate(ctx, code, participantID, "assign_faction", func(room *model.Room, out *outbox) error {
		return game.AssignFaction(room, participantID, faction)
	})
}

// StartGame deals the decks and opens round 1. The room lock is released
// while the dialogue vault is generated.
func (s *RoomService) StartGame(ctx context.Context, code, participantID string) (*ActionResult, error) {
	room, err := s.rooms.Get(code)
	if err != nil {
		return nil, err
	}

	room.Lock()
	if _, ok := room.Nicknames[participantID]; !ok {
		room.Unlock()
		return nil, game.ErrUnknownParticipant
	}
	personalities, err := game.PrepareStart(room, s.catalog, s.random)
	if err != nil {
		if !game.IsStateMismatch(err) {
			room.Unlock()
			return nil, err
		}
		view := game.ViewFor(room, participantID)
		room.Unlock()
		log.Printf("start_game in room %s ignored: %v", code, err)
		return &ActionResult{Room: view, Applied: false}, nil
	}
	room.Unlock()
	s.audit.Record(code, participantID, "start_game")

	vault := model.DialogueVault{}
	provider := ""
	if s.dialogue != nil {
		// the vault must be committed even if the caller goes away
		vault, provider = s.dialogue.GenerateDialogueVault(context.WithoutCancel(ctx), personalities)
	}

	room.Lock()
	if err := game.CommitStart(room, vault, provider, s.now()); err != nil {
		room.Unlock()
		return nil, err
	}
	view := game.ViewFor(room, participantID)
	out := s.capture(room)
	room.Unlock()

	if provider == "" {
		provider = "none"
	}
	log.Printf("room %s started: %d AI factions, %d dialogue lines from %s", code, len(personalities), vault.Size(), provider)
	s.publish(ctx, out)
	return &ActionResult{Room: view, Applied: true}, nil
}

// mutate runs fn under the room lock. Validation errors are returned;
// state-mismatch errors are absorbed into an unapplied result.
func (s *RoomService) mutate(ctx context.Context, code, participantID, op string, fn func(*model.Room, *outbox) error) (*ActionResult, error) {
	room, err := s.rooms.Get(code)
	if err != nil {
		return nil, err
	}

	room.Lock()
	if _, ok := room.Nicknames[participantID]; !ok {
		room.Unlock()
		return nil, game.ErrUnknownParticipant
	}
	out := &outbox{}
	err = fn(room, out)
	if err != nil && !game.IsStateMismatch(err) {
		room.Unlock()
		return nil, err
	}
	applied := err == nil
	view := game.ViewFor(room, participantID)
	if applied {
		captured := s.capture(room)
		captured.scores = out.scores
		captured.resolved = out.resolved
		captured.record = out.record
		out = captured
	}
	room.Unlock()

	if !applied {
		log.Printf("%s in room %s ignored: %v", op, code, err)
		return &ActionResult{Room: view, Applied: false}, nil
	}
	s.audit.Record(code, participantID, op)
	s.publish(ctx, out)
	return &ActionResult{Room: view, Applied: true}, nil
}

// capture snapshots every human's view and the room meta and takes the
// room's publish ticket; caller holds the lock. Every captured outbox must be
// published.
func (s *RoomService) capture(room *model.Room) *outbox {
	t, _ := s.turnstiles.LoadOrStore(room.Code, newTurnstile())
	turn := t.(*turnstile)
	out := &outbox{
		code:   room.Code,
		views:  make(map[string]*model.RoomView, len(room.Nicknames)),
		meta:   metaFor(room),
		turn:   turn,
		ticket: turn.take(),
	}
	for id := range room.Nicknames {
		out.views[id] = game.ViewFor(room, id)
	}
	return out
}

// publish pushes views and mirrors state to the optional stores. Everything
// here is best effort.
func (s *RoomService) publish(ctx context.Context, out *outbox) {
	if out.turn != nil {
		out.turn.wait(out.ticket)
		defer out.turn.done()
	}

	if s.broadcaster != nil {
		for id, view := range out.views {
			s.broadcaster.SendToParticipant(out.code, id, MsgRoomUpdate, view)
		}
		if out.resolved != nil {
			s.broadcaster.BroadcastToRoom(out.code, MsgRoundResolved, out.resolved)
		}
		if out.record != nil {
			s.broadcaster.BroadcastToRoom(out.code, MsgGameFinished, GameFinishedPayload{
				Scores:  out.record.Scores,
				Winners: out.record.Winners,
			})
			s.broadcaster.DisconnectRoom(out.code)
		}
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if s.roomCache != nil && out.meta != nil {
		if err := s.roomCache.SetMeta(bg, out.meta); err != nil {
			log.Printf("Warning: failed to mirror room %s: %v", out.code, err)
		}
	}
	if s.leaderboard != nil && out.scores != nil {
		if err := s.leaderboard.SetScores(bg, out.code, out.scores); err != nil {
			log.Printf("Warning: failed to update leaderboard for %s: %v", out.code, err)
		}
	}
	if s.archive != nil && out.record != nil {
		if err := s.archive.Archive(bg, out.record); err != nil {
			log.Printf("Warning: failed to archive game %s: %v", out.record.ID, err)
		}
	}
}

func metaFor(room *model.Room) *model.RoomMeta {
	return &model.RoomMeta{
		Code:         room.Code,
		Status:       room.Status,
		Round:        room.Round,
		Participants: len(room.Nicknames),
		CreatedAt:    room.CreatedAt,
	}
}

// NormalizeNickname validates a nickname and HTML-escapes it
func NormalizeNickname(raw string) (string, error) {
	nick := strings.TrimSpace(raw)
	if !nicknamePattern.MatchString(nick) {
		return "", ErrInvalidNickname
	}
	return html.EscapeString(nick), nil
}

// generateRoomCode creates a 6-char alphanumeric code
func generateRoomCode() (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const codeLen = 6

	b := make([]byte, codeLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	code := make([]byte, codeLen)
	for i := range code {
		code[i] = chars[int(b[i])%len(chars)]
	}
	return string(code), nil
}
