package service

import (
	"context"
	"log"
	"sort"

	"sanguo/internal/cache"
	"sanguo/internal/game"
	"sanguo/internal/model"
)

// SubmitSelection stores the caller's sealed bid of three characters
func (s *RoomService) SubmitSelection(ctx context.Context, code, participantID string, cards []string) (*ActionResult, error) {
	return s.mutate(ctx, code, participantID, "submit_selection", func(room *model.Room, out *outbox) error {
		completed, err := game.SubmitSelection(room, participantID, cards, s.catalog)
		if err != nil {
			return err
		}
		if completed {
			log.Printf("room %s round %d: all bids in", room.Code, room.Round)
		}
		return nil
	})
}

// ResolveRound draws the attribute and scores the round
func (s *RoomService) ResolveRound(ctx context.Context, code, participantID string) (*ActionResult, error) {
	return s.mutate(ctx, code, participantID, "resolve_round", func(room *model.Room, out *outbox) error {
		attr := game.DrawAttribute(s.random)
		results, err := game.ResolveRound(room, attr, s.catalog, s.rules)
		if err != nil {
			return err
		}
		out.resolved = &model.RoundRecord{Round: room.Round, Attribute: attr, Results: results}
		out.scores = copyScores(room.Scores)
		return nil
	})
}

// AdvanceRound moves past the result screen; after the last round the game
// finishes and is archived.
func (s *RoomService) AdvanceRound(ctx context.Context, code, participantID string) (*ActionResult, error) {
	return s.mutate(ctx, code, participantID, "advance_round", func(room *model.Room, out *outbox) error {
		finished, err := game.AdvanceRound(room, s.now())
		if err != nil {
			return err
		}
		if finished {
			out.record = RecordFor(room)
			log.Printf("room %s finished, winners: %d", room.Code, len(out.record.Winners))
		}
		return nil
	})
}

// Leaderboard returns the room's standings, from Redis when available
func (s *RoomService) Leaderboard(ctx context.Context, code, participantID string) ([]cache.LeaderboardEntry, error) {
	room, err := s.rooms.Get(code)
	if err != nil {
		return nil, err
	}
	room.Lock()
	if _, ok := room.Nicknames[participantID]; !ok {
		room.Unlock()
		return nil, game.ErrUnknownParticipant
	}
	scores := copyScores(room.Scores)
	room.Unlock()

	if s.leaderboard != nil {
		entries, err := s.leaderboard.GetTop(ctx, code, len(scores))
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
		if err != nil {
			log.Printf("Warning: leaderboard cache read for %s failed: %v", code, err)
		}
	}
	return rankScores(scores), nil
}

// rankScores orders by score then id, sharing ranks on ties
func rankScores(scores map[string]int) []cache.LeaderboardEntry {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	entries := make([]cache.LeaderboardEntry, len(ids))
	for i, id := range ids {
		rank := i + 1
		if i > 0 && scores[id] == entries[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = cache.LeaderboardEntry{ParticipantID: id, Score: scores[id], Rank: rank}
	}
	return entries
}

func copyScores(scores map[string]int) map[string]int {
	out := make(map[string]int, len(scores))
	for id, v := range scores {
		out[id] = v
	}
	return out
}
