package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LeaderboardCache keeps each room's running scores in a Redis ZSET
type LeaderboardCache interface {
	SetScores(ctx context.Context, roomCode string, scores map[string]int) error
	GetTop(ctx context.Context, roomCode string, limit int) ([]LeaderboardEntry, error)
}

// LeaderboardEntry represents a single leaderboard entry
type LeaderboardEntry struct {
	ParticipantID string `json:"participantId"`
	Score         int    `json:"score"`
	Rank          int    `json:"rank"`
}

type leaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func leaderboardKey(roomCode string) string {
	return fmt.Sprintf("sanguo:room:%s:lb", roomCode)
}

// SetScores writes every participant's total in one pipeline
func (c *leaderboardCache) SetScores(ctx context.Context, roomCode string, scores map[string]int) error {
	if len(scores) == 0 {
		return nil
	}
	members := make([]redis.Z, 0, len(scores))
	for id, score := range scores {
		members = append(members, redis.Z{Score: float64(score), Member: id})
	}
	key := leaderboardKey(roomCode)
	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, key, members...)
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *leaderboardCache) GetTop(ctx context.Context, roomCode string, limit int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey(roomCode), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return rankEntries(results), nil
}

// rankEntries assigns competition ranks: equal scores share a rank
func rankEntries(results []redis.Z) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		id, _ := z.Member.(string)
		rank := i + 1
		if i > 0 && z.Score == results[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = LeaderboardEntry{
			ParticipantID: id,
			Score:         int(z.Score),
			Rank:          rank,
		}
	}
	return entries
}
