package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sanguo/internal/model"
)

// RoomCache mirrors room metadata into Redis so room codes stay unique across
// server instances and restarts.
type RoomCache interface {
	// Reserve claims a code; false means some room already holds it
	Reserve(ctx context.Context, meta *model.RoomMeta) (bool, error)
	SetMeta(ctx context.Context, meta *model.RoomMeta) error
}

type roomCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomCache creates a new room cache
func NewRoomCache(client *redis.Client) RoomCache {
	return &roomCache{
		client: client,
		ttl:    24 * time.Hour, // Rooms expire after 24h
	}
}

func roomKey(code string) string {
	return fmt.Sprintf("sanguo:room:%s", code)
}

func (c *roomCache) Reserve(ctx context.Context, meta *model.RoomMeta) (bool, error) {
	data, err := json.Marshal(meta)
	if err != nil {
		return false, err
	}
	return c.client.SetNX(ctx, roomKey(meta.Code), data, c.ttl).Result()
}

func (c *roomCache) SetMeta(ctx context.Context, meta *model.RoomMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomKey(meta.Code), data, c.ttl).Err()
}
