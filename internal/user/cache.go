package user

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:top"

var ctx = context.Background()

// LeaderboardCache is a read-through cache for the top-scores list. A miss
// returns (nil, nil); the caller falls back to the database.
type LeaderboardCache interface {
	Get() ([]LeaderboardEntry, error)
	Set(entries []LeaderboardEntry) error
	Invalidate() error
}

type redisLeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) LeaderboardCache {
	return &redisLeaderboardCache{rdb: rdb, ttl: ttl}
}

func (c *redisLeaderboardCache) Get() ([]LeaderboardEntry, error) {
	val, err := c.rdb.Get(ctx, leaderboardKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *redisLeaderboardCache) Set(entries []LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey, data, c.ttl).Err()
}

func (c *redisLeaderboardCache) Invalidate() error {
	return c.rdb.Del(ctx, leaderboardKey).Err()
}

// NoopLeaderboardCache disables caching; every read hits the database.
type NoopLeaderboardCache struct{}

func (NoopLeaderboardCache) Get() ([]LeaderboardEntry, error) { return nil, nil }
func (NoopLeaderboardCache) Set(_ []LeaderboardEntry) error   { return nil }
func (NoopLeaderboardCache) Invalidate() error                { return nil }
