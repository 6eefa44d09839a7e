package score

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "leaderboard:top"
	cacheTTL = 30 * time.Second
)

// LeaderboardCache is a best-effort read cache. A miss or a redis failure
// falls through to the database; it never decides correctness.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]LeaderboardEntry, bool)
	Set(ctx context.Context, entries []LeaderboardEntry)
	Invalidate(ctx context.Context)
}

type RedisLeaderboardCache struct {
	db *redis.Client
}

func NewRedisLeaderboardCache(db *redis.Client) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{db: db}
}

func (c *RedisLeaderboardCache) Get(ctx context.Context) ([]LeaderboardEntry, bool) {
	val, err := c.db.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Println("Error reading leaderboard cache:", err)
		return nil, false
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		log.Println("Error decoding leaderboard cache:", err)
		return nil, false
	}
	return entries, true
}

func (c *RedisLeaderboardCache) Set(ctx context.Context, entries []LeaderboardEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		log.Println("Error encoding leaderboard cache:", err)
		return
	}
	if err := c.db.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		log.Println("Error writing leaderboard cache:", err)
	}
}

func (c *RedisLeaderboardCache) Invalidate(ctx context.Context) {
	if err := c.db.Del(ctx, cacheKey).Err(); err != nil {
		log.Println("Error invalidating leaderboard cache:", err)
	}
}
