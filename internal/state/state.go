package state

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsRecorder keeps per-source crawl statistics for the admin surface:
// when a source last finished and how many products it yielded. Crawl
// events themselves are never persisted or replayed.
type StatsRecorder interface {
	RecordCrawl(ctx context.Context, sourceID string, products int, finishedAt time.Time) error
	LastCrawl(ctx context.Context, sourceID string) (time.Time, int, error)
}

type redisStatsRecorder struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStatsRecorder(redisClient *redis.Client) StatsRecorder {
	return &redisStatsRecorder{
		redisClient: redisClient,
		keyPrefix:   "materialhub:crawl:stats:",
	}
}

func (s *redisStatsRecorder) RecordCrawl(ctx context.Context, sourceID string, products int, finishedAt time.Time) error {
	key := s.keyPrefix + sourceID
	err := s.redisClient.HSet(ctx, key,
		"finished_at", finishedAt.Unix(),
		"products", products,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to record crawl stats for %s: %w", sourceID, err)
	}
	return nil
}

// LastCrawl returns zero values when the source has never been crawled.
func (s *redisStatsRecorder) LastCrawl(ctx context.Context, sourceID string) (time.Time, int, error) {
	key := s.keyPrefix + sourceID
	vals, err := s.redisClient.HGetAll(ctx, key).Result()
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to read crawl stats for %s: %w", sourceID, err)
	}
	if len(vals) == 0 {
		return time.Time{}, 0, nil
	}

	unix, err := strconv.ParseInt(vals["finished_at"], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to parse crawl timestamp for %s: %w", sourceID, err)
	}
	products, err := strconv.Atoi(vals["products"])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("failed to parse product count for %s: %w", sourceID, err)
	}

	return time.Unix(unix, 0), products, nil
}
