package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// AggregateCache keeps per-prompt rating summaries in Redis so list views do
// not recompute averages on every request. The aggregator itself stays
// stateless; the only hard requirement on this layer is that a rating
// submission invalidates the prompt's entry.
type AggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAggregateCache connects to Redis and verifies the connection.
func NewAggregateCache(redisURL, password string, ttl time.Duration) (*AggregateCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &AggregateCache{client: rdb, ttl: ttl}, nil
}

// NewNoopCache returns a cache that stores nothing. Used when Redis is absent
// and in tests.
func NewNoopCache() *AggregateCache {
	return &AggregateCache{}
}

func aggregateKey(promptID string) string {
	return fmt.Sprintf("prompt:%s:aggregate", promptID)
}

// Get returns the cached (average, count) for a prompt. ok is false on miss,
// on any Redis error, and in no-op mode - callers fall back to recomputing.
func (c *AggregateCache) Get(ctx context.Context, promptID string) (average float64, count int64, ok bool) {
	if c == nil || c.client == nil {
		return 0, 0, false
	}

	fields, err := c.client.HGetAll(ctx, aggregateKey(promptID)).Result()
	if err != nil || len(fields) == 0 {
		return 0, 0, false
	}

	average, errAvg := strconv.ParseFloat(fields["average"], 64)
	count, errCount := strconv.ParseInt(fields["count"], 10, 64)
	if errAvg != nil || errCount != nil {
		return 0, 0, false
	}

	return average, count, true
}

// Set stores the aggregate for a prompt with the configured TTL.
func (c *AggregateCache) Set(ctx context.Context, promptID string, average float64, count int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	key := aggregateKey(promptID)
	fields := map[string]any{
		"average": strconv.FormatFloat(average, 'g', -1, 64),
		"count":   strconv.FormatInt(count, 10),
	}

	if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// Invalidate drops the cached aggregate for a prompt. Must be called on every
// successful rating submission.
func (c *AggregateCache) Invalidate(ctx context.Context, promptID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, aggregateKey(promptID)).Err()
}

// Close releases the underlying Redis connection.
func (c *AggregateCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
