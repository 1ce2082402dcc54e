package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// run state outlives a crashed run for a day at most
const runTTL = 24 * time.Hour

func seenKey(run string) string {
	return "cataviz:" + run + ":identity:seen"
}

func resolvedKey(run string) string {
	return "cataviz:" + run + ":identity:resolved"
}

var _ IdentityCache = (*RedisIdentityCache)(nil)

// RedisIdentityCache shares the run state between processes loading the same
// database. Keys are scoped by run id.
type RedisIdentityCache struct {
	client *redis.Client
	run    string
}

// NewRedisClient connects to the redis server at url, e.g.
// redis://localhost:6379/0.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func NewRedisIdentityCache(client *redis.Client, run string) *RedisIdentityCache {
	return &RedisIdentityCache{client: client, run: run}
}

func (r *RedisIdentityCache) Seen(ctx context.Context, id int64) (bool, error) {
	return r.client.SIsMember(ctx, seenKey(r.run), id).Result()
}

func (r *RedisIdentityCache) MarkSeen(ctx context.Context, id int64) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if err := p.SAdd(ctx, seenKey(r.run), id).Err(); err != nil {
			return err
		}
		return p.Expire(ctx, seenKey(r.run), runTTL).Err()
	})
	return err
}

func (r *RedisIdentityCache) Resolved(ctx context.Context, number int64) (int64, bool, error) {
	res := r.client.HGet(ctx, resolvedKey(r.run), strconv.FormatInt(number, 10))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return 0, false, nil
		}
		return 0, false, res.Err()
	}

	id, err := res.Int64()
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *RedisIdentityCache) SetResolved(ctx context.Context, number int64, identityID int64) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if err := p.HSet(ctx, resolvedKey(r.run), strconv.FormatInt(number, 10), identityID).Err(); err != nil {
			return err
		}
		return p.Expire(ctx, resolvedKey(r.run), runTTL).Err()
	})
	return err
}

func (r *RedisIdentityCache) Clear(ctx context.Context) error {
	return r.client.Del(ctx, seenKey(r.run), resolvedKey(r.run)).Err()
}
