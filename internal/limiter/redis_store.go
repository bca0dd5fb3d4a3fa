package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore shares rate-limit counters across instances. Each window is a
// counter keyed by prefix:key that expires with the window.
type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	counterKey := fmt.Sprintf("%s:%s", r.prefix, key)

	count, err := r.client.Do(
		ctx,
		r.client.B().Incr().Key(counterKey).Build(),
	).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := r.client.Do(
			ctx,
			r.client.B().Expire().Key(counterKey).Seconds(int64(window.Seconds())).Build(),
		).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}
