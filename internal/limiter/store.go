package limiter

import (
	"context"
	"errors"
	"time"
)

// Store counts requests per key inside a fixed window. Implementations must
// be safe for concurrent use.
type Store interface {
	// Allow records one hit for key and reports whether the key is still
	// under limit within the window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

var ErrRateLimited = errors.New("rate limit exceeded")
