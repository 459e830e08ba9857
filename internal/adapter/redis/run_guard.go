package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "clipmarket:run:"

// releaseScript deletes the lease only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RunGuard implements port.RunGuard with Redis keys so that replicas sharing
// the instance never run the same job at once.
type RunGuard struct {
	client  redis.UniversalClient
	release time.Duration
}

func NewRunGuard(client redis.UniversalClient) *RunGuard {
	return &RunGuard{client: client, release: 5 * time.Second}
}

// Acquire sets the lease key if absent. The returned release function
// removes it only if this call still owns it.
func (g *RunGuard) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), bool, error) {
	key := keyPrefix + name
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire %s lease: %w", name, err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func() {
		// the caller's context may already be cancelled at this point
		ctx, cancel := context.WithTimeout(context.Background(), g.release)
		defer cancel()
		_ = releaseScript.Run(ctx, g.client, []string{key}, token).Err()
	}
	return release, true, nil
}
