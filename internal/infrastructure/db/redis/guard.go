package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

const defaultGuardTTL = 30 * time.Second

// releaseScript deletes the key only if it still holds our token, so a lock
// that expired and was re-acquired by another caller is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ActionGuard provides cross-process in-flight guards backed by Redis.
// Key format: inflight:<action>
type ActionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewActionGuard wraps client. Keys expire after ttl so a crashed holder
// cannot block an action forever; ttl <= 0 selects defaultGuardTTL.
func NewActionGuard(client *redis.Client, ttl time.Duration) *ActionGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &ActionGuard{client: client, ttl: ttl}
}

// Acquire claims the action with SET NX. The release func uses a background
// context so the key is freed even after the caller's context ends.
func (g *ActionGuard) Acquire(ctx context.Context, action string) (func(), error) {
	token := uuid.NewString()
	key := g.key(action)
	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("guard acquire: %w", err)
	}
	if !ok {
		return nil, domain.ErrActionInFlight
	}

	return func() {
		_ = releaseScript.Run(context.Background(), g.client, []string{key}, token).Err()
	}, nil
}

func (g *ActionGuard) key(action string) string {
	return "inflight:" + action
}
