package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the owner's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a lock on a single Redis key. A lock can only be released by the Locker that acquired it.
type Locker struct {
	log    *slog.Logger
	client redis.UniversalClient
	token  string
}

func NewLocker(client redis.UniversalClient) (*Locker, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate token: %v", err)
	}

	return &Locker{
		log:    slog.Default().With("cmp", "locker"),
		client: client,
		token:  hex.EncodeToString(b),
	}, nil
}

func (l *Locker) Lock(ctx context.Context, key string) (bool, error) {
	var ttl time.Duration

	deadline, ok := ctx.Deadline()
	if ok {
		ttl = time.Until(deadline)
		if ttl <= time.Millisecond {
			return false, context.DeadlineExceeded
		}
	}

	ok, err := l.client.SetNX(ctx, key, l.token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("set nx command: %v", err)
	}

	l.log.DebugContext(ctx, "Lock attempted", "key", key, "acquired", ok, "ttl", ttl)

	return ok, nil
}

func (l *Locker) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.client, []string{key}, l.token).Err(); err != nil {
		return fmt.Errorf("release script: %v", err)
	}

	return nil
}
