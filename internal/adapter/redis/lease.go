package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"postcraft/internal/config/configs"
	"postcraft/internal/core/port"
)

const keyPrefix = "postcraft:lease:"

// releaseScript deletes the lease only if it still belongs to the caller,
// so an expired lease re-acquired by another instance is left alone.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// Lease implements port.Locker with SET NX PX leases.
type Lease struct {
	client   *goredis.Client
	newToken func() string
}

var _ port.Locker = (*Lease)(nil)

// NewLease returns a Locker backed by client.
func NewLease(client *goredis.Client) *Lease {
	return &Lease{client: client, newToken: uuid.NewString}
}

// Acquire takes the lease on key for ttl.
func (l *Lease) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	k := keyPrefix + key
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, k, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lease %s: %w", key, err)
	}
	if !ok {
		return nil, port.ErrGenerationInProgress
	}
	return func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{k}, token).Err(); err != nil {
			return fmt.Errorf("release lease %s: %w", key, err)
		}
		return nil
	}, nil
}

// NewClient connects to the configured Redis server and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
