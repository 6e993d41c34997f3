package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

const (
	DefaultLease = 10 * time.Second
	retryEvery   = 50 * time.Millisecond
)

// Only delete the key if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker leases a slot key with SET NX PX so several server
// processes can share one bookings store.
type RedisLocker struct {
	client *redis.Client
	lease  time.Duration
	prefix string
}

func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func NewRedisLocker(client *redis.Client, lease time.Duration) *RedisLocker {
	if lease <= 0 {
		lease = DefaultLease
	}
	return &RedisLocker{
		client: client,
		lease:  lease,
		prefix: "meeting-scheduler:",
	}
}

func (l *RedisLocker) Lock(ctx context.Context, slot time.Time) (func(), error) {
	key := l.prefix + Key(slot)
	token := uuid.NewString()

	ticker := time.NewTicker(retryEvery)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.lease).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, httperr.ErrBusiness("slot_locked")
			}
			return nil, err
		}
		if ok {
			return func() {
				// Release must outlive a cancelled request.
				rctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil {
					zap.L().Warn("slot lock release failed", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, httperr.ErrBusiness("slot_locked")
		}
	}
}
