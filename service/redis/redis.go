package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
)

const (
	// Forever means the key never expires
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key exists without an expire
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrGapTime is returned when no pool is available
	ErrGapTime = errors.New("redis: no pool available")
	// ErrExpireNotExistOrTimeout is returned when EXPIRE could not be applied
	ErrExpireNotExistOrTimeout = errors.New("redis: key does not exist or the timeout could not be set")
)

// Service is the redis layer used by caches, rate limiting and event fan-out
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining seconds of the key
	TTL(context ctx.Ctx, key string) (int, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error

	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	// IncrWithExpire increments the key and sets its ttl in one MULTI/EXEC block
	IncrWithExpire(context ctx.Ctx, key string, ttl time.Duration) (int64, error)

	// Publish sends msg to channel and returns the number of subscribers that received it
	Publish(context ctx.Ctx, channel string, msg []byte) (int, error)

	Name() string
}
