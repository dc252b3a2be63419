package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/service/cache/provider"
)

var (
	ErrNotFound = errors.New("cache not found")
)

// Getter loads the value on a cache miss
type Getter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed TTL cache on top of a raw provider. Keys are namespaced by Pfx.
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter Getter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
