package cache

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain/keys"
	"github.com/x-xyz/leadauction/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter Getter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if err != ErrNotFound {
		// a broken cache must not block the lookup
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Get failed, falling back to getter")
	}

	val, err := getter()
	if err != nil {
		return err
	}

	raw, err := im.serialize(val)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, keys.RedisKey(im.pfx, key), raw, im.ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
	}

	return im.deserialize(raw, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	if val, _, err := im.cache.Get(c, key); err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	} else if err := im.deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	if val, err := im.serialize(value); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	} else if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}

	return nil
}
