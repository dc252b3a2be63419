package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.GetWithExpiration failed")
		return nil, 0, err
	}

	ttl := time.Duration(0)
	if exp > 0 {
		ttl = time.Until(time.Unix(int64(exp), 0)).Round(time.Second)
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	// freecache treats 0 as no expiry, keep sub-second ttls bounded
	seconds := int(ttl / time.Second)
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}
	if err := im.cache.Set([]byte(key), value, seconds); err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
