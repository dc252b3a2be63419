package usecase

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/incentive"
	"github.com/x-xyz/leadauction/domain/keys"
	"github.com/x-xyz/leadauction/service/cache"
	"github.com/x-xyz/leadauction/service/membership"
	"github.com/x-xyz/leadauction/service/redis"
)

const (
	rateWindow = time.Minute
	// a bucket must outlive the next window, which weighs it
	rateBucketTtl = 2 * rateWindow
)

var (
	timeNow = time.Now
)

type IncentiveUseCaseCfg struct {
	Membership membership.Client
	// MembershipCache fronts Membership. Tests can hand in any cache.Service.
	MembershipCache cache.Service
	Redis           redis.Service
	// MemberMultiplier must be greater than one
	MemberMultiplier decimal.Decimal
	EarlyWindow      time.Duration
	// BidsPerMinute of zero disables the activity guard
	BidsPerMinute int
}

type impl struct {
	membership       membership.Client
	cache            cache.Service
	redis            redis.Service
	memberMultiplier decimal.Decimal
	earlyWindow      time.Duration
	bidsPerMinute    int
	met              metrics.Service
}

func New(cfg *IncentiveUseCaseCfg) incentive.Usecase {
	multiplier := cfg.MemberMultiplier
	if !multiplier.GreaterThan(incentive.One) {
		multiplier = incentive.DefaultMemberMultiplier
	}
	return &impl{
		membership:       cfg.Membership,
		cache:            cfg.MembershipCache,
		redis:            cfg.Redis,
		memberMultiplier: multiplier,
		earlyWindow:      cfg.EarlyWindow,
		bidsPerMinute:    cfg.BidsPerMinute,
		met:              metrics.New("incentive"),
	}
}

func membershipKey(category, buyerId string) string {
	return keys.RedisKey(category, buyerId)
}

func (im *impl) isMember(c ctx.Ctx, category, buyerId string) (bool, error) {
	if im.cache == nil {
		return im.membership.IsHolder(c, category, buyerId)
	}
	getter := func() (interface{}, error) {
		holder, err := im.membership.IsHolder(c, category, buyerId)
		if err != nil {
			return nil, err
		}
		return holder, nil
	}
	isMember := false
	if err := im.cache.GetByFunc(c, membershipKey(category, buyerId), &isMember, getter); err != nil {
		return false, err
	}
	return isMember, nil
}

func (im *impl) Adjust(c ctx.Ctx, category, buyerId string) (incentive.Adjustment, error) {
	isMember, err := im.isMember(c, category, buyerId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"category": category,
			"buyerId":  buyerId,
		}).Error("membership lookup failed")
		return incentive.Adjustment{}, err
	}

	adj := incentive.Adjustment{
		IsMember:   isMember,
		Multiplier: im.MultiplierFor(isMember),
	}
	if isMember {
		adj.EarlyWindowSeconds = int(im.earlyWindow / time.Second)
	}
	return adj, nil
}

func (im *impl) MultiplierFor(isMember bool) decimal.Decimal {
	if isMember {
		return im.memberMultiplier
	}
	return incentive.One
}

func (im *impl) ApplyMultiplier(amount, multiplier decimal.Decimal) decimal.Decimal {
	return incentive.ApplyMultiplier(amount, multiplier)
}

// CheckActivity estimates the bids of the trailing minute from two fixed buckets:
// all of the current one plus the previous one weighted by how much of it still overlaps.
func (im *impl) CheckActivity(c ctx.Ctx, identity domain.Address) (bool, error) {
	if im.bidsPerMinute <= 0 {
		return true, nil
	}

	now := timeNow()
	bucket := now.Unix() / int64(rateWindow/time.Second)
	curKey := keys.RedisKey(keys.PfxBidRate, identity.ToLowerStr(), strconv.FormatInt(bucket, 10))
	prevKey := keys.RedisKey(keys.PfxBidRate, identity.ToLowerStr(), strconv.FormatInt(bucket-1, 10))

	cur, err := im.redis.IncrWithExpire(c, curKey, rateBucketTtl)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": curKey,
		}).Error("redis.IncrWithExpire failed")
		return false, err
	}

	prev := int64(0)
	if raw, err := im.redis.Get(c, prevKey); err == nil {
		if prev, err = strconv.ParseInt(string(raw), 10, 64); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"key": prevKey,
			}).Warn("malformed rate bucket")
			prev = 0
		}
	} else if !errors.Is(err, redis.ErrNotFound) {
		c.WithFields(log.Fields{
			"err": err,
			"key": prevKey,
		}).Error("redis.Get failed")
		return false, err
	}

	elapsed := float64(now.UnixNano()%int64(rateWindow)) / float64(rateWindow)
	estimate := float64(prev)*(1-elapsed) + float64(cur)
	if estimate > float64(im.bidsPerMinute) {
		im.met.BumpSum("ratelimited", 1)
		return false, nil
	}
	return true, nil
}

func (im *impl) Invalidate(c ctx.Ctx, category, buyerId string) error {
	if im.cache == nil {
		return nil
	}
	if err := im.cache.Del(c, membershipKey(category, buyerId)); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"category": category,
			"buyerId":  buyerId,
		}).Error("cache.Del failed")
		return err
	}
	return nil
}
