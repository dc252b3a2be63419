package broadcast

import (
	"encoding/json"
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain/auction"
	"github.com/x-xyz/leadauction/domain/keys"
	"github.com/x-xyz/leadauction/service/redis"
)

const (
	scheduleTimeout = 3 * time.Second
)

var (
	timeNow = time.Now
)

// Service publishes auction events to a redis channel without blocking the caller
type Service interface {
	auction.Broadcaster
	Close()
}

type impl struct {
	redis   redis.Service
	channel string
	pool    *goroutines.Pool
	met     metrics.Service
}

func New(r redis.Service, workers int) Service {
	if workers <= 0 {
		workers = 4
	}
	return &impl{
		redis:   r,
		channel: keys.ChannelAuctionEvents,
		pool:    goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(1)),
		met:     metrics.New("broadcast"),
	}
}

func (im *impl) Publish(c bCtx.Ctx, e auction.Event) {
	if e.At.IsZero() {
		e.At = timeNow()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "type": e.Type}).Error("json.Marshal failed")
		return
	}

	detached := bCtx.Detach(c)
	if err := im.pool.ScheduleWithTimeout(scheduleTimeout, func() {
		if _, err := im.redis.Publish(detached, im.channel, payload); err != nil {
			im.met.BumpSum("publish.err", 1, "type", string(e.Type))
			return
		}
		im.met.BumpSum("publish", 1, "type", string(e.Type))
	}); err != nil {
		im.met.BumpSum("schedule.err", 1, "type", string(e.Type))
		c.WithFields(log.Fields{"err": err, "type": e.Type}).Warn("failed to ScheduleWithTimeout")
	}
}

// Close waits for queued events to drain
func (im *impl) Close() {
	im.pool.Release()
}
