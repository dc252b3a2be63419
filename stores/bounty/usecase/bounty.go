package usecase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bounty"
	"github.com/x-xyz/leadauction/domain/keys"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/service/ledger"
)

const defaultLedgerTimeout = 5 * time.Second

var (
	timeNow = time.Now
)

type BountyUseCaseCfg struct {
	PoolRepo    bounty.Repo
	ReleaseRepo bounty.ReleaseRepo
	Ledger      ledger.Client
	// LedgerTimeout bounds each transfer. A timeout fails the release like any other ledger error.
	LedgerTimeout time.Duration
}

type impl struct {
	pools    bounty.Repo
	releases bounty.ReleaseRepo
	ledger   ledger.Client
	timeout  time.Duration
	met      metrics.Service
}

func New(cfg *BountyUseCaseCfg) bounty.Usecase {
	timeout := cfg.LedgerTimeout
	if timeout <= 0 {
		timeout = defaultLedgerTimeout
	}
	return &impl{
		pools:    cfg.PoolRepo,
		releases: cfg.ReleaseRepo,
		ledger:   cfg.Ledger,
		timeout:  timeout,
		met:      metrics.New("bounty"),
	}
}

func (im *impl) Match(c ctx.Ctx, l *lead.Lead, capAmount decimal.Decimal) ([]bounty.Payout, error) {
	if !capAmount.IsPositive() {
		return []bounty.Payout{}, nil
	}
	pools, err := im.pools.FindActive(c, l.Category)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"category": l.Category,
		}).Error("pools.FindActive failed")
		return nil, err
	}
	return bounty.MatchPools(pools, l, capAmount, timeNow()), nil
}

func releaseKey(poolId, leadId string) string {
	return keys.CustomKey(":", "bounty", poolId, leadId)
}

// Release pays one pool's bounty for one lead. A pair is attempted once: a failed release is
// recorded FAILED and never retried automatically.
func (im *impl) Release(c ctx.Ctx, poolId, leadId string, payee domain.Address, amount decimal.Decimal) (string, error) {
	c = ctx.WithValues(c, map[string]interface{}{"poolId": poolId, "leadId": leadId})
	if !amount.IsPositive() {
		return "", domain.ErrInvalidAmount
	}

	pool, err := im.pools.FindOne(c, poolId)
	if err != nil {
		c.WithField("err", err).Error("pools.FindOne failed")
		return "", err
	}

	now := timeNow()
	if err := im.releases.Create(c, &bounty.Release{
		PoolId:    poolId,
		LeadId:    leadId,
		Payee:     payee.ToLower(),
		Amount:    amount,
		Status:    bounty.ReleaseStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}); errors.Is(err, domain.ErrConflict) {
		return im.existing(c, poolId, leadId)
	} else if err != nil {
		c.WithField("err", err).Error("releases.Create failed")
		return "", err
	}

	if err := im.pools.Debit(c, poolId, amount); err != nil {
		c.WithField("err", err).Warn("pools.Debit failed")
		im.fail(c, poolId, leadId)
		return "", err
	}

	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()
	txRef, err := im.ledger.Transfer(tc, pool.FunderIdentity, payee, amount, releaseKey(poolId, leadId))
	if err != nil {
		im.met.BumpSum("release.err", 1)
		c.WithField("err", err).Error("ledger.Transfer failed")
		if cerr := im.pools.Credit(c, poolId, amount); cerr != nil {
			c.WithField("err", cerr).Error("pools.Credit failed, pool balance needs manual repair")
		}
		im.fail(c, poolId, leadId)
		return "", err
	}

	if err := im.releases.UpdateStatus(c, poolId, leadId, bounty.ReleaseStatusReleased, &txRef); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"txRef": txRef,
		}).Error("releases.UpdateStatus failed")
	}
	im.met.BumpSum("release", 1)
	return txRef, nil
}

func (im *impl) existing(c ctx.Ctx, poolId, leadId string) (string, error) {
	r, err := im.releases.FindOne(c, poolId, leadId)
	if err != nil {
		return "", err
	}
	if r.Status == bounty.ReleaseStatusReleased && r.TxRef != nil {
		return *r.TxRef, nil
	}
	return "", domain.ErrConflict
}

func (im *impl) fail(c ctx.Ctx, poolId, leadId string) {
	if err := im.releases.UpdateStatus(c, poolId, leadId, bounty.ReleaseStatusFailed, nil); err != nil {
		c.WithField("err", err).Error("releases.UpdateStatus failed")
	}
}
