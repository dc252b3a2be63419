package usecase

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/auction"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/domain/settlement"
)

// settle moves the winning amount out of the winner's lock to the seller and flags the record RELEASED.
// Ledger failures leave the record PENDING for RetryPending. A lock that can never pay the record
// parks it FAILED and raises an alert.
func (im *impl) settle(c ctx.Ctx, r *settlement.Record) bool {
	c = ctx.WithValue(c, "settlementId", r.Id)
	if r.LockRef == nil || *r.LockRef == "" {
		c.Warn("settlement has no fund lock")
		return false
	}
	txRef, err := im.vault.Settle(c, *r.LockRef, r.SellerIdentity, r.Amount, r.BuyerId, r.LeadId)
	if errors.Is(err, domain.ErrLockClosed) || errors.Is(err, domain.ErrInvalidAmount) {
		im.failSettlement(c, r, err)
		return false
	} else if err != nil {
		im.met.BumpSum("settle.err", 1)
		c.WithField("err", err).Error("vault.Settle failed")
		return false
	}
	if err := im.settleRepo.MarkReleased(c, r.Id, txRef, timeNow()); err != nil && !errors.Is(err, domain.ErrStatusConflict) {
		im.met.BumpSum("settle.err", 1)
		c.WithField("err", err).Error("settleRepo.MarkReleased failed")
		return false
	}
	return true
}

func (im *impl) failSettlement(c ctx.Ctx, r *settlement.Record, cause error) {
	c.WithField("err", cause).Error("settlement cannot be paid from its lock")
	im.met.BumpSum("integrity.violation", 1)
	if err := im.settleRepo.MarkFailed(c, r.Id, cause.Error()); err != nil && !errors.Is(err, domain.ErrStatusConflict) {
		c.WithField("err", err).Error("settleRepo.MarkFailed failed")
		return
	}
	if err := im.notifier.Alert(c, "Integrity violation: settlement cannot be paid", map[string]string{
		"leadId":       r.LeadId,
		"settlementId": r.Id,
		"lockId":       *r.LockRef,
		"reason":       cause.Error(),
	}); err != nil {
		c.WithField("err", err).Error("notifier.Alert failed")
	}
}

func (im *impl) refundLosers(c ctx.Ctx, leadId string) {
	losers, err := im.bidRepo.FindAll(c,
		bid.WithLeadId(leadId),
		bid.WithStatus(bid.StatusOutbid, bid.StatusExpired),
		bid.WithLockHeld(true),
		bid.WithRefunded(false),
	)
	if err != nil {
		c.WithField("err", err).Error("bidRepo.FindAll failed")
		return
	}
	for i := range losers {
		im.refund(c, &losers[i])
	}
}

// refund releases the bid's lock once. Refunded stays false on failure so a retry picks it up.
func (im *impl) refund(c ctx.Ctx, b *bid.Bid) bool {
	if !b.HasOpenLock() {
		return true
	}
	c = ctx.WithValues(c, map[string]interface{}{"bidId": b.Id, "lockId": *b.LockRef})
	if _, err := im.vault.Refund(c, *b.LockRef, b.BuyerId, b.LeadId); err != nil {
		im.met.BumpSum("refund.err", 1)
		c.WithField("err", err).Error("vault.Refund failed")
		return false
	}
	if err := im.bidRepo.MarkRefunded(c, b.Id); err != nil && !errors.Is(err, domain.ErrConflict) {
		im.met.BumpSum("refund.err", 1)
		c.WithField("err", err).Error("bidRepo.MarkRefunded failed")
		return false
	}
	return true
}

// payBounties releases matched pools to the seller. A failed release is logged and not retried.
func (im *impl) payBounties(c ctx.Ctx, l *lead.Lead, amount decimal.Decimal) {
	payouts, err := im.bounty.Match(c, l, amount)
	if err != nil {
		im.met.BumpSum("bounty.err", 1)
		c.WithField("err", err).Error("bounty.Match failed")
		return
	}
	for _, p := range payouts {
		if _, err := im.bounty.Release(c, p.PoolId, l.Id, l.OwnerIdentity, p.Amount); err != nil {
			im.met.BumpSum("bounty.err", 1)
			c.WithFields(log.Fields{
				"err":    err,
				"poolId": p.PoolId,
			}).Error("bounty.Release failed")
			continue
		}
		im.broadcaster.Publish(c, auction.Event{
			Type:    auction.EventBountyReleased,
			Payload: auction.BountyReleasedPayload{LeadId: l.Id, PoolId: p.PoolId, Amount: p.Amount},
		})
	}
}

func (im *impl) RetryPending(c ctx.Ctx) error {
	defer im.met.BumpTime("retry.time").End()

	pending, err := im.settleRepo.FindPending(c, im.retryLimit)
	if err != nil {
		c.WithField("err", err).Error("settleRepo.FindPending failed")
		return err
	}
	settled := 0
	for i := range pending {
		if im.settle(c, &pending[i]) {
			settled++
		}
	}

	losers, err := im.bidRepo.FindAll(c,
		bid.WithStatus(bid.StatusOutbid, bid.StatusExpired),
		bid.WithLockHeld(true),
		bid.WithRefunded(false),
		bid.WithLimit(im.retryLimit),
	)
	if err != nil {
		c.WithField("err", err).Error("bidRepo.FindAll failed")
		return err
	}
	closed, err := im.closedLeads(c, losers)
	if err != nil {
		return err
	}
	refunded := 0
	for i := range losers {
		if !closed[losers[i].LeadId] {
			continue
		}
		if im.refund(c, &losers[i]) {
			refunded++
		}
	}

	if len(pending) > 0 || len(losers) > 0 {
		c.WithFields(log.Fields{
			"pendingSettlements": len(pending),
			"settled":            settled,
			"pendingRefunds":     len(losers),
			"refunded":           refunded,
		}).Info("retry pending done")
	}
	return nil
}

// closedLeads reports which leads of the bids are no longer IN_AUCTION
func (im *impl) closedLeads(c ctx.Ctx, bids []bid.Bid) (map[string]bool, error) {
	res := map[string]bool{}
	if len(bids) == 0 {
		return res, nil
	}
	ids := make([]string, 0, len(bids))
	for _, b := range bids {
		if _, ok := res[b.LeadId]; !ok {
			res[b.LeadId] = false
			ids = append(ids, b.LeadId)
		}
	}
	leads, err := im.leadRepo.FindAll(c, lead.WithIds(ids...))
	if err != nil {
		c.WithField("err", err).Error("leadRepo.FindAll failed")
		return nil, err
	}
	for _, l := range leads {
		res[l.Id] = l.Status != lead.StatusInAuction
	}
	return res, nil
}
