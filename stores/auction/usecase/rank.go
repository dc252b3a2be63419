package usecase

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/tiebreak"
)

// reveal moves every PENDING bid of the lead to REVEALED, or to EXPIRED when its commitment cannot be opened
// or the revealed amount is more than the bid locked
func (im *impl) reveal(c ctx.Ctx, leadId string) error {
	pending, err := im.bidRepo.FindAll(c, bid.WithLeadId(leadId), bid.WithStatus(bid.StatusPending))
	if err != nil {
		c.WithField("err", err).Error("bidRepo.FindAll failed")
		return err
	}
	for i := range pending {
		b := &pending[i]
		amount, err := revealedAmount(b)
		if err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"bidId": b.Id,
			}).Warn("malformed commitment, expiring bid")
			if err := im.bidRepo.Expire(c, b.Id); err != nil && !errors.Is(err, domain.ErrStatusConflict) {
				return err
			}
			continue
		}
		if !b.Covers(amount) {
			c.WithFields(log.Fields{
				"bidId":  b.Id,
				"amount": amount,
				"locked": b.LockAmount,
			}).Warn("revealed amount exceeds locked funds, expiring bid")
			if err := im.bidRepo.Expire(c, b.Id); err != nil && !errors.Is(err, domain.ErrStatusConflict) {
				return err
			}
			continue
		}
		effective := im.incentive.ApplyMultiplier(amount, im.incentive.MultiplierFor(b.IsHolder))
		if err := im.bidRepo.Reveal(c, b.Id, bid.RevealPatch{Amount: amount, EffectiveBid: effective}); err != nil && !errors.Is(err, domain.ErrStatusConflict) {
			c.WithFields(log.Fields{
				"err":   err,
				"bidId": b.Id,
			}).Error("bidRepo.Reveal failed")
			return err
		}
	}
	return nil
}

func revealedAmount(b *bid.Bid) (decimal.Decimal, error) {
	if b.Amount != nil {
		if !b.Amount.IsPositive() {
			return decimal.Zero, domain.ErrInvalidAmount
		}
		return *b.Amount, nil
	}
	return bid.Open(b)
}

// less orders by effective bid, membership, raw amount, then submission time
func less(a, b *bid.Bid) bool {
	if c := a.Effective().Cmp(b.Effective()); c != 0 {
		return c > 0
	}
	if a.IsHolder != b.IsHolder {
		return a.IsHolder
	}
	if c := a.RawAmount().Cmp(b.RawAmount()); c != 0 {
		return c > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Id < b.Id
}

func rank(bids []bid.Bid) []bid.Bid {
	sorted := make([]bid.Bid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

// aboveReserve compares the raw amount, not the effective one
func aboveReserve(ranked []bid.Bid, reserve decimal.Decimal) []bid.Bid {
	res := make([]bid.Bid, 0, len(ranked))
	for _, b := range ranked {
		if b.RawAmount().GreaterThanOrEqual(reserve) {
			res = append(res, b)
		}
	}
	return res
}

// tied returns the leading bids that no ranking key separates except submission time.
// Bids sharing only the effective value are already ordered by membership and raw amount,
// so the tie breaker never sees them.
func tied(ranked []bid.Bid) []bid.Bid {
	top := ranked[0]
	n := 1
	for ; n < len(ranked); n++ {
		b := ranked[n]
		if !b.Effective().Equal(top.Effective()) || b.IsHolder != top.IsHolder || !b.RawAmount().Equal(top.RawAmount()) {
			break
		}
	}
	return ranked[:n]
}

// pick returns the winner among ranked eligible bids and whether the tie breaker decided it
func (im *impl) pick(c ctx.Ctx, leadId string, ranked []bid.Bid) (bid.Bid, bool) {
	group := tied(ranked)
	if len(group) < 2 {
		return ranked[0], false
	}

	candidates := make([]tiebreak.Candidate, 0, len(group))
	for _, b := range group {
		candidates = append(candidates, tiebreak.Candidate{
			BidId:     b.Id,
			BuyerId:   b.BuyerId,
			Identity:  b.Identity,
			CreatedAt: b.CreatedAt,
		})
	}
	winner, err := im.tieBreaker.Resolve(c, leadId, candidates)
	if err != nil {
		c.WithField("err", err).Warn("tieBreaker.Resolve failed, taking earliest bid")
		return ranked[0], true
	}
	for _, b := range group {
		if b.Id == winner.BidId {
			return b, true
		}
	}
	c.WithField("bidId", winner.BidId).Warn("tie breaker returned unknown bid, taking earliest bid")
	return ranked[0], true
}
