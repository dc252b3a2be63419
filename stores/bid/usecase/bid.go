package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/escrow"
	"github.com/x-xyz/leadauction/domain/incentive"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/service/compliance"
)

var (
	timeNow = time.Now
	newId   = func() string { return uuid.New().String() }
)

type BidUseCaseCfg struct {
	LeadRepo   lead.Repo
	WindowRepo lead.WindowRepo
	BidRepo    bid.Repo
	Incentive  incentive.Usecase
	Vault      escrow.Vault
	Compliance compliance.Client
}

type impl struct {
	leadRepo   lead.Repo
	windowRepo lead.WindowRepo
	bidRepo    bid.Repo
	incentive  incentive.Usecase
	vault      escrow.Vault
	compliance compliance.Client
	met        metrics.Service
}

func New(cfg *BidUseCaseCfg) bid.Usecase {
	return &impl{
		leadRepo:   cfg.LeadRepo,
		windowRepo: cfg.WindowRepo,
		bidRepo:    cfg.BidRepo,
		incentive:  cfg.Incentive,
		vault:      cfg.Vault,
		compliance: cfg.Compliance,
		met:        metrics.New("bid"),
	}
}

// stake returns the amount to lock and checks the plain/sealed shape of the input
func stake(in *bid.PlaceBidInput) (decimal.Decimal, error) {
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return decimal.Zero, domain.ErrInvalidAmount
		}
		if in.Commitment != nil {
			return decimal.Zero, domain.ErrBadParamInput
		}
		return *in.Amount, nil
	}
	if in.Commitment == nil || *in.Commitment == "" {
		return decimal.Zero, domain.ErrBadParamInput
	}
	if in.LockAmount == nil || !in.LockAmount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return *in.LockAmount, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, in bid.PlaceBidInput) (*bid.Bid, error) {
	c = ctx.WithValues(c, map[string]interface{}{"leadId": in.LeadId, "buyerId": in.BuyerId})

	if in.Source == "" {
		in.Source = bid.SourceManual
	}
	if !in.Source.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	if !in.Identity.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	lockAmount, err := stake(&in)
	if err != nil {
		return nil, err
	}

	l, err := im.leadRepo.FindOne(c, in.LeadId)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	if l.Status != lead.StatusInAuction || l.HasEnded(now) {
		return nil, domain.ErrAuctionClosed
	}

	allowed, reason, err := im.compliance.CanTransact(c, in.Identity, l.Category, l.Region)
	if err != nil {
		c.WithField("err", err).Error("compliance.CanTransact failed")
		return nil, err
	}
	if !allowed {
		c.WithField("reason", reason).Info("bid rejected by compliance")
		return nil, domain.ErrNotCompliant
	}

	if ok, err := im.incentive.CheckActivity(c, in.Identity); err != nil {
		c.WithField("err", err).Warn("activity check unavailable, admitting bid")
	} else if !ok {
		return nil, domain.ErrRateLimited
	}

	adj, err := im.incentive.Adjust(c, l.Category, in.BuyerId)
	if err != nil {
		c.WithField("err", err).Warn("membership unavailable, bidding as non-member")
		adj = incentive.Adjustment{Multiplier: im.incentive.MultiplierFor(false)}
	}
	early := time.Duration(adj.EarlyWindowSeconds) * time.Second
	if now.Before(l.AuctionStartAt.Add(-early)) {
		return nil, domain.ErrAuctionClosed
	}

	ok, available, err := im.vault.CheckBalance(c, in.Identity, lockAmount)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.WithField("available", available).Info("insufficient funds")
		return nil, domain.ErrInsufficientFunds
	}

	id := newId()
	createdAt := now
	if existing, err := im.bidRepo.FindOne(c, in.LeadId, in.BuyerId); err == nil {
		if existing.Status != bid.StatusPending {
			return nil, domain.ErrAuctionClosed
		}
		id = existing.Id
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	lockId, err := im.vault.Lock(c, in.Identity, lockAmount, in.LeadId, in.BuyerId)
	if err != nil {
		return nil, err
	}

	b := &bid.Bid{
		Id:             id,
		LeadId:         in.LeadId,
		BuyerId:        in.BuyerId,
		Identity:       in.Identity.ToLower(),
		Commitment:     in.Commitment,
		CommitmentHash: in.CommitmentHash,
		IsHolder:       adj.IsMember,
		Source:         in.Source,
		Status:         bid.StatusPending,
		LockRef:        &lockId,
		LockAmount:     &lockAmount,
		CreatedAt:      createdAt,
		UpdatedAt:      now,
	}
	advisory := decimal.Zero
	if in.Amount != nil {
		amount := *in.Amount
		effective := im.incentive.ApplyMultiplier(amount, adj.Multiplier)
		b.Amount = &amount
		b.EffectiveBid = &effective
		advisory = effective
	}

	if err := im.bidRepo.Upsert(c, b); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"lockId": lockId,
		}).Error("bidRepo.Upsert failed, refunding lock")
		if _, rerr := im.vault.Refund(c, lockId, in.BuyerId, in.LeadId); rerr != nil {
			c.WithField("err", rerr).Error("vault.Refund failed")
		}
		return nil, err
	}

	if err := im.windowRepo.RecordBid(c, in.LeadId, advisory); err != nil {
		c.WithField("err", err).Warn("windowRepo.RecordBid failed")
	}
	im.met.BumpSum("placed", 1, "source", string(in.Source))
	return b, nil
}
