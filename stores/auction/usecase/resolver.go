package usecase

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"
	"golang.org/x/sync/singleflight"

	"github.com/x-xyz/leadauction/base/counter"
	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/auction"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/bounty"
	"github.com/x-xyz/leadauction/domain/certificate"
	"github.com/x-xyz/leadauction/domain/escrow"
	"github.com/x-xyz/leadauction/domain/fee"
	"github.com/x-xyz/leadauction/domain/incentive"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/domain/settlement"
	"github.com/x-xyz/leadauction/domain/tiebreak"
	"github.com/x-xyz/leadauction/service/alert"
)

const (
	defaultStuckAfter = 5 * time.Minute
	defaultWorkers    = 8
	defaultBuyNowTTL  = 72 * time.Hour
	defaultRetryLimit = 100
)

var (
	timeNow = time.Now
	newId   = func() string { return uuid.New().String() }

	defaultBuyNowMarkup = decimal.RequireFromString("1.5")
)

type ResolverUseCaseCfg struct {
	Transactor     domain.Transactor
	LeadRepo       lead.Repo
	WindowRepo     lead.WindowRepo
	BidRepo        bid.Repo
	SettlementRepo settlement.Repo
	Incentive      incentive.Usecase
	Vault          escrow.Vault
	TieBreaker     tiebreak.Usecase
	Bounty         bounty.Usecase
	Minter         certificate.Usecase
	Broadcaster    auction.Broadcaster
	Notifier       alert.Notifier
	StuckAfter     time.Duration
	Workers        int
	BuyNowMarkup   decimal.Decimal
	BuyNowTTL      time.Duration
	RetryLimit     int
}

type impl struct {
	tx           domain.Transactor
	leadRepo     lead.Repo
	windowRepo   lead.WindowRepo
	bidRepo      bid.Repo
	settleRepo   settlement.Repo
	incentive    incentive.Usecase
	vault        escrow.Vault
	tieBreaker   tiebreak.Usecase
	bounty       bounty.Usecase
	minter       certificate.Usecase
	broadcaster  auction.Broadcaster
	notifier     alert.Notifier
	stuckAfter   time.Duration
	workers      int
	buyNowMarkup decimal.Decimal
	buyNowTTL    time.Duration
	retryLimit   int

	// one in-flight resolution per lead inside this process
	group singleflight.Group
	met   metrics.Service
}

func New(cfg *ResolverUseCaseCfg) auction.Resolver {
	im := &impl{
		tx:           cfg.Transactor,
		leadRepo:     cfg.LeadRepo,
		windowRepo:   cfg.WindowRepo,
		bidRepo:      cfg.BidRepo,
		settleRepo:   cfg.SettlementRepo,
		incentive:    cfg.Incentive,
		vault:        cfg.Vault,
		tieBreaker:   cfg.TieBreaker,
		bounty:       cfg.Bounty,
		minter:       cfg.Minter,
		broadcaster:  cfg.Broadcaster,
		notifier:     cfg.Notifier,
		stuckAfter:   cfg.StuckAfter,
		workers:      cfg.Workers,
		buyNowMarkup: cfg.BuyNowMarkup,
		buyNowTTL:    cfg.BuyNowTTL,
		retryLimit:   cfg.RetryLimit,
		met:          metrics.New("resolver"),
	}
	if im.stuckAfter <= 0 {
		im.stuckAfter = defaultStuckAfter
	}
	if im.workers <= 0 {
		im.workers = defaultWorkers
	}
	if !im.buyNowMarkup.GreaterThan(incentive.One) {
		im.buyNowMarkup = defaultBuyNowMarkup
	}
	if im.buyNowTTL <= 0 {
		im.buyNowTTL = defaultBuyNowTTL
	}
	if im.retryLimit <= 0 {
		im.retryLimit = defaultRetryLimit
	}
	return im
}

// candidates returns the ids of expired leads followed by leads behind stuck windows, without duplicates
func (im *impl) candidates(c ctx.Ctx, now time.Time) ([]string, error) {
	expired, err := im.leadRepo.FindAll(c, lead.WithStatus(lead.StatusInAuction), lead.WithAuctionEndBefore(now))
	if err != nil {
		c.WithField("err", err).Error("leadRepo.FindAll failed")
		return nil, err
	}
	stuck, err := im.windowRepo.FindStuck(c, now.Add(-im.stuckAfter))
	if err != nil {
		c.WithField("err", err).Error("windowRepo.FindStuck failed")
		return nil, err
	}

	seen := make(map[string]bool, len(expired)+len(stuck))
	ids := make([]string, 0, len(expired)+len(stuck))
	for _, l := range expired {
		if !seen[l.Id] {
			seen[l.Id] = true
			ids = append(ids, l.Id)
		}
	}
	for _, w := range stuck {
		if !seen[w.LeadId] {
			seen[w.LeadId] = true
			ids = append(ids, w.LeadId)
		}
	}
	return ids, nil
}

func (im *impl) Sweep(c ctx.Ctx) (auction.SweepResult, error) {
	defer im.met.BumpTime("sweep.time").End()

	ids, err := im.candidates(c, timeNow())
	if err != nil {
		return auction.SweepResult{}, err
	}
	res := auction.SweepResult{Candidates: len(ids)}
	if len(ids) == 0 {
		return res, nil
	}

	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for i := 0; i < len(ids); i++ {
		leadId := ids[i]
		b.Queue(func() (interface{}, error) {
			out, err := im.ResolveOne(c, leadId)
			if err != nil && !errors.Is(err, domain.ErrAuctionOpen) {
				c.WithFields(log.Fields{
					"err":    err,
					"leadId": leadId,
				}).Error("im.ResolveOne failed")
			}
			return out, err
		})
	}
	b.QueueComplete()

	tally := counter.NewCounter()
	for ret := range b.Results() {
		switch {
		case errors.Is(ret.Error(), domain.ErrAuctionOpen):
			tally.Inc("skipped")
		case ret.Error() != nil:
			tally.Inc("failed")
		default:
			out := ret.Value().(*auction.Outcome)
			if out.NoOp {
				tally.Inc("noop")
			} else if out.Sold {
				tally.Inc("sold")
			} else {
				tally.Inc("unsold")
			}
		}
	}
	res.Sold = tally.Count("sold")
	res.Unsold = tally.Count("unsold")
	res.NoOp = tally.Count("noop")
	res.Skipped = tally.Count("skipped")
	res.Failed = tally.Count("failed")

	c.WithFields(log.Fields{
		"candidates": res.Candidates,
		"sold":       res.Sold,
		"unsold":     res.Unsold,
		"noop":       res.NoOp,
		"failed":     res.Failed,
	}).Info("sweep done")
	return res, nil
}

func (im *impl) ResolveOne(c ctx.Ctx, leadId string) (*auction.Outcome, error) {
	v, err, _ := im.group.Do(leadId, func() (interface{}, error) {
		return im.resolve(ctx.WithValue(c, "leadId", leadId), leadId)
	})
	if err != nil {
		return nil, err
	}
	return v.(*auction.Outcome), nil
}

func (im *impl) resolve(c ctx.Ctx, leadId string) (*auction.Outcome, error) {
	l, err := im.leadRepo.FindOne(c, leadId)
	if err != nil {
		c.WithField("err", err).Error("leadRepo.FindOne failed")
		return nil, err
	}
	if l.Status != lead.StatusInAuction {
		im.met.BumpSum("resolve.noop", 1)
		return &auction.Outcome{LeadId: leadId, NoOp: true}, nil
	}
	now := timeNow()
	if l.AuctionEndAt != nil && !l.HasEnded(now) {
		return nil, domain.ErrAuctionOpen
	}

	if err := im.reveal(c, leadId); err != nil {
		return nil, err
	}
	revealed, err := im.bidRepo.FindAll(c, bid.WithLeadId(leadId), bid.WithStatus(bid.StatusRevealed))
	if err != nil {
		c.WithField("err", err).Error("bidRepo.FindAll failed")
		return nil, err
	}
	eligible := aboveReserve(rank(revealed), l.ReservePrice)
	if len(eligible) == 0 {
		return im.noSale(c, l, now)
	}

	winner, tieBroken := im.pick(c, leadId, eligible)
	return im.sell(c, l, winner, tieBroken, now)
}

func (im *impl) sell(c ctx.Ctx, l *lead.Lead, winner bid.Bid, tieBroken bool, now time.Time) (*auction.Outcome, error) {
	amount := winner.RawAmount()
	fees, err := fee.Calculate(amount, winner.Source)
	if err != nil {
		c.WithField("err", err).Error("fee.Calculate failed")
		return nil, err
	}
	record := &settlement.Record{
		Id:                 newId(),
		LeadId:             l.Id,
		BidId:              winner.Id,
		BuyerId:            winner.BuyerId,
		SellerIdentity:     l.OwnerIdentity,
		LockRef:            winner.LockRef,
		Amount:             amount,
		PlatformFee:        fees.PlatformFee,
		ConvenienceFee:     fees.ConvenienceFee,
		ConvenienceFeeType: fees.ConvenienceFeeType,
		TotalBuyerCharge:   fees.TotalBuyerCharge,
		ReleaseStatus:      settlement.ReleaseStatusPending,
		CreatedAt:          now,
	}

	err = im.tx.RunWithTransaction(c, func(tc ctx.Ctx) error {
		if err := im.leadRepo.MarkSold(tc, l.Id, lead.SoldPatch{
			WinningBid:    amount,
			WinnerBuyerId: winner.BuyerId,
			SoldAt:        now,
		}); err != nil {
			return err
		}
		if err := im.bidRepo.Accept(tc, winner.Id); err != nil {
			return err
		}
		if _, err := im.bidRepo.MarkOutbid(tc, l.Id, winner.Id); err != nil {
			return err
		}
		if _, err := im.bidRepo.ExpireOpen(tc, l.Id, bid.StatusPending); err != nil {
			return err
		}
		if err := im.closeWindow(tc, l.Id, lead.PhaseResolved); err != nil {
			return err
		}
		return im.settleRepo.Create(tc, record)
	})
	if errors.Is(err, domain.ErrStatusConflict) || errors.Is(err, domain.ErrConflict) {
		c.WithField("err", err).Info("lead resolved concurrently")
		im.met.BumpSum("resolve.noop", 1)
		return &auction.Outcome{LeadId: l.Id, NoOp: true}, nil
	} else if err != nil {
		c.WithField("err", err).Error("commit failed")
		return nil, err
	}
	im.met.BumpSum("resolve.sold", 1)

	out := &auction.Outcome{
		LeadId:        l.Id,
		Sold:          true,
		WinnerBidId:   winner.Id,
		WinnerBuyerId: winner.BuyerId,
		Amount:        &amount,
		SettlementId:  record.Id,
		TieBroken:     tieBroken,
	}
	if err := im.checkIntegrity(c, l.Id); err != nil {
		return out, err
	}

	im.settle(c, record)
	im.refundLosers(c, l.Id)
	im.payBounties(c, l, amount)
	if err := im.minter.RequestMint(c, record); err != nil {
		c.WithField("err", err).Warn("minter.RequestMint failed")
	}
	im.broadcaster.Publish(c, auction.Event{
		Type:    auction.EventAuctionResolved,
		Payload: auction.AuctionResolvedPayload{LeadId: l.Id, WinnerId: winner.BuyerId, Amount: amount},
	})
	im.broadcaster.Publish(c, auction.Event{
		Type:    auction.EventLeadStatusChanged,
		Payload: auction.LeadStatusChangedPayload{LeadId: l.Id, OldStatus: lead.StatusInAuction, NewStatus: lead.StatusSold},
	})
	return out, nil
}

func (im *impl) noSale(c ctx.Ctx, l *lead.Lead, now time.Time) (*auction.Outcome, error) {
	price := lead.BuyNowPrice(l.ReservePrice, im.buyNowMarkup)
	expiresAt := now.Add(im.buyNowTTL)

	err := im.tx.RunWithTransaction(c, func(tc ctx.Ctx) error {
		if err := im.leadRepo.MarkUnsold(tc, l.Id, lead.UnsoldPatch{
			BuyNowPrice:     price,
			BuyNowExpiresAt: expiresAt,
		}); err != nil {
			return err
		}
		if err := im.closeWindow(tc, l.Id, lead.PhaseCancelled); err != nil {
			return err
		}
		_, err := im.bidRepo.ExpireOpen(tc, l.Id, bid.StatusPending, bid.StatusRevealed)
		return err
	})
	if errors.Is(err, domain.ErrStatusConflict) {
		im.met.BumpSum("resolve.noop", 1)
		return &auction.Outcome{LeadId: l.Id, NoOp: true}, nil
	} else if err != nil {
		c.WithField("err", err).Error("commit failed")
		return nil, err
	}
	im.met.BumpSum("resolve.unsold", 1)

	im.refundLosers(c, l.Id)
	im.broadcaster.Publish(c, auction.Event{
		Type:    auction.EventLeadUnsold,
		Payload: auction.LeadUnsoldPayload{LeadId: l.Id, BuyNowPrice: price, ExpiresAt: expiresAt},
	})
	im.broadcaster.Publish(c, auction.Event{
		Type:    auction.EventLeadStatusChanged,
		Payload: auction.LeadStatusChangedPayload{LeadId: l.Id, OldStatus: lead.StatusInAuction, NewStatus: lead.StatusUnsold},
	})
	return &auction.Outcome{LeadId: l.Id, BuyNowPrice: price}, nil
}

// closeWindow tolerates a window that is missing or already closed, the lead guard decides the outcome
func (im *impl) closeWindow(c ctx.Ctx, leadId string, phase lead.Phase) error {
	err := im.windowRepo.Close(c, leadId, phase)
	if errors.Is(err, domain.ErrStatusConflict) || errors.Is(err, domain.ErrNotFound) {
		c.WithField("phase", phase).Warn("auction window not in BIDDING")
		return nil
	}
	return err
}

func (im *impl) checkIntegrity(c ctx.Ctx, leadId string) error {
	accepted, err := im.bidRepo.CountByStatus(c, leadId, bid.StatusAccepted)
	if err != nil {
		c.WithField("err", err).Error("bidRepo.CountByStatus failed")
		return nil
	}
	if accepted <= 1 {
		return nil
	}
	c.WithField("accepted", accepted).Error("more than one accepted bid on lead")
	im.met.BumpSum("integrity.violation", 1)
	if err := im.notifier.Alert(c, "Integrity violation: multiple accepted bids", map[string]string{
		"leadId":   leadId,
		"accepted": strconv.Itoa(accepted),
	}); err != nil {
		c.WithField("err", err).Error("notifier.Alert failed")
	}
	return domain.ErrIntegrityViolation
}

func (im *impl) CheckAndResolve(c ctx.Ctx, leadId string) (*lead.Lead, error) {
	l, err := im.leadRepo.FindOne(c, leadId)
	if err != nil {
		return nil, err
	}
	if l.Status != lead.StatusInAuction || !l.HasEnded(timeNow()) {
		return l, nil
	}
	if _, err := im.ResolveOne(c, leadId); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"leadId": leadId,
		}).Warn("on-demand resolve failed")
		return l, nil
	}
	return im.leadRepo.FindOne(c, leadId)
}
