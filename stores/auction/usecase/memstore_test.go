package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/domain/settlement"
)

type txKey struct{}

// memStore keeps leads, windows, bids and settlements in memory with the same
// status-guarded updates as the mongo repositories. Transactions are serialized
// and roll back on error; operations outside a transaction wait for it.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	leads       map[string]lead.Lead
	windows     map[string]lead.AuctionWindow
	bids        map[string]bid.Bid
	settlements map[string]settlement.Record
}

func newMemStore() *memStore {
	return &memStore{
		leads:       map[string]lead.Lead{},
		windows:     map[string]lead.AuctionWindow{},
		bids:        map[string]bid.Bid{},
		settlements: map[string]settlement.Record{},
	}
}

func (s *memStore) lock(c ctx.Ctx) func() {
	if c.Value(txKey{}) == nil {
		s.txMu.Lock()
		s.mu.Lock()
		return func() {
			s.mu.Unlock()
			s.txMu.Unlock()
		}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	tc := ctx.Ctx{Context: context.WithValue(c, txKey{}, true), Logger: c.Logger}
	if err := run(tc); err != nil {
		s.mu.Lock()
		s.leads, s.windows, s.bids, s.settlements = snap.leads, snap.windows, snap.bids, snap.settlements
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for k, v := range s.leads {
		snap.leads[k] = v
	}
	for k, v := range s.windows {
		snap.windows[k] = v
	}
	for k, v := range s.bids {
		snap.bids[k] = v
	}
	for k, v := range s.settlements {
		snap.settlements[k] = v
	}
	return snap
}

type memLeads struct{ *memStore }

func (s memLeads) FindOne(c ctx.Ctx, id string) (*lead.Lead, error) {
	defer s.lock(c)()
	l, ok := s.leads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (s memLeads) FindAll(c ctx.Ctx, optFns ...lead.FindAllOptionsFunc) ([]lead.Lead, error) {
	opts, err := lead.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	defer s.lock(c)()
	res := []lead.Lead{}
	for _, l := range s.leads {
		if len(opts.Statuses) > 0 && !hasLeadStatus(opts.Statuses, l.Status) {
			continue
		}
		if opts.EndedBefore != nil && (l.AuctionEndAt == nil || l.AuctionEndAt.After(*opts.EndedBefore)) {
			continue
		}
		if len(opts.Ids) > 0 && !hasId(opts.Ids, l.Id) {
			continue
		}
		res = append(res, l)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	return res, nil
}

func (s memLeads) transition(c ctx.Ctx, id string, fn func(l *lead.Lead)) error {
	defer s.lock(c)()
	l, ok := s.leads[id]
	if !ok || l.Status != lead.StatusInAuction {
		return domain.ErrStatusConflict
	}
	fn(&l)
	s.leads[id] = l
	return nil
}

func (s memLeads) MarkSold(c ctx.Ctx, id string, patch lead.SoldPatch) error {
	return s.transition(c, id, func(l *lead.Lead) {
		l.Status = lead.StatusSold
		l.WinningBid = &patch.WinningBid
		l.WinnerBuyerId = &patch.WinnerBuyerId
		l.SoldAt = &patch.SoldAt
	})
}

func (s memLeads) MarkUnsold(c ctx.Ctx, id string, patch lead.UnsoldPatch) error {
	return s.transition(c, id, func(l *lead.Lead) {
		l.Status = lead.StatusUnsold
		l.BuyNowPrice = patch.BuyNowPrice
		l.BuyNowExpiresAt = &patch.BuyNowExpiresAt
	})
}

type memWindows struct{ *memStore }

func (s memWindows) FindOne(c ctx.Ctx, leadId string) (*lead.AuctionWindow, error) {
	defer s.lock(c)()
	w, ok := s.windows[leadId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &w, nil
}

func (s memWindows) FindStuck(c ctx.Ctx, staleBefore time.Time) ([]lead.AuctionWindow, error) {
	defer s.lock(c)()
	res := []lead.AuctionWindow{}
	for _, w := range s.windows {
		if w.Phase == lead.PhaseBidding && (w.BiddingDeadline == nil || w.BiddingDeadline.Before(staleBefore)) {
			res = append(res, w)
		}
	}
	return res, nil
}

func (s memWindows) Close(c ctx.Ctx, leadId string, phase lead.Phase) error {
	defer s.lock(c)()
	w, ok := s.windows[leadId]
	if !ok || w.Phase != lead.PhaseBidding {
		return domain.ErrStatusConflict
	}
	w.Phase = phase
	s.windows[leadId] = w
	return nil
}

func (s memWindows) RecordBid(c ctx.Ctx, leadId string, amount decimal.Decimal) error {
	defer s.lock(c)()
	w, ok := s.windows[leadId]
	if !ok {
		return domain.ErrNotFound
	}
	w.BidCount++
	if amount.GreaterThan(w.HighestBid) {
		w.HighestBid = amount
	}
	s.windows[leadId] = w
	return nil
}

type memBids struct{ *memStore }

func (s memBids) FindOne(c ctx.Ctx, leadId, buyerId string) (*bid.Bid, error) {
	defer s.lock(c)()
	for _, b := range s.bids {
		if b.LeadId == leadId && b.BuyerId == buyerId {
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memBids) FindAll(c ctx.Ctx, optFns ...bid.FindAllOptionsFunc) ([]bid.Bid, error) {
	opts, err := bid.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	defer s.lock(c)()
	res := []bid.Bid{}
	for _, b := range s.bids {
		if opts.LeadId != nil && b.LeadId != *opts.LeadId {
			continue
		}
		if len(opts.Statuses) > 0 && !hasBidStatus(opts.Statuses, b.Status) {
			continue
		}
		if opts.LockHeld != nil && (b.LockRef != nil && *b.LockRef != "") != *opts.LockHeld {
			continue
		}
		if opts.Refunded != nil && b.Refunded != *opts.Refunded {
			continue
		}
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].Id < res[j].Id
	})
	if opts.Limit != nil && len(res) > *opts.Limit {
		res = res[:*opts.Limit]
	}
	return res, nil
}

func (s memBids) Upsert(c ctx.Ctx, b *bid.Bid) error {
	defer s.lock(c)()
	for id, existing := range s.bids {
		if existing.LeadId == b.LeadId && existing.BuyerId == b.BuyerId {
			if existing.Status != bid.StatusPending {
				return domain.ErrAuctionClosed
			}
			delete(s.bids, id)
		}
	}
	s.bids[b.Id] = *b
	return nil
}

func (s memBids) transition(c ctx.Ctx, id string, from bid.Status, fn func(b *bid.Bid)) error {
	defer s.lock(c)()
	b, ok := s.bids[id]
	if !ok || b.Status != from {
		return domain.ErrStatusConflict
	}
	fn(&b)
	s.bids[id] = b
	return nil
}

func (s memBids) Reveal(c ctx.Ctx, id string, patch bid.RevealPatch) error {
	return s.transition(c, id, bid.StatusPending, func(b *bid.Bid) {
		b.Status = bid.StatusRevealed
		b.Amount = &patch.Amount
		b.EffectiveBid = &patch.EffectiveBid
	})
}

func (s memBids) Expire(c ctx.Ctx, id string) error {
	return s.transition(c, id, bid.StatusPending, func(b *bid.Bid) { b.Status = bid.StatusExpired })
}

func (s memBids) Accept(c ctx.Ctx, id string) error {
	return s.transition(c, id, bid.StatusRevealed, func(b *bid.Bid) { b.Status = bid.StatusAccepted })
}

func (s memBids) updateMany(c ctx.Ctx, match func(b bid.Bid) bool, status bid.Status) int64 {
	defer s.lock(c)()
	n := int64(0)
	for id, b := range s.bids {
		if match(b) {
			b.Status = status
			s.bids[id] = b
			n++
		}
	}
	return n
}

func (s memBids) MarkOutbid(c ctx.Ctx, leadId string, winnerId string) (int64, error) {
	return s.updateMany(c, func(b bid.Bid) bool {
		return b.LeadId == leadId && b.Status == bid.StatusRevealed && b.Id != winnerId
	}, bid.StatusOutbid), nil
}

func (s memBids) ExpireOpen(c ctx.Ctx, leadId string, from ...bid.Status) (int64, error) {
	return s.updateMany(c, func(b bid.Bid) bool {
		return b.LeadId == leadId && hasBidStatus(from, b.Status)
	}, bid.StatusExpired), nil
}

func (s memBids) MarkRefunded(c ctx.Ctx, id string) error {
	defer s.lock(c)()
	b, ok := s.bids[id]
	if !ok || b.Refunded {
		return domain.ErrConflict
	}
	b.Refunded = true
	s.bids[id] = b
	return nil
}

func (s memBids) CountByStatus(c ctx.Ctx, leadId string, status bid.Status) (int, error) {
	defer s.lock(c)()
	n := 0
	for _, b := range s.bids {
		if b.LeadId == leadId && b.Status == status {
			n++
		}
	}
	return n, nil
}

type memSettlements struct{ *memStore }

func (s memSettlements) Create(c ctx.Ctx, r *settlement.Record) error {
	defer s.lock(c)()
	for _, existing := range s.settlements {
		if existing.LeadId == r.LeadId {
			return domain.ErrConflict
		}
	}
	s.settlements[r.Id] = *r
	return nil
}

func (s memSettlements) FindByLead(c ctx.Ctx, leadId string) (*settlement.Record, error) {
	defer s.lock(c)()
	for _, r := range s.settlements {
		if r.LeadId == leadId {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memSettlements) FindPending(c ctx.Ctx, limit int) ([]settlement.Record, error) {
	defer s.lock(c)()
	res := []settlement.Record{}
	for _, r := range s.settlements {
		if r.ReleaseStatus == settlement.ReleaseStatusPending && r.LockRef != nil && *r.LockRef != "" {
			res = append(res, r)
		}
	}
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s memSettlements) MarkReleased(c ctx.Ctx, id string, txRef string, at time.Time) error {
	defer s.lock(c)()
	r, ok := s.settlements[id]
	if !ok || r.ReleaseStatus != settlement.ReleaseStatusPending {
		return domain.ErrStatusConflict
	}
	r.ReleaseStatus = settlement.ReleaseStatusReleased
	r.TxRef = &txRef
	r.ReleasedAt = &at
	s.settlements[id] = r
	return nil
}

func (s memSettlements) MarkFailed(c ctx.Ctx, id string, reason string) error {
	defer s.lock(c)()
	r, ok := s.settlements[id]
	if !ok || r.ReleaseStatus != settlement.ReleaseStatusPending {
		return domain.ErrStatusConflict
	}
	r.ReleaseStatus = settlement.ReleaseStatusFailed
	r.FailReason = &reason
	s.settlements[id] = r
	return nil
}

func hasLeadStatus(list []lead.Status, v lead.Status) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func hasBidStatus(list []bid.Status, v bid.Status) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func hasId(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
