package bid

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusRevealed Status = "REVEALED"
	StatusAccepted Status = "ACCEPTED"
	StatusOutbid   Status = "OUTBID"
	StatusExpired  Status = "EXPIRED"
)

// Source tags who placed the bid. Server-initiated sources carry a convenience fee.
type Source string

const (
	SourceManual  Source = "MANUAL"
	SourceAutoBid Source = "AUTO_BID"
	SourceAgent   Source = "AGENT"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceAutoBid, SourceAgent:
		return true
	}
	return false
}

type Bid struct {
	Id             string           `json:"id" bson:"id"`
	LeadId         string           `json:"leadId" bson:"leadId"`
	BuyerId        string           `json:"buyerId" bson:"buyerId"`
	Identity       domain.Address   `json:"identity" bson:"identity"`
	Commitment     *string          `json:"-" bson:"commitment"`
	CommitmentHash *string          `json:"commitmentHash,omitempty" bson:"commitmentHash"`
	Amount         *decimal.Decimal `json:"amount,omitempty" bson:"amount"`
	EffectiveBid   *decimal.Decimal `json:"effectiveBid,omitempty" bson:"effectiveBid"`
	IsHolder       bool             `json:"isHolder" bson:"isHolder"`
	Source         Source           `json:"source" bson:"source"`
	Status         Status           `json:"status" bson:"status"`
	LockRef        *string          `json:"lockRef,omitempty" bson:"lockRef"`
	LockAmount     *decimal.Decimal `json:"lockAmount,omitempty" bson:"lockAmount"`
	Refunded       bool             `json:"refunded" bson:"refunded"`
	CreatedAt      time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// RawAmount is the revealed amount, zero until revealed
func (b *Bid) RawAmount() decimal.Decimal {
	if b.Amount == nil {
		return decimal.Zero
	}
	return *b.Amount
}

// Effective is the ranking value, falling back to the raw amount
func (b *Bid) Effective() decimal.Decimal {
	if b.EffectiveBid == nil {
		return b.RawAmount()
	}
	return *b.EffectiveBid
}

// Covers reports whether the locked funds cover amount. Bids without a recorded lock amount are trusted.
func (b *Bid) Covers(amount decimal.Decimal) bool {
	return b.LockAmount == nil || b.LockAmount.GreaterThanOrEqual(amount)
}

// HasOpenLock reports whether the bid still holds funds that need a refund
func (b *Bid) HasOpenLock() bool {
	return b.LockRef != nil && *b.LockRef != "" && !b.Refunded
}

type FindAllOptions struct {
	LeadId   *string  `bson:"-"`
	Statuses []Status `bson:"-"`
	LockHeld *bool    `bson:"-"`
	Refunded *bool    `bson:"-"`
	Limit    *int     `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithLeadId(leadId string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.LeadId = &leadId
		return nil
	}
}

func WithStatus(statuses ...Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Statuses = statuses
		return nil
	}
}

func WithLockHeld(held bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.LockHeld = &held
		return nil
	}
}

func WithRefunded(refunded bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Refunded = &refunded
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

type RevealPatch struct {
	Amount       decimal.Decimal
	EffectiveBid decimal.Decimal
}

// Repo persists bids. Every status transition is guarded by the expected current status
// and reports domain.ErrStatusConflict when the guard matches nothing.
type Repo interface {
	FindOne(c ctx.Ctx, leadId, buyerId string) (*Bid, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Bid, error)
	// Upsert writes the bid keyed by (leadId, buyerId). A re-bid replaces the previous stake while it is PENDING,
	// domain.ErrAuctionClosed once the bid left PENDING.
	Upsert(c ctx.Ctx, b *Bid) error
	// Reveal moves a PENDING bid to REVEALED
	Reveal(c ctx.Ctx, id string, patch RevealPatch) error
	// Expire moves a PENDING bid to EXPIRED
	Expire(c ctx.Ctx, id string) error
	// Accept moves a REVEALED bid to ACCEPTED
	Accept(c ctx.Ctx, id string) error
	// MarkOutbid moves every other REVEALED bid of the lead to OUTBID
	MarkOutbid(c ctx.Ctx, leadId string, winnerId string) (int64, error)
	// ExpireOpen moves bids of the lead in any of from to EXPIRED
	ExpireOpen(c ctx.Ctx, leadId string, from ...Status) (int64, error)
	// MarkRefunded flips refunded once. domain.ErrConflict when already refunded.
	MarkRefunded(c ctx.Ctx, id string) error
	CountByStatus(c ctx.Ctx, leadId string, status Status) (int, error)
}

type PlaceBidInput struct {
	LeadId   string           `json:"-" validate:"required"`
	BuyerId  string           `json:"-" validate:"required"`
	Identity domain.Address   `json:"identity" validate:"required"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	// sealed bids carry a commitment and the amount of funds to lock
	Commitment     *string          `json:"commitment,omitempty"`
	CommitmentHash *string          `json:"commitmentHash,omitempty"`
	LockAmount     *decimal.Decimal `json:"lockAmount,omitempty"`
	Source         Source           `json:"source"`
}

type Usecase interface {
	PlaceBid(c ctx.Ctx, in PlaceBidInput) (*Bid, error)
}
