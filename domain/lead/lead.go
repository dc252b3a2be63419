package lead

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

type Status string

const (
	StatusInAuction Status = "IN_AUCTION"
	StatusSold      Status = "SOLD"
	StatusUnsold    Status = "UNSOLD"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsTerminal() bool {
	switch s {
	case StatusSold, StatusUnsold, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

type Lead struct {
	Id              string           `json:"id" bson:"id"`
	Category        string           `json:"category" bson:"category"`
	Region          *string          `json:"region,omitempty" bson:"region"`
	QualityScore    *int             `json:"qualityScore,omitempty" bson:"qualityScore"`
	ReservePrice    decimal.Decimal  `json:"reservePrice" bson:"reservePrice"`
	Status          Status           `json:"status" bson:"status"`
	AuctionStartAt  time.Time        `json:"auctionStartAt" bson:"auctionStartAt"`
	AuctionEndAt    *time.Time       `json:"auctionEndAt,omitempty" bson:"auctionEndAt"`
	WinningBid      *decimal.Decimal `json:"winningBid,omitempty" bson:"winningBid"`
	WinnerBuyerId   *string          `json:"winnerBuyerId,omitempty" bson:"winnerBuyerId"`
	SoldAt          *time.Time       `json:"soldAt,omitempty" bson:"soldAt"`
	OwnerId         string           `json:"ownerId" bson:"ownerId"`
	OwnerIdentity   domain.Address   `json:"ownerIdentity" bson:"ownerIdentity"`
	BuyNowPrice     *decimal.Decimal `json:"buyNowPrice,omitempty" bson:"buyNowPrice"`
	BuyNowExpiresAt *time.Time       `json:"buyNowExpiresAt,omitempty" bson:"buyNowExpiresAt"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// HasEnded reports whether the bidding deadline has passed at now
func (l *Lead) HasEnded(now time.Time) bool {
	return l.AuctionEndAt != nil && !now.Before(*l.AuctionEndAt)
}

// AcceptsBids reports whether a bid placed at now may be admitted
func (l *Lead) AcceptsBids(now time.Time) bool {
	return l.Status == StatusInAuction && !now.Before(l.AuctionStartAt) && !l.HasEnded(now)
}

// BuyNowPrice returns the fallback listing price, nil when there is no reserve.
func BuyNowPrice(reserve decimal.Decimal, markup decimal.Decimal) *decimal.Decimal {
	if !reserve.IsPositive() {
		return nil
	}
	p := domain.Round2(reserve.Mul(markup))
	return &p
}

type FindAllOptions struct {
	Statuses    []Status   `bson:"-"`
	EndedBefore *time.Time `bson:"-"`
	Ids         []string   `bson:"-"`
	Offset      *int       `bson:"-"`
	Limit       *int       `bson:"-"`
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

func WithStatus(statuses ...Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Statuses = statuses
		return nil
	}
}

// WithAuctionEndBefore selects leads whose auction end is at or before t
func WithAuctionEndBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndedBefore = &t
		return nil
	}
}

func WithIds(ids ...string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Ids = ids
		return nil
	}
}

func WithPagination(offset int, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type SoldPatch struct {
	WinningBid    decimal.Decimal
	WinnerBuyerId string
	SoldAt        time.Time
}

type UnsoldPatch struct {
	BuyNowPrice     *decimal.Decimal
	BuyNowExpiresAt time.Time
}

type Repo interface {
	FindOne(c ctx.Ctx, id string) (*Lead, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Lead, error)
	// MarkSold moves an IN_AUCTION lead to SOLD. domain.ErrStatusConflict when it is no longer IN_AUCTION.
	MarkSold(c ctx.Ctx, id string, patch SoldPatch) error
	// MarkUnsold moves an IN_AUCTION lead to UNSOLD. domain.ErrStatusConflict when it is no longer IN_AUCTION.
	MarkUnsold(c ctx.Ctx, id string, patch UnsoldPatch) error
}

type Phase string

const (
	PhaseBidding   Phase = "BIDDING"
	PhaseResolved  Phase = "RESOLVED"
	PhaseCancelled Phase = "CANCELLED"
)

// AuctionWindow is the per-lead bidding metadata. HighestBid is advisory only.
type AuctionWindow struct {
	LeadId          string          `json:"leadId" bson:"leadId"`
	BiddingDeadline *time.Time      `json:"biddingDeadline,omitempty" bson:"biddingDeadline"`
	Phase           Phase           `json:"phase" bson:"phase"`
	BidCount        int             `json:"bidCount" bson:"bidCount"`
	HighestBid      decimal.Decimal `json:"highestBid" bson:"highestBid"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type WindowRepo interface {
	FindOne(c ctx.Ctx, leadId string) (*AuctionWindow, error)
	// FindStuck returns BIDDING windows whose deadline is null or before staleBefore
	FindStuck(c ctx.Ctx, staleBefore time.Time) ([]AuctionWindow, error)
	// Close moves a BIDDING window to phase. domain.ErrStatusConflict when it is not BIDDING.
	Close(c ctx.Ctx, leadId string, phase Phase) error
	RecordBid(c ctx.Ctx, leadId string, amount decimal.Decimal) error
}
