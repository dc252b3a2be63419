package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

type ReleaseStatus string

const (
	ReleaseStatusPending  ReleaseStatus = "PENDING"
	ReleaseStatusReleased ReleaseStatus = "RELEASED"
	// ReleaseStatusFailed parks a record whose lock can no longer pay it, it needs an operator
	ReleaseStatusFailed ReleaseStatus = "FAILED"
)

// Record is written once per won auction. Only ReleaseStatus, TxRef, ReleasedAt and FailReason change afterwards.
type Record struct {
	Id                 string           `json:"id" bson:"id"`
	LeadId             string           `json:"leadId" bson:"leadId"`
	BidId              string           `json:"bidId" bson:"bidId"`
	BuyerId            string           `json:"buyerId" bson:"buyerId"`
	SellerIdentity     domain.Address   `json:"sellerIdentity" bson:"sellerIdentity"`
	LockRef            *string          `json:"lockRef,omitempty" bson:"lockRef"`
	Amount             decimal.Decimal  `json:"amount" bson:"amount"`
	PlatformFee        decimal.Decimal  `json:"platformFee" bson:"platformFee"`
	ConvenienceFee     decimal.Decimal  `json:"convenienceFee" bson:"convenienceFee"`
	ConvenienceFeeType *string          `json:"convenienceFeeType,omitempty" bson:"convenienceFeeType"`
	TotalBuyerCharge   decimal.Decimal  `json:"totalBuyerCharge" bson:"totalBuyerCharge"`
	ReleaseStatus      ReleaseStatus    `json:"releaseStatus" bson:"releaseStatus"`
	TxRef              *string          `json:"txRef,omitempty" bson:"txRef"`
	CreatedAt          time.Time        `json:"createdAt" bson:"createdAt"`
	ReleasedAt         *time.Time       `json:"releasedAt,omitempty" bson:"releasedAt"`
	FailReason         *string          `json:"failReason,omitempty" bson:"failReason"`
}

type Repo interface {
	// Create inserts the record. domain.ErrConflict when the lead already has one.
	Create(c ctx.Ctx, r *Record) error
	FindByLead(c ctx.Ctx, leadId string) (*Record, error)
	// FindPending returns PENDING records that reference a fund lock
	FindPending(c ctx.Ctx, limit int) ([]Record, error)
	// MarkReleased moves a PENDING record to RELEASED. domain.ErrStatusConflict otherwise.
	MarkReleased(c ctx.Ctx, id string, txRef string, at time.Time) error
	// MarkFailed moves a PENDING record to FAILED. domain.ErrStatusConflict otherwise.
	MarkFailed(c ctx.Ctx, id string, reason string) error
}
