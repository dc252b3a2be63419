package certificate

import (
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain/settlement"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusMinted  Status = "MINTED"
	StatusFailed  Status = "FAILED"
)

// MintRequest is the bookkeeping row a minting worker picks up after a sale settles
type MintRequest struct {
	LeadId       string    `json:"leadId" bson:"leadId"`
	SettlementId string    `json:"settlementId" bson:"settlementId"`
	BuyerId      string    `json:"buyerId" bson:"buyerId"`
	Status       Status    `json:"status" bson:"status"`
	Attempts     int       `json:"attempts" bson:"attempts"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	// Create inserts a PENDING request. domain.ErrConflict when the lead already has one.
	Create(c ctx.Ctx, r *MintRequest) error
	FindOne(c ctx.Ctx, leadId string) (*MintRequest, error)
}

type Usecase interface {
	// RequestMint records a mint request for the settled sale. Repeated calls are no-ops.
	RequestMint(c ctx.Ctx, s *settlement.Record) error
}
