package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain/lead"
)

// Outcome describes what one ResolveOne call did
type Outcome struct {
	LeadId        string           `json:"leadId"`
	NoOp          bool             `json:"noOp"`
	Sold          bool             `json:"sold"`
	WinnerBidId   string           `json:"winnerBidId,omitempty"`
	WinnerBuyerId string           `json:"winnerBuyerId,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	SettlementId  string           `json:"settlementId,omitempty"`
	BuyNowPrice   *decimal.Decimal `json:"buyNowPrice,omitempty"`
	TieBroken     bool             `json:"tieBroken"`
}

type SweepResult struct {
	Candidates int `json:"candidates"`
	Sold       int `json:"sold"`
	Unsold     int `json:"unsold"`
	NoOp       int `json:"noOp"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type Resolver interface {
	// Sweep resolves every expired or stuck auction. A failing lead is logged and counted, never fatal.
	Sweep(c ctx.Ctx) (SweepResult, error)
	// ResolveOne closes one auction exactly once. A lead no longer IN_AUCTION yields a NoOp outcome.
	ResolveOne(c ctx.Ctx, leadId string) (*Outcome, error)
	// RetryPending re-attempts settlements and refunds left behind by failed post-commit steps
	RetryPending(c ctx.Ctx) error
	// CheckAndResolve resolves the lead first when its deadline has passed, then returns it
	CheckAndResolve(c ctx.Ctx, leadId string) (*lead.Lead, error)
}

type EventType string

const (
	EventAuctionResolved   EventType = "auction.resolved"
	EventLeadStatusChanged EventType = "lead.statusChanged"
	EventLeadUnsold        EventType = "lead.unsold"
	EventBountyReleased    EventType = "bounty.released"
)

type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

type AuctionResolvedPayload struct {
	LeadId   string          `json:"leadId"`
	WinnerId string          `json:"winnerId"`
	Amount   decimal.Decimal `json:"amount"`
}

type LeadStatusChangedPayload struct {
	LeadId    string      `json:"leadId"`
	OldStatus lead.Status `json:"oldStatus"`
	NewStatus lead.Status `json:"newStatus"`
}

type LeadUnsoldPayload struct {
	LeadId      string           `json:"leadId"`
	BuyNowPrice *decimal.Decimal `json:"buyNowPrice"`
	ExpiresAt   time.Time        `json:"expiresAt"`
}

type BountyReleasedPayload struct {
	LeadId string          `json:"leadId"`
	PoolId string          `json:"poolId"`
	Amount decimal.Decimal `json:"amount"`
}

// Broadcaster delivers events to real-time observers. Delivery is fire-and-forget.
type Broadcaster interface {
	Publish(c ctx.Ctx, e Event)
}
