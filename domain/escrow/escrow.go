package escrow

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

var (
	// DefaultProtocolFee is the flat fee added to every balance check and withheld on settle
	DefaultProtocolFee = decimal.RequireFromString("0.50")
)

type LockStatus string

const (
	LockStatusLocked   LockStatus = "LOCKED"
	LockStatusSettled  LockStatus = "SETTLED"
	LockStatusRefunded LockStatus = "REFUNDED"
)

// Lock is a reservation of a buyer's funds on the ledger. It is closed exactly once.
type Lock struct {
	Id        string          `json:"id" bson:"id"`
	LeadId    string          `json:"leadId" bson:"leadId"`
	BuyerId   string          `json:"buyerId" bson:"buyerId"`
	Identity  domain.Address  `json:"identity" bson:"identity"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
	HoldRef   string          `json:"holdRef" bson:"holdRef"`
	Status    LockStatus      `json:"status" bson:"status"`
	TxRef     *string         `json:"txRef,omitempty" bson:"txRef"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	Insert(c ctx.Ctx, l *Lock) error
	FindOne(c ctx.Ctx, id string) (*Lock, error)
	// FindOpen returns LOCKED locks of buyerId on leadId
	FindOpen(c ctx.Ctx, leadId, buyerId string) ([]Lock, error)
	// Close moves a LOCKED lock to status. domain.ErrStatusConflict when it is not LOCKED.
	Close(c ctx.Ctx, id string, status LockStatus, txRef string) error
}

type Vault interface {
	// CheckBalance reports whether identity can cover amount plus the protocol fee
	CheckBalance(c ctx.Ctx, identity domain.Address, amount decimal.Decimal) (ok bool, available decimal.Decimal, err error)
	// Lock reserves amount for (leadId, buyerId), refunding any earlier lock of the pair first
	Lock(c ctx.Ctx, identity domain.Address, amount decimal.Decimal, leadId, buyerId string) (lockId string, err error)
	// Settle pays amount minus the protocol fee to payee and hands the rest of the lock back to the buyer.
	// domain.ErrInvalidAmount when amount exceeds the lock. Repeated calls return the first txRef.
	Settle(c ctx.Ctx, lockId string, payee domain.Address, amount decimal.Decimal, buyerId, leadId string) (txRef string, err error)
	// Refund releases the lock back to the buyer. Repeated calls return the first txRef.
	Refund(c ctx.Ctx, lockId string, buyerId, leadId string) (txRef string, err error)
}

// IdempotencyKey names one ledger operation on one lock
func IdempotencyKey(lockId string, op string) string {
	return lockId + ":" + op
}
