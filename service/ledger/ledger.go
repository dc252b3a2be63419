package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

var (
	// ErrHoldClosed is returned when a hold was already captured or released by another operation
	ErrHoldClosed = errors.New("ledger: hold already closed")
)

// Client talks to the external funds ledger. Every mutating call carries an idempotency key,
// and a repeat of an already applied key returns the original txRef.
type Client interface {
	Balance(c bCtx.Ctx, identity domain.Address) (decimal.Decimal, error)
	Hold(c bCtx.Ctx, identity domain.Address, amount decimal.Decimal, key string) (holdRef string, err error)
	// Capture moves amount out of the hold to payee and releases the rest of the hold to its owner
	Capture(c bCtx.Ctx, holdRef string, payee domain.Address, amount decimal.Decimal, key string) (txRef string, err error)
	Release(c bCtx.Ctx, holdRef string, key string) (txRef string, err error)
	Transfer(c bCtx.Ctx, from, to domain.Address, amount decimal.Decimal, key string) (txRef string, err error)
}

type balanceResp struct {
	Identity  string          `json:"identity"`
	Available decimal.Decimal `json:"available"`
}

type holdReq struct {
	Identity string          `json:"identity"`
	Amount   decimal.Decimal `json:"amount"`
}

type holdResp struct {
	HoldRef string `json:"holdRef"`
}

type captureReq struct {
	Payee  string          `json:"payee"`
	Amount decimal.Decimal `json:"amount"`
}

type transferReq struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type txResp struct {
	TxRef string `json:"txRef"`
	// Status is set on 409 replies: APPLIED means the key was already applied
	Status string `json:"status,omitempty"`
}
