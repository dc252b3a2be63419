package incentive

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

var (
	// One is the multiplier every non-member gets
	One = decimal.NewFromInt(1)
	// DefaultMemberMultiplier applies uniformly to members
	DefaultMemberMultiplier = decimal.RequireFromString("1.2")
)

type Adjustment struct {
	IsMember           bool            `json:"isMember"`
	Multiplier         decimal.Decimal `json:"multiplier"`
	EarlyWindowSeconds int             `json:"earlyWindowSeconds"`
}

// ApplyMultiplier returns round2(amount × multiplier). Below one dollar the uplift can round away,
// 0.01 × 1.2 stays 0.01.
func ApplyMultiplier(amount, multiplier decimal.Decimal) decimal.Decimal {
	return domain.Round2(amount.Mul(multiplier))
}

type Usecase interface {
	Adjust(c ctx.Ctx, category, buyerId string) (Adjustment, error)
	MultiplierFor(isMember bool) decimal.Decimal
	ApplyMultiplier(amount, multiplier decimal.Decimal) decimal.Decimal
	// CheckActivity counts one bid for identity and reports whether it stays under the per-minute ceiling
	CheckActivity(c ctx.Ctx, identity domain.Address) (bool, error)
	// Invalidate drops the cached membership of buyerId in category
	Invalidate(c ctx.Ctx, category, buyerId string) error
}
