// Package fee computes what a won auction costs the buyer.
package fee

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bid"
)

var (
	// PlatformFeeRate is taken from the sale amount
	PlatformFeeRate = decimal.RequireFromString("0.025")
	// ConvenienceFlatFee is charged on wins placed by the server on the buyer's behalf
	ConvenienceFlatFee = decimal.RequireFromString("1.00")
)

const (
	ConvenienceFeeTypeAutoBid = "AUTOBID"
	ConvenienceFeeTypeAPI     = "API"
)

type Fees struct {
	PlatformFee        decimal.Decimal `json:"platformFee"`
	ConvenienceFee     decimal.Decimal `json:"convenienceFee"`
	ConvenienceFeeType *string         `json:"convenienceFeeType,omitempty"`
	TotalFees          decimal.Decimal `json:"totalFees"`
	TotalBuyerCharge   decimal.Decimal `json:"totalBuyerCharge"`
}

// Calculate is pure. It only fails on a negative amount.
func Calculate(amount decimal.Decimal, source bid.Source) (Fees, error) {
	if amount.IsNegative() {
		return Fees{}, domain.ErrInvalidAmount
	}

	platformFee := domain.Round2(amount.Mul(PlatformFeeRate))
	convenienceFee := decimal.Zero
	var feeType *string
	switch source {
	case bid.SourceAutoBid:
		convenienceFee = ConvenienceFlatFee
		t := ConvenienceFeeTypeAutoBid
		feeType = &t
	case bid.SourceAgent:
		convenienceFee = ConvenienceFlatFee
		t := ConvenienceFeeTypeAPI
		feeType = &t
	}

	return Fees{
		PlatformFee:        platformFee,
		ConvenienceFee:     convenienceFee,
		ConvenienceFeeType: feeType,
		TotalFees:          platformFee.Add(convenienceFee),
		TotalBuyerCharge:   amount.Add(convenienceFee),
	}, nil
}

// ParseAmount converts a float from an outer boundary, rejecting NaN, infinities and negatives.
func ParseAmount(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}
