package incentive

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestApplyMultiplierNeverLowers(t *testing.T) {
	multipliers := []decimal.Decimal{One, decimal.RequireFromString("1.01"), DefaultMemberMultiplier, decimal.NewFromInt(3)}
	for i := 0; i < 1000; i++ {
		amount := decimal.New(int64(i*104729%500000), -2)
		for _, m := range multipliers {
			eff := ApplyMultiplier(amount, m)
			require.True(t, eff.GreaterThanOrEqual(amount), "%s x %s", amount, m)
			if m.Equal(One) {
				require.True(t, eff.Equal(amount))
			} else if amount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
				// sub-dollar amounts may round back to themselves
				require.True(t, eff.GreaterThan(amount), "%s x %s", amount, m)
			}
		}
	}
}

func TestApplyMultiplierSubCent(t *testing.T) {
	cent := decimal.RequireFromString("0.01")
	require.True(t, cent.Equal(ApplyMultiplier(cent, DefaultMemberMultiplier)))
	require.True(t, decimal.RequireFromString("1.20").Equal(ApplyMultiplier(decimal.NewFromInt(1), DefaultMemberMultiplier)))
}

func TestApplyMultiplier(t *testing.T) {
	require.True(t, decimal.NewFromInt(66).Equal(ApplyMultiplier(decimal.NewFromInt(55), DefaultMemberMultiplier)))
	require.True(t, decimal.RequireFromString("12.35").Equal(ApplyMultiplier(decimal.RequireFromString("10.29"), DefaultMemberMultiplier)))
}
