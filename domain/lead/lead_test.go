package lead

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuyNowPrice(t *testing.T) {
	markup := decimal.RequireFromString("1.5")

	p := BuyNowPrice(decimal.NewFromInt(50), markup)
	if assert.NotNil(t, p) {
		assert.True(t, decimal.RequireFromString("75").Equal(*p))
	}
	assert.Nil(t, BuyNowPrice(decimal.Zero, markup))
}

func TestAcceptsBids(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Minute)
	l := Lead{Status: StatusInAuction, AuctionStartAt: now.Add(-time.Hour), AuctionEndAt: &end}

	assert.True(t, l.AcceptsBids(now))
	assert.False(t, l.HasEnded(now))
	assert.True(t, l.HasEnded(end))
	assert.False(t, l.AcceptsBids(end))

	l.Status = StatusSold
	assert.False(t, l.AcceptsBids(now))
	assert.True(t, l.Status.IsTerminal())
	assert.False(t, StatusInAuction.IsTerminal())
}
