package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
)

type Table string

const (
	TableLeads          Table = "leads"
	TableAuctionWindows Table = "auction_windows"
	TableBids           Table = "bids"
	TableSettlements    Table = "settlements"
	TableEscrowLocks    Table = "escrow_locks"
	TableBountyPools    Table = "bounty_pools"
	TableBountyReleases Table = "bounty_releases"
	TableMintRequests   Table = "mint_requests"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a participant's wallet identity
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsValid reports whether a is a 0x-prefixed 20 byte hex address
func (a Address) IsValid() bool {
	return strings.HasPrefix(string(a), "0x") && common.IsHexAddress(string(a))
}

// Round2 rounds money to cents, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Transactor runs fn inside one database transaction. Either every write in fn is applied or none is.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}
