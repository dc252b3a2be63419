package compliance

import (
	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

// Client asks the identity oracle whether a participant may transact
type Client interface {
	CanTransact(c bCtx.Ctx, identity domain.Address, category string, region *string) (allowed bool, reason string, err error)
}
