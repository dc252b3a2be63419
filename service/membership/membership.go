package membership

import (
	bCtx "github.com/x-xyz/leadauction/base/ctx"
)

// Client looks up whether a buyer holds a membership in a category
type Client interface {
	IsHolder(c bCtx.Ctx, category, buyerId string) (bool, error)
}
