package vrf

import (
	"errors"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
)

var (
	ErrNotConfigured = errors.New("vrf: oracle not configured")
)

type Draw struct {
	RequestId string `json:"requestId"`
	// Ready is false while the oracle has not fulfilled the request
	Ready  bool   `json:"ready"`
	Winner string `json:"winner,omitempty"`
	Proof  string `json:"proof,omitempty"`
}

// Client requests verifiable random draws among candidate identities
type Client interface {
	Configured() bool
	RequestDraw(c bCtx.Ctx, leadId string, candidates []string) (requestId string, err error)
	GetDraw(c bCtx.Ctx, requestId string) (*Draw, error)
}
