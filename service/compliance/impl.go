package compliance

import (
	"net/http"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
)

type client struct {
	http *httpclient.Client
}

func NewClient(cfg httpclient.Config) Client {
	return &client{http: httpclient.New(cfg)}
}

type checkReq struct {
	Identity string  `json:"identity"`
	Category string  `json:"category"`
	Region   *string `json:"region,omitempty"`
}

type checkResp struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func (im *client) CanTransact(c bCtx.Ctx, identity domain.Address, category string, region *string) (bool, string, error) {
	if !im.http.Configured() {
		return true, "", nil
	}

	resp := checkResp{}
	req := checkReq{Identity: identity.ToLowerStr(), Category: category, Region: region}
	if err := im.http.Do(c, http.MethodPost, "/checks", nil, req, &resp); err != nil {
		c.WithFields(log.Fields{"err": err, "identity": identity}).Error("compliance check failed")
		return false, "", err
	}
	return resp.Allowed, resp.Reason, nil
}
