package vrf

import (
	"fmt"
	"net/http"
	"net/url"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/base/log"
)

type client struct {
	http *httpclient.Client
}

func NewClient(cfg httpclient.Config) Client {
	return &client{http: httpclient.New(cfg)}
}

func (im *client) Configured() bool {
	return im.http.Configured()
}

type drawReq struct {
	Seed       string   `json:"seed"`
	Candidates []string `json:"candidates"`
}

func (im *client) RequestDraw(c bCtx.Ctx, leadId string, candidates []string) (string, error) {
	if !im.Configured() {
		return "", ErrNotConfigured
	}

	resp := Draw{}
	req := drawReq{Seed: leadId, Candidates: candidates}
	headers := map[string]string{httpclient.HeaderIdempotencyKey: "draw:" + leadId}
	if err := im.http.Do(c, http.MethodPost, "/draws", headers, req, &resp); err != nil {
		c.WithFields(log.Fields{"err": err, "leadId": leadId}).Warn("vrf RequestDraw failed")
		return "", err
	}
	return resp.RequestId, nil
}

func (im *client) GetDraw(c bCtx.Ctx, requestId string) (*Draw, error) {
	if !im.Configured() {
		return nil, ErrNotConfigured
	}

	resp := &Draw{}
	if err := im.http.Do(c, http.MethodGet, fmt.Sprintf("/draws/%s", url.PathEscape(requestId)), nil, nil, resp); err != nil {
		c.WithFields(log.Fields{"err": err, "requestId": requestId}).Warn("vrf GetDraw failed")
		return nil, err
	}
	return resp, nil
}
