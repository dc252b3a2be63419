package membership

import (
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

type holderResp struct {
	IsHolder bool `json:"isHolder"`
}

func (im *client) IsHolder(c bCtx.Ctx, category, buyerId string) (bool, error) {
	// no membership service means nobody is a member
	if !im.http.Configured() {
		return false, nil
	}

	params := url.Values{
		"category": {category},
		"buyerId":  {buyerId},
	}
	resp := holderResp{}
	if err := im.http.Do(c, http.MethodGet, "/memberships?"+params.Encode(), nil, nil, &resp); err != nil {
		c.WithFields(log.Fields{"err": err, "category": category, "buyerId": buyerId}).Warn("membership lookup failed")
		return false, err
	}
	return resp.IsHolder, nil
}
