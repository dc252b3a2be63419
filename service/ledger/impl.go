package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
)

const statusApplied = "APPLIED"

type client struct {
	http *httpclient.Client
	met  metrics.Service
}

func NewClient(cfg httpclient.Config) Client {
	return &client{
		http: httpclient.New(cfg),
		met:  metrics.New("ledger"),
	}
}

func (im *client) Balance(c bCtx.Ctx, identity domain.Address) (decimal.Decimal, error) {
	defer im.met.BumpTime("latency", "op", "balance").End()

	resp := balanceResp{}
	path := fmt.Sprintf("/balances/%s", url.PathEscape(identity.ToLowerStr()))
	if err := im.http.Do(c, http.MethodGet, path, nil, nil, &resp); err != nil {
		c.WithFields(log.Fields{"err": err, "identity": identity}).Error("ledger balance failed")
		return decimal.Zero, im.mapErr(err)
	}
	return resp.Available, nil
}

func (im *client) Hold(c bCtx.Ctx, identity domain.Address, amount decimal.Decimal, key string) (string, error) {
	defer im.met.BumpTime("latency", "op", "hold").End()

	resp := holdResp{}
	req := holdReq{Identity: identity.ToLowerStr(), Amount: amount}
	if err := im.http.Do(c, http.MethodPost, "/holds", idempotent(key), req, &resp); err != nil {
		if ref, ok := alreadyApplied(err); ok && ref.HoldRef != "" {
			return ref.HoldRef, nil
		}
		c.WithFields(log.Fields{"err": err, "identity": identity, "key": key}).Error("ledger hold failed")
		return "", im.mapErr(err)
	}
	return resp.HoldRef, nil
}

func (im *client) Capture(c bCtx.Ctx, holdRef string, payee domain.Address, amount decimal.Decimal, key string) (string, error) {
	defer im.met.BumpTime("latency", "op", "capture").End()

	path := fmt.Sprintf("/holds/%s/capture", url.PathEscape(holdRef))
	req := captureReq{Payee: payee.ToLowerStr(), Amount: amount}
	return im.tx(c, "capture", path, key, req)
}

func (im *client) Release(c bCtx.Ctx, holdRef string, key string) (string, error) {
	defer im.met.BumpTime("latency", "op", "release").End()

	path := fmt.Sprintf("/holds/%s/release", url.PathEscape(holdRef))
	return im.tx(c, "release", path, key, nil)
}

func (im *client) Transfer(c bCtx.Ctx, from, to domain.Address, amount decimal.Decimal, key string) (string, error) {
	defer im.met.BumpTime("latency", "op", "transfer").End()

	req := transferReq{From: from.ToLowerStr(), To: to.ToLowerStr(), Amount: amount}
	return im.tx(c, "transfer", "/transfers", key, req)
}

func (im *client) tx(c bCtx.Ctx, op, path, key string, req interface{}) (string, error) {
	resp := txResp{}
	if err := im.http.Do(c, http.MethodPost, path, idempotent(key), req, &resp); err != nil {
		if applied, ok := alreadyApplied(err); ok {
			c.WithFields(log.Fields{"op": op, "key": key, "txRef": applied.TxRef}).Info("ledger key already applied")
			im.met.BumpSum("replay", 1, "op", op)
			return applied.TxRef, nil
		}
		im.met.BumpSum("err", 1, "op", op)
		c.WithFields(log.Fields{"err": err, "op": op, "key": key}).Error("ledger tx failed")
		return "", im.mapErr(err)
	}
	return resp.TxRef, nil
}

func (im *client) mapErr(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	switch statusErr.Code {
	case http.StatusPaymentRequired:
		return domain.ErrInsufficientFunds
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusGone, http.StatusConflict:
		return ErrHoldClosed
	}
	return err
}

func idempotent(key string) map[string]string {
	return map[string]string{httpclient.HeaderIdempotencyKey: key}
}

type appliedResp struct {
	txResp
	HoldRef string `json:"holdRef"`
}

// alreadyApplied reports whether err is the ledger's 409 for a replayed idempotency key
func alreadyApplied(err error) (appliedResp, bool) {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusConflict {
		return appliedResp{}, false
	}
	resp := appliedResp{}
	if err := json.Unmarshal(statusErr.Body, &resp); err != nil {
		return appliedResp{}, false
	}
	if resp.Status != statusApplied || (resp.TxRef == "" && resp.HoldRef == "") {
		return appliedResp{}, false
	}
	return resp, true
}
