package compliance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/domain"
)

func TestCanTransact(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := checkReq{}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Region != nil && *body.Region == "XX" {
			w.Write([]byte(`{"allowed":false,"reason":"sanctioned region"}`))
			return
		}
		w.Write([]byte(`{"allowed":true}`))
	}))
	defer srv.Close()

	c := NewClient(httpclient.Config{BaseUrl: srv.URL, Timeout: time.Second})
	identity := domain.Address("0x00000000000000000000000000000000000000b1")

	ok, _, err := c.CanTransact(bCtx.Background(), identity, "solar", nil)
	req.NoError(err)
	req.True(ok)

	region := "XX"
	ok, reason, err := c.CanTransact(bCtx.Background(), identity, "solar", &region)
	req.NoError(err)
	req.False(ok)
	req.Equal("sanctioned region", reason)
}
