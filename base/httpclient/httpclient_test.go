package httpclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
)

func TestDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "key-1", r.Header.Get(HeaderIdempotencyKey))
		require.Equal(t, "Bearer secret", r.Header.Get(HeaderAuthorization))
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"value":"pong"}`))
		case "/conflict":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"txRef":"tx-1"}`))
		}
	}))
	defer srv.Close()

	c := New(Config{BaseUrl: srv.URL, Timeout: time.Second, ApiKey: "secret"})
	headers := map[string]string{HeaderIdempotencyKey: "key-1"}

	out := struct {
		Value string `json:"value"`
	}{}
	require.NoError(t, c.Do(bCtx.Background(), http.MethodPost, "/ok", headers, map[string]string{"a": "b"}, &out))
	require.Equal(t, "pong", out.Value)

	err := c.Do(bCtx.Background(), http.MethodPost, "/conflict", headers, nil, nil)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusConflict, statusErr.Code)
	require.JSONEq(t, `{"txRef":"tx-1"}`, string(statusErr.Body))
}

func TestDoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(Config{BaseUrl: srv.URL, Timeout: 20 * time.Millisecond})
	require.Error(t, c.Do(bCtx.Background(), http.MethodGet, "/", nil, nil, nil))
}

func TestConfigured(t *testing.T) {
	var nilClient *Client
	require.False(t, nilClient.Configured())
	require.False(t, New(Config{}).Configured())
	require.True(t, New(Config{BaseUrl: "http://ledger"}).Configured())
}
