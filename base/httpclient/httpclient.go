// Package httpclient is the JSON-over-HTTP plumbing shared by the external collaborator clients.
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderAuthorization  = "Authorization"
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Code, string(e.Body))
}

type Config struct {
	BaseUrl string
	Timeout time.Duration
	ApiKey  string
	// RequestsPerSecond caps outbound calls, 0 means unlimited
	RequestsPerSecond float64
	HttpClient        *http.Client
}

type Client struct {
	baseUrl string
	timeout time.Duration
	apiKey  string
	limiter *rate.Limiter
	client  *http.Client
}

func New(cfg Config) *Client {
	c := &Client{
		baseUrl: cfg.BaseUrl,
		timeout: cfg.Timeout,
		apiKey:  cfg.ApiKey,
		client:  cfg.HttpClient,
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// Configured reports whether a base url was given
func (c *Client) Configured() bool {
	return c != nil && c.baseUrl != ""
}

// Do sends in as the JSON body and decodes a 2xx response into out. Either may be nil.
func (c *Client) Do(ctx bCtx.Ctx, method, path string, headers map[string]string, in, out interface{}) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	url := c.baseUrl + path
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Warn("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("failed to read body")
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: data}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
