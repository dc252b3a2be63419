package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/leadauction/base/ctx"
	hcdomain "github.com/x-xyz/leadauction/domain/healthcheck"
)

type stubCheck struct {
	report hcdomain.Report
	err    error
}

func (s stubCheck) Check(ctx.Ctx) (hcdomain.Report, error) {
	return s.report, s.err
}

func serve(t *testing.T, us hcdomain.HealthCheckUsecase) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, us)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthy(t *testing.T) {
	rec := serve(t, stubCheck{report: hcdomain.Report{Mongo: "ok", Redis: "ok"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":{"mongo":"ok","redis":"ok"},"status":"success"}`, rec.Body.String())
}

func TestUnhealthy(t *testing.T) {
	rec := serve(t, stubCheck{report: hcdomain.Report{Mongo: "ok", Redis: "dial tcp: refused"}, err: errors.New("dial tcp: refused")})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"redis":"dial tcp: refused"`)
}
