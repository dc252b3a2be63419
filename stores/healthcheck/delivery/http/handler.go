package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/delivery"
	hcdomain "github.com/x-xyz/leadauction/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New registers GET /health, shared by the api and the resolver binaries
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		context.WithField("err", err).Warn("health check failed")
		return c.JSON(http.StatusServiceUnavailable, delivery.JsonResponse{Data: report, Status: delivery.JsonResponseStatusFail})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
