package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/delivery"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/stores/auth/delivery/http/middleware"
)

type authHandler struct {
	auth domain.AuthUsecase
}

// New registers token issuance. Only admins issue buyer tokens.
func New(e *echo.Echo, auth domain.AuthUsecase, authMiddleware *middleware.AuthMiddleware) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/token", handler.issue, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *authHandler) issue(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		BuyerId string         `json:"buyerId"`
		Address domain.Address `json:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if tkn, err := h.auth.SignToken(ctx, domain.Buyer{Id: p.BuyerId, Address: p.Address}); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
