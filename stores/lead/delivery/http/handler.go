package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/delivery"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/auction"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/middleware"
	authMiddleware "github.com/x-xyz/leadauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	resolver auction.Resolver
	bid      bid.Usecase
	windows  lead.WindowRepo
}

func New(e *echo.Echo, resolver auction.Resolver, bidUC bid.Usecase, windows lead.WindowRepo, authMiddleware *authMiddleware.AuthMiddleware, windowCacheTTL time.Duration) {
	h := &handler{
		resolver: resolver,
		bid:      bidUC,
		windows:  windows,
	}
	g := e.Group("/leads")
	g.GET("/:id", h.getLead)
	g.GET("/:id/window", h.getWindow, middleware.CacheHttp(windowCacheTTL))
	g.POST("/:id/bids", h.placeBid, authMiddleware.Auth())

	// admin
	g.POST("/:id/resolve", h.resolve, authMiddleware.Auth(), authMiddleware.IsAdmin())
	e.POST("/auctions/sweep", h.sweep, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// getLead resolves an auction whose deadline has passed before returning it
func (h *handler) getLead(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	l, err := h.resolver.CheckAndResolve(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// getWindow returns the advisory bid count and highest bid
func (h *handler) getWindow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	w, err := h.windows.FindOne(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, w)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("buyer").(*domain.Buyer)

	in := bid.PlaceBidInput{}
	if err := c.Bind(&in); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	in.LeadId = c.Param("id")
	in.BuyerId = buyer.Id
	in.Identity = buyer.Address
	if err := c.Validate(&in); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	b, err := h.bid.PlaceBid(ctx, in)
	if err != nil {
		ctx.WithField("err", err).Warn("bid.PlaceBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, b)
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	out, err := h.resolver.ResolveOne(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if out.NoOp {
		return delivery.MakeJsonResp(c, http.StatusConflict, domain.ErrAlreadyResolved)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

func (h *handler) sweep(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.resolver.Sweep(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
