package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/delivery"
	"github.com/x-xyz/leadauction/domain"
)

type AuthMiddleware struct {
	auth           domain.AuthUsecase
	adminAddresses []string
}

func New(auth domain.AuthUsecase, adminAddresses []string) *AuthMiddleware {
	return &AuthMiddleware{
		auth:           auth,
		adminAddresses: adminAddresses,
	}
}

// Auth requires a bearer token and sets "buyer" on the echo context
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			buyer := c.Get("buyer").(*domain.Buyer)

			for _, admin := range m.adminAddresses {
				if buyer.Address.Equals(domain.Address(admin)) {
					return next(c)
				}
			}

			return delivery.MakeJsonResp(c, http.StatusForbidden, "require admin privilege")
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if buyer, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("buyer", buyer)
		return true, nil
	}
}
