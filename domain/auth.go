package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/leadauction/base/ctx"
)

type JwtCustomClaims struct {
	BuyerId string `json:"buyerId"`
	Address string `json:"address"`
	jwt.StandardClaims
}

// Buyer is the authenticated caller of the bid endpoints
type Buyer struct {
	Id      string
	Address Address
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, buyer Buyer) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (*Buyer, error)
}
