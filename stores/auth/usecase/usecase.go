package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

const defaultTokenTTL = 24 * time.Hour

var timeNow = time.Now

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
}

func New(jwtSecret string, ttl time.Duration) domain.AuthUsecase {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, buyer domain.Buyer) (string, error) {
	if buyer.Id == "" || !buyer.Address.IsValid() {
		return "", domain.ErrBadParamInput
	}

	claims := domain.JwtCustomClaims{
		BuyerId: buyer.Id,
		Address: buyer.Address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (*domain.Buyer, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid && claims.BuyerId != "" {
		return &domain.Buyer{Id: claims.BuyerId, Address: domain.Address(claims.Address)}, nil
	}

	return nil, domain.ErrBadParamInput
}
