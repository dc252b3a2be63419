package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)
	buyer := domain.Buyer{Id: "buyer-b", Address: "0x939AE6A4C8dfDBB1f7085189574F0a938013952B"}

	tkn, err := u.SignToken(ctx, buyer)
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	got, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "buyer-b", got.Id)
	assert.Equal(t, domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b"), got.Address)

	_, err = usecase.New("other-secret", time.Hour).ParseToken(ctx, tkn)
	assert.Error(t, err)
}

func TestSignTokenRejectsBadBuyer(t *testing.T) {
	u := usecase.New("jwt-secret", 0)
	_, err := u.SignToken(ctx.Background(), domain.Buyer{Id: "buyer-b", Address: "nope"})
	assert.Equal(t, domain.ErrBadParamInput, err)
	_, err = u.SignToken(ctx.Background(), domain.Buyer{Address: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"})
	assert.Equal(t, domain.ErrBadParamInput, err)
}
