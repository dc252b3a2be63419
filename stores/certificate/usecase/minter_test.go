package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/certificate"
	"github.com/x-xyz/leadauction/domain/certificate/mocks"
	"github.com/x-xyz/leadauction/domain/settlement"
)

func TestRequestMint(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	record := &settlement.Record{Id: "st-1", LeadId: "lead-1", BuyerId: "buyer-b"}

	repo := &mocks.Repo{}
	repo.On("Create", mock.Anything, &certificate.MintRequest{
		LeadId:       "lead-1",
		SettlementId: "st-1",
		BuyerId:      "buyer-b",
		Status:       certificate.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("mongo down")).Once()

	im := New(repo)
	require.NoError(t, im.RequestMint(ctx.Background(), record))
	// a second request for the same lead is a no-op
	require.NoError(t, im.RequestMint(ctx.Background(), record))
	require.Error(t, im.RequestMint(ctx.Background(), record))
	repo.AssertExpectations(t)
}
