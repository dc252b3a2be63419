package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/leadauction/base/ctx"
	hcdomain "github.com/x-xyz/leadauction/domain/healthcheck"
	"github.com/x-xyz/leadauction/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	report, err := New(repo).Check(ctx.Background())
	require.NoError(t, err)
	require.Equal(t, hcdomain.Report{Mongo: "ok", Redis: "ok"}, report)

	errDown := errors.New("mongo down")
	repo.On("PingDB", mock.Anything).Return(errDown).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	report, err = New(repo).Check(ctx.Background())
	require.Equal(t, errDown, err)
	require.Equal(t, hcdomain.Report{Mongo: "mongo down", Redis: "ok"}, report)
	repo.AssertExpectations(t)
}
