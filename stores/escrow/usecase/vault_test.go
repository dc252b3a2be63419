package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/ptr"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/escrow"
	mockEscrow "github.com/x-xyz/leadauction/domain/escrow/mocks"
	"github.com/x-xyz/leadauction/service/ledger"
	mockLedger "github.com/x-xyz/leadauction/service/ledger/mocks"
)

var (
	mockCtx   = ctx.Background()
	mockNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	buyer     = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952b")
	seller    = domain.Address("0x1111111111111111111111111111111111111111")
	errLedger = errors.New("ledger unavailable")
)

type vaultSuite struct {
	suite.Suite
	repo   *mockEscrow.Repo
	ledger *mockLedger.Client
	im     escrow.Vault
}

func (s *vaultSuite) SetupTest() {
	timeNow = func() time.Time { return mockNow }
	newId = func() string { return "lock-2" }
	s.repo = &mockEscrow.Repo{}
	s.ledger = &mockLedger.Client{}
	s.im = NewVault(&VaultUseCaseCfg{
		LockRepo:    s.repo,
		Ledger:      s.ledger,
		ProtocolFee: escrow.DefaultProtocolFee,
	})
}

func (s *vaultSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func TestVaultSuite(t *testing.T) {
	suite.Run(t, new(vaultSuite))
}

func lockOf(id string, status escrow.LockStatus, txRef *string) *escrow.Lock {
	return &escrow.Lock{
		Id:       id,
		LeadId:   "lead-1",
		BuyerId:  "buyer-b",
		Identity: buyer,
		Amount:   decimal.NewFromInt(55),
		HoldRef:  "hold-" + id,
		Status:   status,
		TxRef:    txRef,
	}
}

func (s *vaultSuite) TestCheckBalanceIncludesProtocolFee() {
	s.ledger.On("Balance", mock.Anything, buyer).Return(decimal.RequireFromString("55.50"), nil).Once()
	ok, available, err := s.im.CheckBalance(mockCtx, buyer, decimal.NewFromInt(55))
	s.Require().NoError(err)
	s.True(ok)
	s.True(decimal.RequireFromString("55.50").Equal(available))

	s.ledger.On("Balance", mock.Anything, buyer).Return(decimal.RequireFromString("55.49"), nil).Once()
	ok, _, err = s.im.CheckBalance(mockCtx, buyer, decimal.NewFromInt(55))
	s.Require().NoError(err)
	s.False(ok)

	s.ledger.On("Balance", mock.Anything, buyer).Return(decimal.Zero, errLedger).Once()
	_, _, err = s.im.CheckBalance(mockCtx, buyer, decimal.NewFromInt(55))
	s.Equal(errLedger, err)
}

func (s *vaultSuite) TestLockRefundsPreviousLockFirst() {
	old := lockOf("lock-1", escrow.LockStatusLocked, nil)
	s.repo.On("FindOpen", mock.Anything, "lead-1", "buyer-b").Return([]escrow.Lock{*old}, nil).Once()
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(old, nil).Once()
	s.ledger.On("Release", mock.Anything, "hold-lock-1", "lock-1:refund").Return("tx-refund", nil).Once()
	s.repo.On("Close", mock.Anything, "lock-1", escrow.LockStatusRefunded, "tx-refund").Return(nil).Once()

	s.ledger.On("Hold", mock.Anything, buyer, decimal.NewFromInt(60), "lock-2:lock").Return("hold-lock-2", nil).Once()
	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(l *escrow.Lock) bool {
		return l.Id == "lock-2" && l.HoldRef == "hold-lock-2" && l.Status == escrow.LockStatusLocked &&
			l.Amount.Equal(decimal.NewFromInt(60)) && l.CreatedAt.Equal(mockNow)
	})).Return(nil).Once()

	lockId, err := s.im.Lock(mockCtx, buyer, decimal.NewFromInt(60), "lead-1", "buyer-b")
	s.Require().NoError(err)
	s.Equal("lock-2", lockId)
}

func (s *vaultSuite) TestLockReleasesHoldWhenRecordFails() {
	errMongo := errors.New("mongo down")
	s.repo.On("FindOpen", mock.Anything, "lead-1", "buyer-b").Return([]escrow.Lock{}, nil).Once()
	s.ledger.On("Hold", mock.Anything, buyer, decimal.NewFromInt(60), "lock-2:lock").Return("hold-lock-2", nil).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(errMongo).Once()
	s.ledger.On("Release", mock.Anything, "hold-lock-2", "lock-2:refund").Return("tx-undo", nil).Once()

	_, err := s.im.Lock(mockCtx, buyer, decimal.NewFromInt(60), "lead-1", "buyer-b")
	s.Equal(errMongo, err)
}

func (s *vaultSuite) TestLockRejectsNonPositiveAmount() {
	_, err := s.im.Lock(mockCtx, buyer, decimal.Zero, "lead-1", "buyer-b")
	s.Equal(domain.ErrInvalidAmount, err)
}

func (s *vaultSuite) TestSettlePaysAmountMinusFee() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()
	s.ledger.On("Capture", mock.Anything, "hold-lock-1", seller, decimal.RequireFromString("54.50"), "lock-1:settle").Return("tx-settle", nil).Once()
	s.repo.On("Close", mock.Anything, "lock-1", escrow.LockStatusSettled, "tx-settle").Return(nil).Once()

	txRef, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(55), "buyer-b", "lead-1")
	s.Require().NoError(err)
	s.Equal("tx-settle", txRef)
}

func (s *vaultSuite) TestSettleCapturesBidNotLock() {
	over := lockOf("lock-1", escrow.LockStatusLocked, nil)
	over.Amount = decimal.NewFromInt(80)
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(over, nil).Once()
	s.ledger.On("Capture", mock.Anything, "hold-lock-1", seller, decimal.RequireFromString("54.50"), "lock-1:settle").Return("tx-settle", nil).Once()
	s.repo.On("Close", mock.Anything, "lock-1", escrow.LockStatusSettled, "tx-settle").Return(nil).Once()

	txRef, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(55), "buyer-b", "lead-1")
	s.Require().NoError(err)
	s.Equal("tx-settle", txRef)
}

func (s *vaultSuite) TestSettleAboveLockIsRejected() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()

	_, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(900), "buyer-b", "lead-1")
	s.Equal(domain.ErrInvalidAmount, err)
	s.ledger.AssertNotCalled(s.T(), "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *vaultSuite) TestSettleTwiceReturnsFirstTxRef() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusSettled, ptr.String("tx-settle")), nil).Once()

	txRef, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(55), "buyer-b", "lead-1")
	s.Require().NoError(err)
	s.Equal("tx-settle", txRef)
	s.ledger.AssertNotCalled(s.T(), "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *vaultSuite) TestRefundAfterSettleIsRejected() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusSettled, ptr.String("tx-settle")), nil).Once()

	_, err := s.im.Refund(mockCtx, "lock-1", "buyer-b", "lead-1")
	s.Equal(domain.ErrLockClosed, err)
}

func (s *vaultSuite) TestSettleLosesRaceToConcurrentSettle() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()
	s.ledger.On("Capture", mock.Anything, "hold-lock-1", seller, decimal.RequireFromString("54.50"), "lock-1:settle").Return("tx-settle", nil).Once()
	s.repo.On("Close", mock.Anything, "lock-1", escrow.LockStatusSettled, "tx-settle").Return(domain.ErrStatusConflict).Once()
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusSettled, ptr.String("tx-settle")), nil).Once()

	txRef, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(55), "buyer-b", "lead-1")
	s.Require().NoError(err)
	s.Equal("tx-settle", txRef)
}

func (s *vaultSuite) TestSettleLedgerFailureLeavesLockOpen() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()
	s.ledger.On("Capture", mock.Anything, "hold-lock-1", seller, mock.Anything, "lock-1:settle").Return("", errLedger).Once()

	_, err := s.im.Settle(mockCtx, "lock-1", seller, decimal.NewFromInt(55), "buyer-b", "lead-1")
	s.Equal(errLedger, err)
}

func (s *vaultSuite) TestRefundHoldClosedOnLedger() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()
	s.ledger.On("Release", mock.Anything, "hold-lock-1", "lock-1:refund").Return("", ledger.ErrHoldClosed).Once()

	_, err := s.im.Refund(mockCtx, "lock-1", "buyer-b", "lead-1")
	s.Equal(domain.ErrLockClosed, err)
}

func (s *vaultSuite) TestLockOfAnotherBid() {
	s.repo.On("FindOne", mock.Anything, "lock-1").Return(lockOf("lock-1", escrow.LockStatusLocked, nil), nil).Once()

	_, err := s.im.Refund(mockCtx, "lock-1", "buyer-x", "lead-1")
	s.Equal(domain.ErrBadParamInput, err)
}
