package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/tiebreak"
	"github.com/x-xyz/leadauction/service/vrf"
	mockVrf "github.com/x-xyz/leadauction/service/vrf/mocks"
)

var (
	mockCtx = ctx.Background()
	base    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type tiebreakSuite struct {
	suite.Suite
	vrf        *mockVrf.Client
	im         tiebreak.Usecase
	candidates []tiebreak.Candidate
}

func (s *tiebreakSuite) SetupTest() {
	s.vrf = &mockVrf.Client{}
	s.im = New(&TieBreakUseCaseCfg{
		Vrf:           s.vrf,
		OracleTimeout: 200 * time.Millisecond,
		PollInterval:  5 * time.Millisecond,
		PollLimit:     20 * time.Millisecond,
	})
	s.candidates = []tiebreak.Candidate{
		{BidId: "bid-late", BuyerId: "buyer-a", Identity: "0xAAaa000000000000000000000000000000000000", CreatedAt: base.Add(time.Second)},
		{BidId: "bid-early", BuyerId: "buyer-b", Identity: "0xbbbb000000000000000000000000000000000000", CreatedAt: base},
	}
}

func (s *tiebreakSuite) TearDownTest() {
	s.vrf.AssertExpectations(s.T())
}

func TestTiebreakSuite(t *testing.T) {
	suite.Run(t, new(tiebreakSuite))
}

var identities = []string{
	"0xaaaa000000000000000000000000000000000000",
	"0xbbbb000000000000000000000000000000000000",
}

func (s *tiebreakSuite) TestOracleWinner() {
	s.vrf.On("Configured").Return(true).Once()
	s.vrf.On("RequestDraw", mock.Anything, "lead-1", identities).Return("req-1", nil).Once()
	s.vrf.On("GetDraw", mock.Anything, "req-1").Return(&vrf.Draw{RequestId: "req-1"}, nil).Once()
	s.vrf.On("GetDraw", mock.Anything, "req-1").Return(&vrf.Draw{RequestId: "req-1", Ready: true, Winner: identities[0]}, nil).Once()

	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates)
	s.Require().NoError(err)
	s.Equal("bid-late", winner.BidId)
}

func (s *tiebreakSuite) TestOracleUnconfigured() {
	s.vrf.On("Configured").Return(false).Once()

	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates)
	s.Require().NoError(err)
	s.Equal("bid-early", winner.BidId)
}

func (s *tiebreakSuite) TestOracleRequestFails() {
	s.vrf.On("Configured").Return(true).Once()
	s.vrf.On("RequestDraw", mock.Anything, "lead-1", identities).Return("", errors.New("oracle down")).Once()

	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates)
	s.Require().NoError(err)
	s.Equal("bid-early", winner.BidId)
}

func (s *tiebreakSuite) TestOracleTimesOut() {
	s.vrf.On("Configured").Return(true).Once()
	s.vrf.On("RequestDraw", mock.Anything, "lead-1", identities).Return("req-1", nil).Once()
	s.vrf.On("GetDraw", mock.Anything, "req-1").Return(&vrf.Draw{RequestId: "req-1"}, nil)

	start := time.Now()
	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates)
	s.Require().NoError(err)
	s.Equal("bid-early", winner.BidId)
	s.Less(time.Since(start), 2*time.Second)
}

func (s *tiebreakSuite) TestOracleWinnerNotACandidate() {
	s.vrf.On("Configured").Return(true).Once()
	s.vrf.On("RequestDraw", mock.Anything, "lead-1", identities).Return("req-1", nil).Once()
	s.vrf.On("GetDraw", mock.Anything, "req-1").Return(&vrf.Draw{RequestId: "req-1", Ready: true, Winner: "0xcccc000000000000000000000000000000000000"}, nil).Once()

	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates)
	s.Require().NoError(err)
	s.Equal("bid-early", winner.BidId)
}

func (s *tiebreakSuite) TestTrivialInputs() {
	_, err := s.im.Resolve(mockCtx, "lead-1", nil)
	s.Equal(domain.ErrBadParamInput, err)

	winner, err := s.im.Resolve(mockCtx, "lead-1", s.candidates[:1])
	s.Require().NoError(err)
	s.Equal("bid-late", winner.BidId)
}
