package broadcast

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain/auction"
	"github.com/x-xyz/leadauction/domain/keys"
	mockRedis "github.com/x-xyz/leadauction/service/redis/mocks"
)

type broadcastSuite struct {
	suite.Suite
	redis *mockRedis.Service
	im    Service
}

func (s *broadcastSuite) SetupTest() {
	s.redis = &mockRedis.Service{}
	s.im = New(s.redis, 1)
}

func TestBroadcastSuite(t *testing.T) {
	suite.Run(t, new(broadcastSuite))
}

func (s *broadcastSuite) TestPublish() {
	sent := make(chan []byte, 1)
	s.redis.On("Publish", mock.Anything, keys.ChannelAuctionEvents, mock.Anything).
		Run(func(args mock.Arguments) { sent <- args.Get(2).([]byte) }).
		Return(1, nil).Once()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.im.Publish(bCtx.Background(), auction.Event{
		Type:    auction.EventAuctionResolved,
		Payload: auction.AuctionResolvedPayload{LeadId: "lead-1", WinnerId: "buyer-b", Amount: decimal.NewFromInt(55)},
		At:      at,
	})

	select {
	case raw := <-sent:
		got := map[string]interface{}{}
		s.Require().NoError(json.Unmarshal(raw, &got))
		s.Equal("auction.resolved", got["type"])
		payload := got["payload"].(map[string]interface{})
		s.Equal("lead-1", payload["leadId"])
		s.Equal("buyer-b", payload["winnerId"])
		s.Equal("55", payload["amount"])
	case <-time.After(time.Second):
		s.Fail("event was not published")
	}
	s.im.Close()
}

func (s *broadcastSuite) TestPublishFailureDoesNotPropagate() {
	done := make(chan struct{})
	s.redis.On("Publish", mock.Anything, keys.ChannelAuctionEvents, mock.Anything).
		Run(func(args mock.Arguments) { close(done) }).
		Return(0, errors.New("redis down")).Once()

	s.im.Publish(bCtx.Background(), auction.Event{Type: auction.EventLeadUnsold})

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("publish was not attempted")
	}
	s.im.Close()
}
