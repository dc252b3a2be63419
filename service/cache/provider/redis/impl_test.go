package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/service/cache/provider"
	"github.com/x-xyz/leadauction/service/redis"
	mockRedis "github.com/x-xyz/leadauction/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.redis.On("Set", mockCtx, k, v, time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))

	ts.redis.On("Set", mockCtx, k, v, redis.Forever).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, 0))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = []byte("value")
	)

	ts.redis.On("Get", mockCtx, k).Return(nil, redis.ErrNotFound).Once()
	res, _, err := ts.im.Get(mockCtx, k)
	ts.Nil(res)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(30, nil).Once()
	res, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.Equal(30*time.Second, ttl)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(-1, redis.ErrNoTTL).Once()
	_, ttl, err = ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mockCtx, "key").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "key"))

	errRedis := errors.New("conn refused")
	ts.redis.On("Del", mockCtx, "key").Return(0, errRedis).Once()
	ts.Equal(errRedis, ts.im.Del(mockCtx, "key"))
}
