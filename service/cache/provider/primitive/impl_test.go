package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k := "key"
	v := []byte("value")

	ts.Require().NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r, ttl, err := ts.im.Get(mockCtx, k)
	ts.Require().NoError(err)
	ts.Equal(v, r)
	ts.True(ttl > 0 && ttl <= time.Minute, "ttl %s", ttl)
}

func (ts *testsuite) TestSubSecondTtlStillExpires() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), 10*time.Millisecond))
	_, ttl, err := ts.im.Get(mockCtx, "k")
	ts.Require().NoError(err)
	ts.True(ttl <= time.Second)
}

func (ts *testsuite) TestNoTtl() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), 0))
	_, ttl, err := ts.im.Get(mockCtx, "k")
	ts.Require().NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.Require().NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
