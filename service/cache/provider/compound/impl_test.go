package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/service/cache/provider"
	"github.com/x-xyz/leadauction/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	lyr0 provider.Provider
	lyr1 provider.Provider
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.lyr0 = primitive.NewPrimitive("layer 0", 1)
	ts.lyr1 = primitive.NewPrimitive("layer 1", 1)
	ts.im = NewCompound(ts.lyr0, ts.lyr1).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.Require().NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	for _, lyr := range []provider.Provider{ts.lyr0, ts.lyr1} {
		r, _, err := lyr.Get(mockCtx, k)
		ts.Require().NoError(err)
		ts.Equal(v, r)
	}
}

func (ts *testsuite) TestGetBackFills() {
	k := "key"
	v := []byte("value")
	ts.Require().NoError(ts.lyr1.Set(mockCtx, k, v, time.Minute))

	_, _, err := ts.lyr0.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	r, _, err := ts.im.Get(mockCtx, k)
	ts.Require().NoError(err)
	ts.Equal(v, r)

	r, _, err = ts.lyr0.Get(mockCtx, k)
	ts.Require().NoError(err)
	ts.Equal(v, r)
}

func (ts *testsuite) TestMiss() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.Require().NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.Require().NoError(ts.im.Del(mockCtx, "k"))
	for _, lyr := range []provider.Provider{ts.lyr0, ts.lyr1} {
		_, _, err := lyr.Get(mockCtx, "k")
		ts.Equal(provider.ErrNotFound, err)
	}
}
