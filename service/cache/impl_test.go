package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain/keys"
	"github.com/x-xyz/leadauction/service/cache/provider"
	"github.com/x-xyz/leadauction/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.Require().NoError(err)
	ts.Require().NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetAndDel() {
	k := "key"
	ts.Require().NoError(ts.im.Set(mockCtx, k, value{"value"}))

	sv, ttl, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Require().NoError(err)
	ts.JSONEq(`{"value":"value"}`, string(sv))
	ts.True(ttl > 0 && ttl <= time.Minute)

	ts.Require().NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, &value{}))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return true, nil
	}

	var holder bool
	ts.Require().NoError(ts.im.GetByFunc(mockCtx, "member", &holder, getter))
	ts.True(holder)

	holder = false
	ts.Require().NoError(ts.im.GetByFunc(mockCtx, "member", &holder, getter))
	ts.True(holder)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	errGetter := errors.New("upstream down")
	var holder bool
	err := ts.im.GetByFunc(mockCtx, "member", &holder, func() (interface{}, error) {
		return nil, errGetter
	})
	ts.Equal(errGetter, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "member", &holder))
}
