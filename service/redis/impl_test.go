package redis

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/metrics"
)

var (
	mockCtx = ctx.Background()
)

// fakeConn answers commands from a reply table and records what it was sent
type fakeConn struct {
	mu      sync.Mutex
	cmds    []string
	replies map[string]interface{}
	errs    map[string]error
}

func (f *fakeConn) record(cmd string, args ...interface{}) {
	parts := []string{cmd}
	for _, a := range args {
		if b, ok := a.([]byte); ok {
			parts = append(parts, string(b))
			continue
		}
		parts = append(parts, fmt.Sprint(a))
	}
	f.mu.Lock()
	f.cmds = append(f.cmds, strings.Join(parts, " "))
	f.mu.Unlock()
}

func (f *fakeConn) Close() error { return nil }
func (f *fakeConn) Err() error   { return nil }
func (f *fakeConn) Flush() error { return nil }

func (f *fakeConn) Receive() (interface{}, error) { return nil, nil }

func (f *fakeConn) Send(cmd string, args ...interface{}) error {
	f.record(cmd, args...)
	return nil
}

func (f *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if cmd == "" {
		return nil, nil
	}
	f.record(cmd, args...)
	return f.replies[cmd], f.errs[cmd]
}

func (f *fakeConn) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.cmds...)
}

type redisSuite struct {
	suite.Suite
	conn *fakeConn
	im   Service
}

func (s *redisSuite) SetupTest() {
	s.conn = &fakeConn{replies: map[string]interface{}{}, errs: map[string]error{}}
	pool := &redis.Pool{
		MaxIdle: 1,
		Dial: func() (redis.Conn, error) {
			return s.conn, nil
		},
	}
	s.im = New("test", metrics.New("redis"), &Pools{Src: pool})
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) TestGet() {
	_, err := s.im.Get(mockCtx, "k")
	s.Equal(ErrNotFound, err)

	s.conn.replies["GET"] = []byte("v")
	val, err := s.im.Get(mockCtx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v"), val)
}

func (s *redisSuite) TestSetWithExpire() {
	s.conn.replies["SET"] = "OK"
	s.Require().NoError(s.im.Set(mockCtx, "k", []byte("v"), 2*time.Second))

	sent := s.conn.sent()
	s.Require().Len(sent, 1)
	s.True(strings.HasPrefix(sent[0], "SET k v PX"))
}

func (s *redisSuite) TestTTL() {
	s.conn.replies["TTL"] = int64(retTTLNoKey)
	_, err := s.im.TTL(mockCtx, "k")
	s.Equal(ErrNotFound, err)

	s.conn.replies["TTL"] = int64(retTTLNoExpire)
	_, err = s.im.TTL(mockCtx, "k")
	s.Equal(ErrNoTTL, err)

	s.conn.replies["TTL"] = int64(30)
	ttl, err := s.im.TTL(mockCtx, "k")
	s.Require().NoError(err)
	s.Equal(30, ttl)
}

func (s *redisSuite) TestExpire() {
	s.conn.replies["PEXPIRE"] = int64(0)
	s.Equal(ErrExpireNotExistOrTimeout, s.im.Expire(mockCtx, "k", time.Minute))

	s.conn.replies["PEXPIRE"] = int64(1)
	s.NoError(s.im.Expire(mockCtx, "k", time.Minute))
}

func (s *redisSuite) TestIncrWithExpire() {
	s.conn.replies["EXEC"] = []interface{}{int64(3), int64(1)}

	n, err := s.im.IncrWithExpire(mockCtx, "bidRate:0xabc:1", 2*time.Minute)
	s.Require().NoError(err)
	s.Equal(int64(3), n)

	sent := s.conn.sent()
	s.Require().Len(sent, 4)
	s.Equal("MULTI", sent[0])
	s.Equal("INCR bidRate:0xabc:1", sent[1])
	s.True(strings.HasPrefix(sent[2], "PEXPIRE bidRate:0xabc:1"))
	s.Equal("EXEC", sent[3])
}

func (s *redisSuite) TestPublish() {
	s.conn.replies["PUBLISH"] = int64(2)
	n, err := s.im.Publish(mockCtx, "auction:events", []byte(`{"type":"lead.unsold"}`))
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *redisSuite) TestNoPool() {
	im := New("empty", metrics.New("redis"), &Pools{})
	_, err := im.Get(mockCtx, "k")
	s.Equal(ErrGapTime, err)
}
