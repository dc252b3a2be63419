package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "bidRate:0xabc:27450211", RedisKey(PfxBidRate, "0xabc", "27450211"))
}

func TestGetPrefix(t *testing.T) {
	assert.Equal(t, "", GetPrefix("plain"))
	assert.Equal(t, "membership", GetPrefix("membership:buyer"))
	assert.Equal(t, "bidRate:0xabc", GetPrefix("bidRate:0xabc:27450211"))
}
