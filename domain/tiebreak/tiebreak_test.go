package tiebreak

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFallbackIsDeterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	candidates := []Candidate{
		{BidId: "c", Identity: "0xc", CreatedAt: base.Add(2 * time.Second)},
		{BidId: "b", Identity: "0xb", CreatedAt: base},
		{BidId: "a", Identity: "0xa", CreatedAt: base.Add(time.Second)},
		{BidId: "d", Identity: "0xd", CreatedAt: base},
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		r.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		assert.Equal(t, "b", Fallback(candidates).BidId)
	}
}

func TestFind(t *testing.T) {
	candidates := []Candidate{{BidId: "a", Identity: "0xAbC"}}
	c, ok := Find(candidates, "0xabc")
	assert.True(t, ok)
	assert.Equal(t, "a", c.BidId)

	_, ok = Find(candidates, "0xdef")
	assert.False(t, ok)
}
