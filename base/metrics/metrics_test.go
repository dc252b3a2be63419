package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"func:get", "cluster:cache"}, parseTag([]string{"func", "get", "cluster", "cache"}))
	assert.Panics(t, func() { parseTag([]string{"odd"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	met := New("test", WithoutPodName(), WithSampleRate(0.5))
	m := met.(*Metrics)
	assert.Equal(t, 0.5, m.sampleRate)
	assert.NotContains(t, m.datadog.ddTags, "pod:")

	assert.NotPanics(t, func() {
		met.BumpSum("resolve.sold", 1, "category", "solar")
		met.BumpHistogram("bytes", 10)
		met.BumpAvg("ttl", 1.5)
		met.BumpTime("sweep.time").End()
	})
}
