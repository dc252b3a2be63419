package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterConcurrentAdd(t *testing.T) {
	c := NewCounter()
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				c.Inc("sold")
			} else {
				c.Add("unsold", 2)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, c.Count("sold"))
	assert.Equal(t, 50, c.Count("unsold"))
	assert.Equal(t, 0, c.Count("failed"))
	assert.Equal(t, 75, c.Total())
	assert.Equal(t, []string{"sold", "unsold"}, c.Keys())
}
