package counter

import (
	"sort"
	"sync"
)

// Counter is a set of named tallies safe for concurrent use
type Counter struct {
	counts map[string]int
	mu     sync.RWMutex
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(key string, val int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key] += val
}

func (c *Counter) Inc(key string) {
	c.Add(key, 1)
}

func (c *Counter) Count(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[key]
}

// Total sums every tally
func (c *Counter) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, v := range c.counts {
		total += v
	}
	return total
}

// Keys returns the tally names in sorted order
func (c *Counter) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
