package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialDurations(t *testing.T) {
	b := NewExponential(10*time.Millisecond, 35*time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, b.NextDuration)

	assert.NoError(t, b.Backoff(context.Background()))
	assert.Equal(t, 20*time.Millisecond, b.NextDuration)

	assert.NoError(t, b.Backoff(context.Background()))
	assert.Equal(t, 35*time.Millisecond, b.NextDuration)
	assert.Equal(t, 2, b.Count())
}

func TestBackoffCancelled(t *testing.T) {
	b := NewLinear(time.Second, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, context.Canceled, b.Backoff(ctx))
	assert.Equal(t, 0, b.Count())
}

func TestRetry(t *testing.T) {
	errBoom := errors.New("boom")

	calls := 0
	err := Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		if calls < 2 {
			return errBoom
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		return errBoom
	})
	assert.Equal(t, errBoom, err)
	assert.Equal(t, 3, calls)
}
