package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldDoesNotShareBackingArray(t *testing.T) {
	base := Log().WithField("leadId", "lead-1")

	a := base.WithField("bidId", "a")
	b := base.WithField("bidId", "b")

	assert.Equal(t, []interface{}{"leadId", "lead-1", "bidId", "a"}, a.fields)
	assert.Equal(t, []interface{}{"leadId", "lead-1", "bidId", "b"}, b.fields)
	assert.Len(t, base.fields, 2)
}

func TestWithFields(t *testing.T) {
	l := Log().WithFields(Fields{"lockId": "l-1"})
	assert.Equal(t, []interface{}{"lockId", "l-1"}, l.fields)
}
