package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPodName(t *testing.T) {
	t.Setenv("PODNAME", "leadauction-resolver-0")
	assert.Equal(t, "leadauction-resolver-0", PodName())

	t.Setenv("PODNAME", "")
	host, _ := os.Hostname()
	assert.Equal(t, host, PodName())
}

func TestOr(t *testing.T) {
	t.Setenv("ENV_NAME", "staging")
	assert.Equal(t, "staging", Or("ENV_NAME", "local"))

	t.Setenv("ENV_NAME", "")
	assert.Equal(t, "local", Or("ENV_NAME", "local"))
}
