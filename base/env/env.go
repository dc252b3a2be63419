package env

import (
	"os"
)

// PodName is the pod the process runs in, e.g. leadauction-resolver-6868d88fbd-bz8zv.
// Outside kubernetes it falls back to the hostname.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}

// Or returns the value of the environment variable key, or def when it is unset or empty
func Or(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
