package metrics

import (
	"github.com/x-xyz/leadauction/base/log"
)

// LogClient stands in for the datadog agent when datadog_host is empty.
// Every metric becomes a debug log line.
type LogClient struct{}

func (lc *LogClient) emit(kind, name string, value interface{}, tags []string) {
	log.Log().WithFields(log.Fields{"kind": kind, "key": name, "val": value, "tags": tags}).Debug("metric")
}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	lc.emit("gauge", name, value, tags)
	return nil
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	lc.emit("count", name, value, tags)
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	lc.emit("histogram", name, value, tags)
	return nil
}

// TimeInMilliseconds is a histogram in milliseconds
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	lc.emit("time_ms", name, value, tags)
	return nil
}
