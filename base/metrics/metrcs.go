/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/leadauction/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
	sampleRate  float64
}

// WithoutPodName drops the pod tag. Pod names produce a lot of custom metrics.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// WithSampleRate sets the firing rate between 0 and 1. 1 means always send.
func WithSampleRate(rate float64) Option {
	return func(o *opt) {
		if rate > 0 && rate <= 1 {
			o.sampleRate = rate
		}
	}
}

// New creates a metric client which prefixes every key with pkgName
func New(pkgName string, options ...Option) Service {
	o := opt{withPodName: true, sampleRate: 1}
	for _, option := range options {
		option(&o)
	}

	// "host:" removes the host tag datadog attaches by default
	ddTags := []string{"host:"}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}
	ddTags = append(ddTags,
		"env:"+env.Or("ENV_NAME", viper.GetString("env_name")),
		"app:"+env.Or("APP_NAME", viper.GetString("app_name")),
	)

	return &Metrics{
		pkgName:    pkgName,
		sampleRate: o.sampleRate,
		datadog:    DDMetrics{ddTags: ddTags},
	}
}

// Metrics prefixes keys with a package name and guards every bump against panics.
type Metrics struct {
	pkgName    string
	sampleRate float64
	datadog    DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) recoverBump(fn string, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(fn+".panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpTime is a special version of BumpHistogram for timers.
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	defer mt.recoverBump("bumptime", key, tags)
	return mt.datadog.BumpTime(mt.key(key), mt.sampleRate, tags...)
}
