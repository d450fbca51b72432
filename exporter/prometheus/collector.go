// Copyright (c) 2026 ayjmax. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ayjmax/cuckooset/stats"
)

// StatsProvider provides a snapshot of set statistics.
//
// *stats.Counter implements StatsProvider.
type StatsProvider interface {
	Snapshot() stats.Stats
}

// SizeProvider provides the current size and capacity of a set.
//
// *cuckooset.Set implements SizeProvider.
type SizeProvider interface {
	Size() int
	Capacity() int
}

// Collector collects statistics from a set and exposes them to Prometheus.
type Collector struct {
	provider       StatsProvider
	sizes          SizeProvider
	hitsDesc       *prometheus.Desc
	missesDesc     *prometheus.Desc
	addsDesc       *prometheus.Desc
	duplicatesDesc *prometheus.Desc
	removesDesc    *prometheus.Desc
	rejectionsDesc *prometheus.Desc
	kicksDesc      *prometheus.Desc
	resizesDesc    *prometheus.Desc
	sizeDesc       *prometheus.Desc
	capacityDesc   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// Option configures a Collector.
type Option func(c *Collector)

// WithSizeProvider additionally exposes size and capacity gauges
// collected from the given provider.
func WithSizeProvider(sizes SizeProvider) Option {
	return func(c *Collector) {
		c.sizes = sizes
	}
}

// NewCollector creates a new collector for the given set statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - hits
// - misses
// - adds
// - duplicates
// - removes
// - rejections
// - kicks
// - resizes
// - size (only with WithSizeProvider)
// - capacity (only with WithSizeProvider)
func NewCollector(namespace, subsystem string, provider StatsProvider, opts ...Option) *Collector {
	c := &Collector{
		provider: provider,
		hitsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "hits"),
			"Number of membership checks that found the value.",
			nil, nil,
		),
		missesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "misses"),
			"Number of membership checks that did not find the value.",
			nil, nil,
		),
		addsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "adds"),
			"Number of values added to the set.",
			nil, nil,
		),
		duplicatesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "duplicates"),
			"Number of insertions skipped because the value was already present.",
			nil, nil,
		),
		removesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "removes"),
			"Number of values removed from the set.",
			nil, nil,
		),
		rejectionsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "rejections"),
			"Number of insertions rejected with an error.",
			nil, nil,
		),
		kicksDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "kicks"),
			"Number of values displaced between the two tables.",
			nil, nil,
		),
		resizesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "resizes"),
			"Number of times the set doubled its capacity.",
			nil, nil,
		),
		sizeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "size"),
			"Current number of values in the set.",
			nil, nil,
		),
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "capacity"),
			"Current number of slots in each of the set's two tables.",
			nil, nil,
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.hitsDesc
	descs <- c.missesDesc
	descs <- c.addsDesc
	descs <- c.duplicatesDesc
	descs <- c.removesDesc
	descs <- c.rejectionsDesc
	descs <- c.kicksDesc
	descs <- c.resizesDesc
	if c.sizes != nil {
		descs <- c.sizeDesc
		descs <- c.capacityDesc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	snapshot := c.provider.Snapshot()
	metrics <- prometheus.MustNewConstMetric(
		c.hitsDesc, prometheus.CounterValue, float64(snapshot.Hits()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.missesDesc, prometheus.CounterValue, float64(snapshot.Misses()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.addsDesc, prometheus.CounterValue, float64(snapshot.Adds()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.duplicatesDesc, prometheus.CounterValue, float64(snapshot.Duplicates()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.removesDesc, prometheus.CounterValue, float64(snapshot.Removes()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.rejectionsDesc, prometheus.CounterValue, float64(snapshot.Rejections()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.kicksDesc, prometheus.CounterValue, float64(snapshot.Kicks()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.resizesDesc, prometheus.CounterValue, float64(snapshot.Resizes()),
	)
	if c.sizes != nil {
		metrics <- prometheus.MustNewConstMetric(
			c.sizeDesc, prometheus.GaugeValue, float64(c.sizes.Size()),
		)
		metrics <- prometheus.MustNewConstMetric(
			c.capacityDesc, prometheus.GaugeValue, float64(c.sizes.Capacity()),
		)
	}
}
