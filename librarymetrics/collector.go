//go:build !solution

package librarymetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"gitlab.com/rogov-ks/library/library"
)

// Source is anything that reports library occupancy, usually *library.Library.
type Source interface {
	Snapshot() library.Snapshot
	Capacity() int
}

// Collector exports library occupancy as gauges.
// Values are read from the source on every scrape.
type Collector struct {
	src Source

	readersInRoom  *prometheus.Desc
	writersInRoom  *prometheus.Desc
	readersWaiting *prometheus.Desc
	writersWaiting *prometheus.Desc
	capacity       *prometheus.Desc
}

type options struct {
	namespace   string
	constLabels prometheus.Labels
}

type Option func(*options)

// WithNamespace replaces the default "library" metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithConstLabels attaches labels to every exported metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) { o.constLabels = labels }
}

func NewCollector(src Source, opts ...Option) *Collector {
	o := options{namespace: "library"}
	for _, opt := range opts {
		opt(&o)
	}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(o.namespace, "", name), help, nil, o.constLabels)
	}
	return &Collector{
		src:            src,
		readersInRoom:  desc("readers_in_room", "Readers currently inside the library."),
		writersInRoom:  desc("writers_in_room", "Writers currently inside the library."),
		readersWaiting: desc("readers_waiting", "Readers waiting to enter the library."),
		writersWaiting: desc("writers_waiting", "Writers waiting to enter the library."),
		capacity:       desc("capacity", "Number of seats in the library room."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.readersInRoom
	ch <- c.writersInRoom
	ch <- c.readersWaiting
	ch <- c.writersWaiting
	ch <- c.capacity
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Snapshot()
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	gauge(c.readersInRoom, s.ReadersInRoom)
	gauge(c.writersInRoom, s.WritersInRoom)
	gauge(c.readersWaiting, s.ReadersWaiting)
	gauge(c.writersWaiting, s.WritersWaiting)
	gauge(c.capacity, c.src.Capacity())
}
