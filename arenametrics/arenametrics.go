// Package arenametrics exports arena events and slot usage to Prometheus.
//
// Observer counts structural events and is passed to an arena with
// genarena.WithObserver. Collector reports point-in-time gauges from any
// StatsSource and is registered like any other prometheus.Collector.
package arenametrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/genarena"
)

const namespace = "genarena"

// Observer implements genarena.Observer with Prometheus counters.
type Observer struct {
	retired   prometheus.Counter
	grown     prometheus.Counter
	overflows prometheus.Counter
	capacity  prometheus.Gauge
}

var _ genarena.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its metrics with reg.
// constLabels are attached to every metric, e.g. to tell arenas apart.
func NewObserver(reg prometheus.Registerer, constLabels prometheus.Labels) *Observer {
	f := promauto.With(reg)
	return &Observer{
		retired: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "slots_retired_total",
			Help:        "Slots permanently retired after version exhaustion.",
			ConstLabels: constLabels,
		}),
		grown: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "storage_grows_total",
			Help:        "Reallocations of slot storage.",
			ConstLabels: constLabels,
		}),
		overflows: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "key_overflows_total",
			Help:        "Inserts rejected because the slot index did not fit the key type.",
			ConstLabels: constLabels,
		}),
		capacity: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "storage_capacity_slots",
			Help:        "Slot capacity after the most recent reallocation.",
			ConstLabels: constLabels,
		}),
	}
}

func (o *Observer) SlotRetired(int) {
	o.retired.Inc()
}

func (o *Observer) StorageGrown(_, to int) {
	o.grown.Inc()
	o.capacity.Set(float64(to))
}

func (o *Observer) KeyOverflow(int) {
	o.overflows.Inc()
}

// StatsSource is anything that reports arena slot usage.
// *genarena.Arena, *syncarena.Arena and *syncarena.Sharded satisfy it.
type StatsSource interface {
	Stats() genarena.Stats
}

// Collector exports the Stats of a source as gauges on every scrape.
// The source must be safe to read from the scraping goroutine; wrap plain
// arenas in a syncarena.Arena.
type Collector struct {
	src StatsSource

	live     *prometheus.Desc
	capacity *prometheus.Desc
	slots    *prometheus.Desc
	vacant   *prometheus.Desc
	retired  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector for src.
func NewCollector(src StatsSource, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels)
	}
	return &Collector{
		src:      src,
		live:     desc("live_values", "Occupied slots."),
		capacity: desc("capacity_slots", "Allocated slot capacity."),
		slots:    desc("slots", "Slots ever handed out."),
		vacant:   desc("vacant_slots", "Slots on the free list."),
		retired:  desc("retired_slots", "Slots permanently out of circulation."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.capacity
	ch <- c.slots
	ch <- c.vacant
	ch <- c.retired
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	gauge(c.live, st.Len)
	gauge(c.capacity, st.Capacity)
	gauge(c.slots, st.Slots)
	gauge(c.vacant, st.Vacant)
	gauge(c.retired, st.Retired)
}
