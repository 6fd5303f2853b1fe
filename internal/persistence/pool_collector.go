package persistence

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolCollector exports pgx pool statistics as Prometheus gauges and counters.
type PoolCollector struct {
	pool *pgxpool.Pool

	acquired   *prometheus.Desc
	idle       *prometheus.Desc
	total      *prometheus.Desc
	max        *prometheus.Desc
	acquires   *prometheus.Desc
	emptyWaits *prometheus.Desc
}

// NewPoolCollector describes the pool metrics under namespace.
func NewPoolCollector(namespace string, pool *pgxpool.Pool) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", name), help, nil, nil)
	}
	return &PoolCollector{
		pool:       pool,
		acquired:   desc("acquired_conns", "Connections currently checked out."),
		idle:       desc("idle_conns", "Idle connections."),
		total:      desc("total_conns", "Open connections."),
		max:        desc("max_conns", "Configured pool size."),
		acquires:   desc("acquires_total", "Successful connection acquisitions."),
		emptyWaits: desc("empty_acquires_total", "Acquisitions that had to wait for a connection."),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquires
	ch <- c.emptyWaits
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	if c.pool == nil {
		return
	}
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.emptyWaits, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
}
