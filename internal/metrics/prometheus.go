package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store label values
const (
	StoreConsumption = "consumption"
	StoreMeasure     = "measure"
)

// Operation label values
const (
	OpAdd    = "add"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Result label values
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultOverwrite = "overwrite"
)

// Metrics holds all Prometheus metrics for the energy record stores
type Metrics struct {
	StoreOperationsTotal *prometheus.CounterVec
	StoreRecords         *prometheus.GaugeVec

	// System metrics
	MemoryUsageBytes prometheus.Gauge
	GoroutinesTotal  prometheus.Gauge
}

// NewMetrics creates all metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func NewMetrics(nodeID string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := prometheus.Labels{"node_id": nodeID}

	return &Metrics{
		StoreOperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "energydb",
			Subsystem:   "store",
			Name:        "operations_total",
			Help:        "Total number of store operations by store, operation and result",
			ConstLabels: labels,
		}, []string{"store", "op", "result"}),
		StoreRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "energydb",
			Subsystem:   "store",
			Name:        "records",
			Help:        "Current number of records held by each store",
			ConstLabels: labels,
		}, []string{"store"}),

		MemoryUsageBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "energydb",
			Subsystem:   "system",
			Name:        "memory_usage_bytes",
			Help:        "Current memory usage in bytes",
			ConstLabels: labels,
		}),
		GoroutinesTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   "energydb",
			Subsystem:   "system",
			Name:        "goroutines_total",
			Help:        "Current number of goroutines",
			ConstLabels: labels,
		}),
	}
}

// RecordOperation records a single store operation
func (m *Metrics) RecordOperation(store, op, result string) {
	m.StoreOperationsTotal.WithLabelValues(store, op, result).Inc()
}

// UpdateRecordCount sets the current record count of a store
func (m *Metrics) UpdateRecordCount(store string, count int) {
	m.StoreRecords.WithLabelValues(store).Set(float64(count))
}

// UpdateSystemStats updates system-level statistics
func (m *Metrics) UpdateSystemStats(memoryUsage int64, goroutines int) {
	m.MemoryUsageBytes.Set(float64(memoryUsage))
	m.GoroutinesTotal.Set(float64(goroutines))
}
