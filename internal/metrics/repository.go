package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_repository",
		Name:      "operations_total",
		Help:      "Count of wallet storage operations.",
	}, []string{"operation", "backend", "network", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "wallet_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet storage operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "backend", "network", "status"})
)

// Repository tracks metrics for one wallet storage backend.
type Repository struct {
	backend string
	network model.Network
}

// NewRepository creates a Repository metrics collector.
func NewRepository(backend string, network model.Network) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Repository{backend: backend, network: network}
}

// Observe records duration and status of a storage operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	repositoryRequestsTotal.WithLabelValues(operation, m.backend, string(m.network), status).Inc()
	repositoryRequestDuration.WithLabelValues(operation, m.backend, string(m.network), status).Observe(time.Since(started).Seconds())
}
