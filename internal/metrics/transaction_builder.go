package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	builderBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_builder",
		Name:      "build_total",
		Help:      "Count of transaction builds and fee queries.",
	}, []string{"kind", "network", "status"})

	builderBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_builder",
		Name:      "build_duration_seconds",
		Help:      "Duration of transaction builds and fee queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "network", "status"})
)

// TransactionBuilder tracks metrics for building wallet transactions.
type TransactionBuilder struct {
	network model.Network
}

// NewTransactionBuilder constructs a TransactionBuilder with defaults.
func NewTransactionBuilder(network model.Network) *TransactionBuilder {
	if network == "" {
		network = "unknown"
	}
	return &TransactionBuilder{network: network}
}

// ObserveBuild records one build of the given kind.
func (m TransactionBuilder) ObserveBuild(kind string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	builderBuildTotal.WithLabelValues(kind, string(m.network), status).Inc()
	builderBuildDuration.WithLabelValues(kind, string(m.network), status).Observe(time.Since(started).Seconds())
}
