package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processorProcessTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_processor",
		Name:      "process_total",
		Help:      "Count of processed transaction batches by source.",
	}, []string{"source", "network", "status"})

	processorProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_processor",
		Name:      "process_duration_seconds",
		Help:      "Duration of processing a transaction batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "network", "status"})

	processorTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_processor",
		Name:      "transactions_total",
		Help:      "Count of wallet transactions inserted or relayed.",
	}, []string{"result", "network"})

	processorFilterExpiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "transaction_processor",
		Name:      "filter_expired_total",
		Help:      "Count of processing calls that invalidated the peer filter.",
	}, []string{"network"})
)

// TransactionProcessor tracks metrics for wallet transaction classification.
type TransactionProcessor struct {
	network model.Network
}

// NewTransactionProcessor constructs a TransactionProcessor with defaults.
func NewTransactionProcessor(network model.Network) *TransactionProcessor {
	if network == "" {
		network = "unknown"
	}
	return &TransactionProcessor{network: network}
}

// ObserveProcessReceived records a batch of received transactions.
func (m TransactionProcessor) ObserveProcessReceived(err error, inserted, updated int, started time.Time) {
	m.observe("received", err, started)
	if inserted > 0 {
		processorTransactionsTotal.WithLabelValues("inserted", string(m.network)).Add(float64(inserted))
	}
	if updated > 0 {
		processorTransactionsTotal.WithLabelValues("updated", string(m.network)).Add(float64(updated))
	}
}

// ObserveProcessCreated records bookkeeping of a locally built transaction.
func (m TransactionProcessor) ObserveProcessCreated(err error, started time.Time) {
	m.observe("created", err, started)
	if err == nil {
		processorTransactionsTotal.WithLabelValues("inserted", string(m.network)).Inc()
	}
}

// ObserveFilterExpired records a filter invalidation.
func (m TransactionProcessor) ObserveFilterExpired() {
	processorFilterExpiredTotal.WithLabelValues(string(m.network)).Inc()
}

func (m TransactionProcessor) observe(source string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	processorProcessTotal.WithLabelValues(source, string(m.network), status).Inc()
	processorProcessDuration.WithLabelValues(source, string(m.network), status).Observe(time.Since(started).Seconds())
}
