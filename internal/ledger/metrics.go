package ledger

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var metrics = []prometheus.Collector{
	mutationCount,
}

var mutationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_mutations_total",
		Help: "How many ledger mutations were executed, partitioned by operation and result.",
	},
	[]string{"operation", "result"},
)

// RegisterMetrics registers all ledger metrics with the default registry.
func RegisterMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

// UnregisterMetrics unregisters all ledger metrics.
//
// This is needed so that tests can set up more than one engine.
func UnregisterMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}

func countMutation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	mutationCount.WithLabelValues(operation, result).Inc()
}
