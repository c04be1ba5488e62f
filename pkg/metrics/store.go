package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records mutation traffic and snapshot persistence failures for
// the state containers.
type StoreMetrics struct {
	mutations    *prometheus.CounterVec
	saveFailures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "Mutations applied to a state container.",
	}, []string{"store", "op"})
	saveFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_snapshot_save_failures_total",
		Help: "Snapshot writes that failed after a mutation.",
	}, []string{"store"})
	reg.MustRegister(mutations, saveFailures)
	return &StoreMetrics{
		mutations:    mutations,
		saveFailures: saveFailures,
	}
}

// IncMutation counts one applied mutation for the named store.
func (m *StoreMetrics) IncMutation(store, op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncSaveFailure counts one failed snapshot write for the named store.
func (m *StoreMetrics) IncSaveFailure(store string) {
	if m == nil || m.saveFailures == nil {
		return
	}
	m.saveFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
