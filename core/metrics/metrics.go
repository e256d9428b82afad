package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters exported by the reconciliation pipeline.
type Metrics struct {
	PeersImported   *prometheus.CounterVec
	RegistryQueries *prometheus.CounterVec
	Findings        *prometheus.CounterVec
}

// New creates the pipeline counters and registers them with reg.
// A nil reg leaves them unregistered, which is what CLI runs and tests use.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PeersImported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peerdiff_peers_imported_total",
			Help: "Peer records matched during import, by relation and outcome.",
		}, []string{"relation", "outcome"}),
		RegistryQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peerdiff_registry_queries_total",
			Help: "Registry queries, by kind and result.",
		}, []string{"kind", "result"}),
		Findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "peerdiff_findings_total",
			Help: "Reconciliation findings, by kind.",
		}, []string{"kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.PeersImported, m.RegistryQueries, m.Findings)
	}
	return m
}

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
