package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "staffing"

// Recorder exposes workflow counters on a Prometheus registry.
type Recorder struct {
	transitions    *prometheus.CounterVec
	remoteFailures *prometheus.CounterVec
}

// NewRecorder registers the counters on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_transitions_total",
			Help:      "Lifecycle operations on orders, extensions, substitutions, requests and offers.",
		}, []string{"entity", "action", "result"}),
		remoteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_call_failures_total",
			Help:      "Failed calls to the workflow engine and the provider catalog.",
		}, []string{"collaborator", "operation"}),
	}
	reg.MustRegister(r.transitions, r.remoteFailures)
	return r
}

func (r *Recorder) Transition(entity, action, result string) {
	r.transitions.WithLabelValues(entity, action, result).Inc()
}

func (r *Recorder) RemoteFailure(collaborator, operation string) {
	r.remoteFailures.WithLabelValues(collaborator, operation).Inc()
}
