package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Transition("extension", "approve", "ok")
	r.Transition("extension", "approve", "ok")
	r.Transition("extension", "approve", "INVALID_STATE")
	r.RemoteFailure("catalog", "notify_status")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.transitions.WithLabelValues("extension", "approve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("extension", "approve", "INVALID_STATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.remoteFailures.WithLabelValues("catalog", "notify_status")))
}
