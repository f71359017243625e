package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the onboarding client.
type Metrics struct {
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec
	FlowTransitions *prometheus.CounterVec
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GatewayRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_gateway_requests_total",
			Help: "Backend calls issued by the gateway, by operation and outcome",
		}, []string{"op", "outcome"}),
		GatewayDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboard_gateway_request_duration_seconds",
			Help:    "Latency of backend calls issued by the gateway",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		FlowTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_flow_transitions_total",
			Help: "Step transitions performed by the flow controller",
		}, []string{"from", "to"}),
	}
}

// ObserveGatewayCall records one finished backend call. Safe on a nil receiver.
func (m *Metrics) ObserveGatewayCall(op, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.GatewayRequests.WithLabelValues(op, outcome).Inc()
	m.GatewayDuration.WithLabelValues(op).Observe(seconds)
}

// IncrementTransition counts a step change. Safe on a nil receiver.
func (m *Metrics) IncrementTransition(from, to string) {
	if m == nil {
		return
	}
	m.FlowTransitions.WithLabelValues(from, to).Inc()
}
