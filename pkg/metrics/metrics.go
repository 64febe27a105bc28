package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "authgw", Name: "auth_decisions_total", Help: "Authorization outcomes for protected routes."},
		[]string{"outcome"},
	)
	Signups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "authgw", Name: "signups_total", Help: "Signup attempts by result."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AuthDecisions)
	reg.MustRegister(Signups)
}
