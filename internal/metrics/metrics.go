package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout tracks finalization outcomes and compensation runs.
type Checkout struct {
	Finalizations *prometheus.CounterVec
	Compensations prometheus.Counter
}

func NewCheckout() *Checkout {
	finalizations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "finalize_total",
		Help:      "Total number of finalize attempts by outcome.",
	}, []string{"outcome"})
	compensations := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "checkout",
		Name:      "compensations_total",
		Help:      "Total number of stock compensation runs after a failed commit phase.",
	})

	prometheus.MustRegister(finalizations, compensations)
	return &Checkout{Finalizations: finalizations, Compensations: compensations}
}

// ObserveFinalize is nil-safe so tests can run without a registry.
func (m *Checkout) ObserveFinalize(outcome string) {
	if m == nil {
		return
	}
	m.Finalizations.WithLabelValues(outcome).Inc()
}

func (m *Checkout) ObserveCompensation() {
	if m == nil {
		return
	}
	m.Compensations.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
