package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the tax calculation path.
type Metrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	UnknownStateTotal   prometheus.Counter
}

// New creates a new Metrics instance with all tax API metrics registered.
func New() *Metrics {
	return &Metrics{
		CalculationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealertax_calculations_total",
			Help: "Total number of tax calculations performed",
		}, []string{"state", "deal_type"}),
		CalculationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dealertax_calculation_duration_seconds",
			Help:    "Duration of tax calculation requests",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		UnknownStateTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealertax_unknown_state_requests_total",
			Help: "Requests for states with no implemented rule set",
		}),
	}
}

// IncrementCalculation records a completed calculation for a state and deal type.
func (m *Metrics) IncrementCalculation(state, dealType string) {
	m.CalculationsTotal.WithLabelValues(state, dealType).Inc()
}

// ObserveCalculation records the duration of a calculation request.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCalculation(start time.Time) {
	m.CalculationDuration.Observe(time.Since(start).Seconds())
}

// IncrementUnknownState records a request for an unimplemented state.
func (m *Metrics) IncrementUnknownState() {
	m.UnknownStateTotal.Inc()
}
