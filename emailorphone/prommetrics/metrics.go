package prommetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics implements emailorphone.Metrics using Prometheus.
type PromMetrics struct {
	verdicts    *prometheus.CounterVec
	matchErrors *prometheus.CounterVec
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}

// New creates a PromMetrics instance and registers its collectors.
//
// Metrics registered:
//   - {namespace}_{subsystem}_verdict_total{path} - classified values by accepting path (or "rejected")
//   - {namespace}_{subsystem}_match_errors_total{grammar} - aborted grammar matches, usually timeouts
//
// Returns error if reg is nil or if registration fails (except AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	pm := &PromMetrics{
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "verdict_total", Help: "Email-or-phone verdicts by accepting path",
		}, []string{"path"}),

		matchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "match_errors_total", Help: "Aborted grammar matches by grammar",
		}, []string{"grammar"}),
	}

	for _, c := range []prometheus.Collector{pm.verdicts, pm.matchErrors} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}

	return pm, nil
}

func (p *PromMetrics) ObserveVerdict(path string) {
	p.verdicts.WithLabelValues(path).Inc()
}

func (p *PromMetrics) IncMatchError(grammar string) {
	p.matchErrors.WithLabelValues(grammar).Inc()
}
