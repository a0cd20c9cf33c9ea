// Package metrics exposes evaluator activity as Prometheus metrics.
package metrics

import (
	"fmt"

	"rgehrsitz/reflex/pkg/runtime"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "reflex"
	subsystem = "evaluator"
)

// Collector implements runtime.Observer on top of Prometheus collectors.
type Collector struct {
	evaluationsTotal *prometheus.CounterVec
	matchesTotal     *prometheus.CounterVec
	conditionErrors  *prometheus.CounterVec
	actionErrors     *prometheus.CounterVec
	rules            *prometheus.GaugeVec
}

var _ runtime.Observer = (*Collector)(nil)

// NewCollector creates the evaluator metrics and registers them with reg.
// A nil registerer yields a nil collector, which is safe to use.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, nil
	}

	c := &Collector{
		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Total Evaluate calls by result",
		}, []string{"result"}),

		matchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "matches_total",
			Help:      "Total rule firings by rule name",
		}, []string{"rule"}),

		conditionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "condition_errors_total",
			Help:      "Condition checks that failed and were treated as no match",
		}, []string{"rule"}),

		actionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "action_errors_total",
			Help:      "Actions that failed after their condition matched",
		}, []string{"rule"}),

		rules: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rules",
			Help:      "Rules held by each evaluator",
		}, []string{"evaluator"}),
	}

	for _, collector := range []prometheus.Collector{
		c.evaluationsTotal,
		c.matchesTotal,
		c.conditionErrors,
		c.actionErrors,
		c.rules,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register evaluator metrics: %w", err)
		}
	}

	return c, nil
}

func (c *Collector) RuleAdded(evaluator string, total int) {
	if c == nil {
		return
	}
	c.rules.WithLabelValues(evaluator).Set(float64(total))
}

func (c *Collector) Evaluated(outcome runtime.Outcome) {
	if c == nil {
		return
	}
	if !outcome.Matched {
		c.evaluationsTotal.WithLabelValues("no_match").Inc()
		return
	}
	c.evaluationsTotal.WithLabelValues("match").Inc()
	c.matchesTotal.WithLabelValues(outcome.Rule).Inc()
}

func (c *Collector) ConditionFailed(rule string) {
	if c == nil {
		return
	}
	c.conditionErrors.WithLabelValues(rule).Inc()
}

func (c *Collector) ActionFailed(rule string) {
	if c == nil {
		return
	}
	c.evaluationsTotal.WithLabelValues("error").Inc()
	c.actionErrors.WithLabelValues(rule).Inc()
}
