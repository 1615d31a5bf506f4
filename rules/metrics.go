package rules

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricNamespace = "jsonlens"
	metricSubsystem = "rules"
)

var (
	labels = []string{"type", "mode"}

	Executions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricNamespace,
		Subsystem: metricSubsystem,
		Name:      "executions_total",
		Help:      "Total number of rule executions",
	}, labels)
	Failures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricNamespace,
		Subsystem: metricSubsystem,
		Name:      "failures_total",
		Help:      "Total number of failed rule executions",
	}, labels)
	Duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricNamespace,
		Subsystem: metricSubsystem,
		Name:      "duration_seconds",
		Help:      "Duration of rule executions",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, labels)
)

func init() {
	prometheus.MustRegister(Executions, Failures, Duration)
}
