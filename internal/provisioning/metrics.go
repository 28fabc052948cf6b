package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the planner metrics. It is separate from the default
// registry so a dry run can write exactly these series to a text file.
var Registry = prometheus.NewRegistry()

var (
	phaseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eksbp",
			Subsystem: "provisioning",
			Name:      "phases_total",
			Help:      "Total number of provisioning phases run by result",
		},
		[]string{"cluster", "phase", "result"},
	)

	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eksbp",
			Subsystem: "provisioning",
			Name:      "phase_duration_seconds",
			Help:      "Duration of provisioning phases in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
		},
		[]string{"cluster", "phase"},
	)

	plannedResources = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "eksbp",
			Subsystem: "plan",
			Name:      "resources",
			Help:      "Number of resources in the last plan by kind",
		},
		[]string{"cluster", "kind"},
	)
)

func init() {
	Registry.MustRegister(
		phaseTotal,
		phaseDuration,
		plannedResources,
	)
}

// recordPhaseMetric records a phase result.
func recordPhaseMetric(cluster, phase, result string, duration float64) {
	phaseTotal.WithLabelValues(cluster, phase, result).Inc()
	phaseDuration.WithLabelValues(cluster, phase).Observe(duration)
}

// RecordPlannedResources sets the number of planned resources of a kind.
func RecordPlannedResources(cluster, kind string, count int) {
	plannedResources.WithLabelValues(cluster, kind).Set(float64(count))
}

// WriteMetrics writes the planner metrics to path in the Prometheus text format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
