package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	packagesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "sensor",
		Name:      "packages_processed_total",
		Help:      "Sensor packages successfully turned into workout summaries.",
	}, []string{"workout_type"})
	packagesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "sensor",
		Name:      "packages_rejected_total",
		Help:      "Sensor packages rejected before a summary could be computed.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(packagesProcessed, packagesRejected)
}

// RecordPackageProcessed counts one successfully summarized package.
func RecordPackageProcessed(workoutType string) {
	packagesProcessed.WithLabelValues(workoutType).Inc()
}

// RecordPackageRejected counts one rejected package by rejection reason.
func RecordPackageRejected(reason string) {
	packagesRejected.WithLabelValues(reason).Inc()
}
