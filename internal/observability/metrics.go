// Package observability exposes Prometheus instrumentation for the
// journal processing pipeline.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	entriesCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lifequest",
		Subsystem: "journal",
		Name:      "entries_created_total",
		Help:      "Number of journal entries created.",
	})
	activitiesExtractedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lifequest",
		Subsystem: "journal",
		Name:      "activities_extracted_total",
		Help:      "Number of activities extracted from journal entries, by category.",
	}, []string{"category"})
	expAwardedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lifequest",
		Subsystem: "journal",
		Name:      "exp_awarded_total",
		Help:      "Total EXP awarded across all users.",
	})
	levelUpsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lifequest",
		Subsystem: "leveling",
		Name:      "level_ups_total",
		Help:      "Number of level-ups triggered by journal entries.",
	})
)

func init() {
	prometheus.MustRegister(
		entriesCreatedCounter,
		activitiesExtractedCounter,
		expAwardedCounter,
		levelUpsCounter,
	)
}

// RecordEntryCreated increments the journal entry counter.
func RecordEntryCreated() {
	entriesCreatedCounter.Inc()
}

// RecordActivityExtracted increments the per-category activity counter.
func RecordActivityExtracted(category string) {
	activitiesExtractedCounter.WithLabelValues(category).Inc()
}

// RecordExpAwarded adds the EXP gained by a journal entry to the
// running total.
func RecordExpAwarded(exp int) {
	if exp <= 0 {
		return
	}
	expAwardedCounter.Add(float64(exp))
}

// RecordLevelUp increments the level-up counter.
func RecordLevelUp() {
	levelUpsCounter.Inc()
}
