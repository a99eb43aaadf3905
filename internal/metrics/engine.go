package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	swipesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchengine",
			Name:      "swipes_recorded_total",
			Help:      "Total number of swipes recorded",
		},
		[]string{"decision"},
	)

	undosPerformed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "matchengine",
			Name:      "swipe_undos_total",
			Help:      "Total number of swipe undos performed",
		},
	)

	matchesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "matchengine",
			Name:      "matches_created_total",
			Help:      "Total number of matches created",
		},
	)
)

func init() {
	prometheus.MustRegister(swipesRecorded)
	prometheus.MustRegister(undosPerformed)
	prometheus.MustRegister(matchesCreated)
}

// RecordSwipe counts one recorded swipe by decision ("like" or "pass").
func RecordSwipe(liked bool) {
	decision := "pass"
	if liked {
		decision = "like"
	}
	swipesRecorded.WithLabelValues(decision).Inc()
}

// RecordUndo counts one performed undo.
func RecordUndo() {
	undosPerformed.Inc()
}

// RecordMatch counts one created match.
func RecordMatch() {
	matchesCreated.Inc()
}
