// Package metrics holds the Prometheus collectors of a tour run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels a finished lesson.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeErrored Outcome = "errored"
	OutcomeRan     Outcome = "ran" // run without verification
)

// Metrics provides observability for lesson runs.
type Metrics struct {
	// Lessons run, by topic and outcome
	LessonsRun *prometheus.CounterVec

	// Lesson wall time by topic
	LessonDuration *prometheus.HistogramVec

	// Lessons currently running
	InFlight prometheus.Gauge
}

// New registers the collectors on reg. Each App owns its registry, so two
// instances in one process never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LessonsRun: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "langtour_lessons_run_total",
			Help: "Total lessons run by topic and outcome",
		}, []string{"topic", "outcome"}),

		LessonDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "langtour_lesson_duration_seconds",
			Help:    "Duration of a single lesson run",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"topic"}),

		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "langtour_lessons_in_flight",
			Help: "Lessons currently running",
		}),
	}
}

// ObserveLesson records a finished lesson.
func (m *Metrics) ObserveLesson(topic string, outcome Outcome, d time.Duration) {
	if m != nil {
		m.LessonsRun.WithLabelValues(topic, string(outcome)).Inc()
		m.LessonDuration.WithLabelValues(topic).Observe(d.Seconds())
	}
}

// Started marks a lesson as running. The returned func marks it done.
func (m *Metrics) Started() func() {
	if m == nil {
		return func() {}
	}
	m.InFlight.Inc()
	return m.InFlight.Dec
}
