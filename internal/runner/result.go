package runner

import (
	"time"

	"github.com/google/uuid"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/metrics"
)

// Status is the outcome of one lesson.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed" // output differs from the expectation
	StatusErrored Status = "errored"
	StatusRan     Status = "ran" // verification disabled
)

// Result is what a single lesson produced.
type Result struct {
	Topic    string          `json:"topic"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	Status   Status          `json:"status"`
	Output   []console.Entry `json:"output"`
	Expect   []string        `json:"expect,omitempty"`
	Diff     string          `json:"diff,omitempty"`
	Error    string          `json:"error,omitempty"`
	Duration time.Duration   `json:"duration_ns"`

	err error
}

// ID returns the "topic/name" key of the lesson.
func (r *Result) ID() string {
	return r.Topic + "/" + r.Name
}

// Err returns the error the lesson returned or panicked with.
func (r *Result) Err() error {
	return r.err
}

// OK reports whether the lesson neither errored nor failed verification.
func (r *Result) OK() bool {
	return r.Status == StatusPassed || r.Status == StatusRan
}

// Lines returns the recorded text of the lesson, both streams in order.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.Output))
	for i, e := range r.Output {
		lines[i] = e.Text
	}
	return lines
}

func (r *Result) outcome() metrics.Outcome {
	switch r.Status {
	case StatusPassed:
		return metrics.OutcomePassed
	case StatusFailed:
		return metrics.OutcomeFailed
	case StatusErrored:
		return metrics.OutcomeErrored
	default:
		return metrics.OutcomeRan
	}
}

// Report is the outcome of one run.
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Verified  bool      `json:"verified"`
	Results   []*Result `json:"results"`
}

// Failed counts results that errored or failed verification.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Passed counts results whose output matched.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusPassed {
			n++
		}
	}
	return n
}
