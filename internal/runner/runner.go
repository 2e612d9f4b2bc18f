package runner

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/ctxlog"
	"github.com/vk/langtour/internal/metrics"
	"github.com/vk/langtour/internal/registry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/vk/langtour/internal/runner"

// DefaultTimeout bounds a lesson when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Options configures a Runner.
type Options struct {
	Workers int
	Timeout time.Duration
	Verify  bool
	Metrics *metrics.Metrics
	// Tracer defaults to the global OpenTelemetry provider's tracer.
	Tracer trace.Tracer
	// Tee, when set, receives each lesson's output live. Only sensible with
	// a single worker.
	Tee io.Writer
}

// Runner runs lessons.
type Runner struct {
	opts   Options
	tracer trace.Tracer
}

// New creates a Runner. Workers below one are treated as one.
func New(opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Runner{opts: opts, tracer: tracer}
}

// Run executes entries and returns a report with one result per entry, in
// entry order. Lesson failures are recorded in the report; the error is only
// non-nil when ctx is cancelled before every lesson ran.
func (r *Runner) Run(ctx context.Context, entries []registry.Entry) (*Report, error) {
	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Verified:  r.opts.Verify,
		Results:   make([]*Result, len(entries)),
	}
	ctx, logger := ctxlog.With(ctx, "run_id", report.RunID.String())
	logger.Debug("Run started.", "lessons", len(entries), "workers", r.opts.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, entry := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = r.RunOne(gctx, entry)
			return nil
		})
	}
	err := g.Wait()
	report.EndedAt = time.Now()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		report.Results = slices.DeleteFunc(report.Results, func(res *Result) bool { return res == nil })
		logger.Warn("Run interrupted.", "error", err, "completed", len(report.Results))
		return report, fmt.Errorf("run interrupted: %w", err)
	}

	logger.Debug("Run finished.", "failed", report.Failed(), "duration", report.EndedAt.Sub(report.StartedAt))
	return report, nil
}

// RunOne executes a single lesson with its own console and deadline.
func (r *Runner) RunOne(ctx context.Context, entry registry.Entry) *Result {
	l := entry.Lesson
	ctx, logger := ctxlog.With(ctx, "lesson", l.ID())
	ctx, span := r.tracer.Start(ctx, "lesson "+l.ID(), trace.WithAttributes(
		attribute.String("lesson.topic", l.Topic),
		attribute.String("lesson.name", l.Name),
	))
	defer span.End()

	done := r.opts.Metrics.Started()
	defer done()

	res := &Result{Topic: l.Topic, Name: l.Name, Title: l.Title, Expect: entry.Expect}
	c := console.New(r.opts.Tee)

	start := time.Now()
	res.err = r.invoke(ctx, l, c)
	res.Duration = time.Since(start)
	res.Output = c.Entries()

	switch {
	case res.err != nil:
		res.Status = StatusErrored
		res.Error = res.err.Error()
		span.RecordError(res.err)
		span.SetStatus(codes.Error, "lesson errored")
		logger.Error("Lesson errored.", "error", res.err)
	case !r.opts.Verify:
		res.Status = StatusRan
	default:
		res.Diff = cmp.Diff(entry.Expect, res.Lines())
		if res.Diff == "" {
			res.Status = StatusPassed
		} else {
			res.Status = StatusFailed
			span.SetStatus(codes.Error, "output mismatch")
			logger.Warn("Lesson output differs from expectation.")
		}
	}

	span.SetAttributes(attribute.String("lesson.status", string(res.Status)))
	r.opts.Metrics.ObserveLesson(l.Topic, res.outcome(), res.Duration)
	logger.Debug("Lesson finished.", "status", res.Status, "duration", res.Duration)
	return res
}

// invoke calls the lesson body in its own goroutine so that a lesson which
// ignores its context still cannot hold the worker past the deadline.
func (r *Runner) invoke(ctx context.Context, l *registry.Lesson, c *console.Console) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				ctxlog.FromContext(ctx).Debug("Lesson panicked.", "stack", string(debug.Stack()))
				errCh <- fmt.Errorf("lesson panicked: %v", p)
			}
		}()
		errCh <- l.Run(ctx, c)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return fmt.Errorf("lesson did not finish: %w", ctx.Err())
	}
}
