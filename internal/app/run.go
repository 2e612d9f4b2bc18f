package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/report"
	"github.com/vk/langtour/internal/runner"
)

// ErrLessonsFailed is returned when at least one lesson errored or, with
// verification on, printed something other than its documented output.
var ErrLessonsFailed = errors.New("lessons failed")

// Run executes the plan, narrowed to the configured selectors, and writes the
// report to the App's output.
func (a *App) Run(ctx context.Context) (*runner.Report, error) {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	entries, err := a.registry.Resolve(a.plan, a.cfg.Selectors)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		a.logger.Warn("No lessons selected, nothing to run.")
		return &runner.Report{}, nil
	}

	a.logger.Info("🚀 Running lessons...", "count", len(entries), "workers", a.cfg.Workers)
	rep, runErr := a.newRunner(a.cfg.Workers).Run(ctx, entries)
	if rep != nil {
		if err := report.Write(a.outW, rep, report.Format(a.cfg.Format)); err != nil {
			return rep, fmt.Errorf("failed to write report: %w", err)
		}
	}
	if runErr != nil {
		return rep, runErr
	}

	if failed := rep.Failed(); failed > 0 {
		a.logger.Error("Some lessons failed.", "failed", failed, "total", len(rep.Results))
		return rep, fmt.Errorf("%d of %d lessons: %w", failed, len(rep.Results), ErrLessonsFailed)
	}
	a.logger.Info("🏁 Run finished.", "lessons", len(rep.Results), "run_id", rep.RunID)
	return rep, nil
}

// Show runs one lesson, streaming its output under a short header.
func (a *App) Show(ctx context.Context, selector string) (*runner.Result, error) {
	ctx = a.context(ctx)

	sel, err := registry.ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	if sel.Lesson == "" {
		return nil, fmt.Errorf("show needs 'topic/lesson', got %q", selector)
	}
	l, ok := a.registry.Lookup(sel.Topic, sel.Lesson)
	if !ok {
		return nil, fmt.Errorf("unknown lesson '%s'", selector)
	}

	// The plan may override the expectation; a plan that skips the lesson
	// leaves the documented one in place.
	entry := registry.Entry{Lesson: l, Expect: l.Expect}
	if entries, err := a.registry.Resolve(a.plan, []string{selector}); err == nil && len(entries) == 1 {
		entry = entries[0]
	}

	fmt.Fprintf(a.outW, "# %s (%s)\n", l.Title, l.ID())
	if l.Summary != "" {
		fmt.Fprintln(a.outW, l.Summary)
	}
	fmt.Fprintln(a.outW)

	r := runner.New(runner.Options{
		Workers: 1,
		Timeout: a.cfg.Timeout,
		Verify:  a.cfg.Verify,
		Metrics: a.metrics,
		Tee:     a.outW,
	})
	res := r.RunOne(ctx, entry)

	switch res.Status {
	case runner.StatusErrored:
		return res, fmt.Errorf("lesson %s: %w", l.ID(), res.Err())
	case runner.StatusFailed:
		fmt.Fprintf(a.outW, "\noutput differs (-expect +got):\n%s", res.Diff)
		return res, fmt.Errorf("lesson %s: %w", l.ID(), ErrLessonsFailed)
	}
	return res, nil
}
