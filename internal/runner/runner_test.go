package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/metrics"
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/testutil"
)

func lesson(name string, fn registry.Func, expect ...string) registry.Entry {
	return registry.Entry{
		Lesson: &registry.Lesson{Topic: "test", Name: name, Title: name, Expect: expect, Run: fn},
		Expect: expect,
	}
}

func printing(lines ...string) registry.Func {
	return func(_ context.Context, c *console.Console) error {
		for _, l := range lines {
			c.Log(l)
		}
		return nil
	}
}

func TestRun_VerifiesOutputInEntryOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New(Options{Workers: 4, Verify: true})
	entries := []registry.Entry{
		lesson("slow", func(_ context.Context, c *console.Console) error {
			time.Sleep(20 * time.Millisecond)
			c.Log("slow")
			return nil
		}, "slow"),
		lesson("match", printing("a", "b"), "a", "b"),
		lesson("mismatch", printing("a", "c"), "a", "b"),
	}

	// --- Act ---
	report, err := r.Run(context.Background(), entries)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "test/slow", report.Results[0].ID())
	assert.Equal(t, StatusPassed, report.Results[0].Status)
	assert.Equal(t, StatusPassed, report.Results[1].Status)
	assert.Equal(t, StatusFailed, report.Results[2].Status)
	assert.Contains(t, report.Results[2].Diff, `"c"`)
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 2, report.Passed())
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.False(t, report.EndedAt.Before(report.StartedAt))
}

func TestRun_WithoutVerifyOnlyRecords(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	report, err := r.Run(context.Background(), []registry.Entry{lesson("x", printing("nope"), "yes")})

	require.NoError(t, err)
	assert.Equal(t, StatusRan, report.Results[0].Status)
	assert.Empty(t, report.Results[0].Diff)
	assert.Equal(t, 0, report.Failed())
}

func TestRunOne_RecoversPanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New(Options{Verify: true})
	entry := lesson("boom", func(context.Context, *console.Console) error {
		panic("kaboom")
	})

	// --- Act ---
	res := r.RunOne(context.Background(), entry)

	// --- Assert ---
	assert.Equal(t, StatusErrored, res.Status)
	assert.Contains(t, res.Error, "kaboom")
	assert.False(t, res.OK())
}

func TestRunOne_ReturnedErrorMarksErrored(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("broken lesson")
	r := New(Options{Verify: true})

	res := r.RunOne(context.Background(), lesson("err", func(context.Context, *console.Console) error {
		return sentinel
	}))

	assert.Equal(t, StatusErrored, res.Status)
	assert.ErrorIs(t, res.Err(), sentinel)
}

func TestRunOne_TimesOutLessonsThatIgnoreContext(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	r := New(Options{Timeout: 20 * time.Millisecond, Verify: true})

	// --- Act ---
	start := time.Now()
	res := r.RunOne(context.Background(), lesson("stuck", func(context.Context, *console.Console) error {
		<-release
		return nil
	}))

	// --- Assert ---
	assert.Equal(t, StatusErrored, res.Status)
	assert.ErrorIs(t, res.Err(), context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var running, peak atomic.Int32
	body := func(context.Context, *console.Console) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return nil
	}
	var entries []registry.Entry
	for range 10 {
		entries = append(entries, lesson("w", body))
	}

	// --- Act ---
	_, err := New(Options{Workers: 2}).Run(context.Background(), entries)

	// --- Assert ---
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(Options{}).Run(ctx, []registry.Entry{lesson("a", printing("a"))})

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

func TestRun_RecordsMetrics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := metrics.New(prometheus.NewRegistry())
	r := New(Options{Verify: true, Metrics: m})

	// --- Act ---
	_, err := r.Run(context.Background(), []registry.Entry{
		lesson("ok", printing("x"), "x"),
		lesson("bad", printing("x"), "y"),
	})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.LessonsRun.WithLabelValues("test", "passed")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.LessonsRun.WithLabelValues("test", "failed")))
}

func TestRun_TeeStreamsOutput(t *testing.T) {
	t.Parallel()

	buf := &testutil.SafeBuffer{}
	r := New(Options{Tee: buf})

	_, err := r.Run(context.Background(), []registry.Entry{lesson("a", printing("hello"))})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}
