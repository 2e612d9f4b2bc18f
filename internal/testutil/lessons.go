package testutil

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/registry"
)

// NewRegistry returns a registry with every module registered.
func NewRegistry(modules ...registry.Module) *registry.Registry {
	r := registry.New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RunLesson runs l on a fresh console and returns everything it printed,
// stdout and stderr interleaved in order.
func RunLesson(t *testing.T, l *registry.Lesson) []string {
	t.Helper()

	c := console.New(nil)
	require.NoError(t, l.Run(context.Background(), c), "lesson %s failed", l.ID())
	return c.Lines()
}

// RunNamed looks up topic/name in m and runs it.
func RunNamed(t *testing.T, m registry.Module, topic, name string) []string {
	t.Helper()

	l, ok := NewRegistry(m).Lookup(topic, name)
	require.True(t, ok, "lesson %s/%s is not registered", topic, name)
	return RunLesson(t, l)
}

// RequireDocumentedOutput registers m and checks, for every lesson it
// contributes, that the printed lines equal the lesson's Expect.
func RequireDocumentedOutput(t *testing.T, m registry.Module) {
	t.Helper()

	r := NewRegistry(m)
	require.NotEmpty(t, r.All(), "module registered no lessons")

	for _, l := range r.All() {
		t.Run(l.Name, func(t *testing.T) {
			t.Parallel()

			got := RunLesson(t, l)
			if diff := cmp.Diff(l.Expect, got); diff != "" {
				t.Errorf("%s output mismatch (-expect +got):\n%s", l.ID(), diff)
			}
		})
	}
}
