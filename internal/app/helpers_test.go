package app

import (
	"context"
	"os"
	"testing"

	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/testutil"
)

// greetModule is a two-lesson module; "broken" prints the wrong line.
type greetModule struct{}

func (greetModule) Register(r *registry.Registry) {
	r.RegisterTopic(&registry.Topic{Key: "greet", Title: "Greetings", Order: 1})
	r.RegisterLesson(&registry.Lesson{
		Topic:   "greet",
		Name:    "hello",
		Title:   "Hello",
		Summary: "Says hello.",
		Expect:  []string{"hello"},
		Run: func(_ context.Context, c *console.Console) error {
			c.Log("hello")
			return nil
		},
	})
	r.RegisterLesson(&registry.Lesson{
		Topic:  "greet",
		Name:   "broken",
		Title:  "Broken",
		Expect: []string{"right"},
		Run: func(_ context.Context, c *console.Console) error {
			c.Log("wrong")
			return nil
		},
	})
}

// setupAppTest creates a new app instance for testing, capturing output and
// logs separately.
func setupAppTest(t *testing.T, cfg *Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	a, err := NewApp(out, logs, cfg, nil, greetModule{})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("LANGTOUR_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}
