package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/runner"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	reg := registry.New()
	reg.RegisterTopic(&registry.Topic{Key: "greet", Title: "Greetings"})
	reg.RegisterLesson(&registry.Lesson{
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
	return newModel(context.Background(), reg, runner.New(runner.Options{Verify: true}))
}

func press(t *testing.T, m tea.Model, key tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	mm, ok := next.(model)
	require.True(t, ok)
	return mm, cmd
}

func TestEnter_RunsSelectedLessonAndShowsResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	m := newTestModel(t)

	// --- Act ---
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, screenRunning, m.scr)

	next, _ := m.Update(cmd())
	m = next.(model)

	// --- Assert ---
	assert.Equal(t, screenResult, m.scr)
	require.NotNil(t, m.result)
	assert.Equal(t, runner.StatusPassed, m.result.Status)
	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "Says hello.")
}

func TestBack_ReturnsToList(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Update(cmd())
	m = next.(model)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenHome, m.scr)
	assert.Nil(t, m.result)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
