// Package tui is an interactive browser over the registered lessons.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/runner"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenResult
)

type lessonItem struct {
	lesson *registry.Lesson
}

func (i lessonItem) Title() string       { return i.lesson.ID() }
func (i lessonItem) Description() string { return i.lesson.Title }
func (i lessonItem) FilterValue() string { return i.lesson.ID() + " " + i.lesson.Title }

type resultMsg struct {
	result *runner.Result
}

type model struct {
	theme  Theme
	ctx    context.Context
	runner *runner.Runner

	scr    screen
	menu   list.Model
	active *registry.Lesson
	result *runner.Result
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, reg *registry.Registry, run *runner.Runner) error {
	p := tea.NewProgram(newModel(ctx, reg, run), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, reg *registry.Registry, run *runner.Runner) model {
	all := reg.All()
	items := make([]list.Item, 0, len(all))
	for _, l := range all {
		items = append(items, lessonItem{lesson: l})
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 20)
	l.Title = "langtour"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  DefaultTheme(),
		ctx:    ctx,
		runner: run,
		scr:    screenHome,
		menu:   l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) runLesson(l *registry.Lesson) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.runner.RunOne(m.ctx, registry.Entry{Lesson: l, Expect: l.Expect})}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case resultMsg:
		m.result = msg.result
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		// Let the filter input have every key while the user is typing.
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(lessonItem)
				if !ok {
					return m, nil
				}
				m.active = it.lesson
				m.result = nil
				m.scr = screenRunning
				return m, m.runLesson(it.lesson)
			}

		case "esc", "b":
			if m.scr == screenResult {
				m.scr = screenHome
				m.active = nil
				m.result = nil
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("langtour") + "\n" +
		m.theme.Subtitle.Render("Go fundamentals, one runnable lesson at a time") + "\n"

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenRunning:
		return wrap.Render(header + "\n" + m.theme.Card.Render("Running "+m.active.ID()+"..."))

	case screenResult:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.resultCard()))

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) resultCard() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.active.Title) + "\n")
	if m.active.Summary != "" {
		b.WriteString(m.theme.Subtitle.Render(m.active.Summary) + "\n")
	}
	b.WriteString("\n")

	for _, e := range m.result.Output {
		if e.Stream == console.Stderr {
			b.WriteString(m.theme.Stderr.Render(e.Text) + "\n")
			continue
		}
		b.WriteString(e.Text + "\n")
	}

	b.WriteString("\n")
	switch m.result.Status {
	case runner.StatusPassed, runner.StatusRan:
		b.WriteString(m.theme.Pass.Render(fmt.Sprintf("✓ %s in %s", m.result.Status, m.result.Duration)))
	default:
		b.WriteString(m.theme.Fail.Render(fmt.Sprintf("✗ %s", m.result.Status)))
		if m.result.Error != "" {
			b.WriteString("\n" + m.theme.Fail.Render(m.result.Error))
		}
		if m.result.Diff != "" {
			b.WriteString("\n" + m.result.Diff)
		}
	}
	b.WriteString("\n\n" + m.theme.Help.Render("esc/b back • q quit"))
	return b.String()
}
