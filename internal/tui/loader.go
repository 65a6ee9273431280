package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a running task.
var ErrCancelled = errors.New("cancelled")

type taskDoneMsg[T any] struct {
	result T
	err    error
}

type loaderModel[T any] struct {
	label   string
	run     func(ctx context.Context) (T, error)
	ctx     context.Context
	cancel  context.CancelFunc
	spinner spinner.Model
	result  T
	err     error
	done    bool
}

func newLoader[T any](ctx context.Context, label string, run func(ctx context.Context) (T, error)) loaderModel[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	ctx, cancel := context.WithCancel(ctx)
	return loaderModel[T]{label: label, run: run, ctx: ctx, cancel: cancel, spinner: s}
}

func (m loaderModel[T]) Init() tea.Cmd {
	return tea.Batch(m.doRun(), m.spinner.Tick)
}

func (m loaderModel[T]) doRun() tea.Cmd {
	run, ctx := m.run, m.ctx
	return func() tea.Msg {
		result, err := run(ctx)
		return taskDoneMsg[T]{result: result, err: err}
	}
}

func (m loaderModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg[T]:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = ErrCancelled
			m.cancel()
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loaderModel[T]) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s...\n", m.spinner.View(), m.label)
}

// RunLoader shows a spinner while run executes. It renders inline (no alt screen).
func RunLoader[T any](ctx context.Context, label string, run func(ctx context.Context) (T, error)) (T, error) {
	m := newLoader(ctx, label, run)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		m.cancel()
		var zero T
		return zero, err
	}
	final := result.(loaderModel[T])
	return final.result, final.err
}
