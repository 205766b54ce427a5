package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunSpinner renders a spinner while the action runs and returns the
// action's error. Commands fall back to calling the action directly when
// output is not a terminal.
func RunSpinner(ctx context.Context, title string, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newSpinnerModel(ctx, title)
	done := make(chan error, 1)
	go func() { done <- action() }()

	p := tea.NewProgram(m)
	go func() {
		select {
		case err := <-done:
			p.Send(actionDoneMsg{err: err})
		case <-ctx.Done():
			p.Send(actionDoneMsg{err: ctx.Err()})
		}
	}()

	out, err := p.Run()
	if err != nil {
		return err
	}
	if final, ok := out.(*spinnerModel); ok {
		return final.err
	}
	return nil
}

type actionDoneMsg struct{ err error }

type spinnerModel struct {
	ctx   context.Context
	title string
	spin  spinner.Model
	done  bool
	err   error
	style lipgloss.Style
}

func newSpinnerModel(ctx context.Context, title string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		ctx:   ctx,
		title: title,
		spin:  s,
		style: lipgloss.NewStyle().Padding(0, 1),
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = fmt.Errorf("operation canceled")
			m.done = true
			return m, tea.Quit
		}
	case actionDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return m.style.Render("✗ "+m.title) + "\n"
		}
		return m.style.Render("✓ "+m.title) + "\n"
	}
	return m.style.Render(m.spin.View() + " " + m.title)
}

// WithTimeout derives a context commands can hand to RunSpinner so a hung
// filesystem does not wedge the UI.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}
