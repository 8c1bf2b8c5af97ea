package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errWorkPanicked = errors.New("work panicked")

// spinnerTask names a long-running step: what it shows while running and the
// line it leaves behind once it succeeds.
type spinnerTask struct {
	working string
	done    string
}

var (
	debateTask    = spinnerTask{working: "The council is debating", done: "The council has spoken"}
	superviseTask = spinnerTask{working: "Rewriting recorded answers", done: "Supervision finished"}
)

type workFinishedMsg struct {
	err       error
	recovered any
}

type progressModel struct {
	spinner   spinner.Model
	task      spinnerTask
	work      tea.Cmd
	started   time.Time
	elapsed   time.Duration
	finished  bool
	err       error
	recovered any
}

func newProgressModel(task spinnerTask, work tea.Cmd, started time.Time) progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
		),
		task:    task,
		work:    work,
		started: started,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workFinishedMsg:
		m.elapsed = time.Since(m.started)
		m.finished = true
		m.err = msg.err
		m.recovered = msg.recovered
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.finished {
		if m.err != nil {
			return ""
		}
		return fmt.Sprintf("%s in %s\n", m.task.done, m.elapsed.Round(100*time.Millisecond))
	}

	return fmt.Sprintf("%s %s... %ds", m.spinner.View(), m.task.working, int(m.elapsed.Seconds()))
}

// runWithSpinner runs work while a spinner with an elapsed counter is drawn on
// output (stderr in practice). A panic inside work is re-raised on the
// caller's goroutine once the program has restored the terminal.
func runWithSpinner(ctx context.Context, output io.Writer, task spinnerTask, work func(context.Context) error) error {
	workCmd := func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = workFinishedMsg{err: errWorkPanicked, recovered: r}
			}
		}()
		return workFinishedMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newProgressModel(task, workCmd, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if result.recovered != nil {
		panic(result.recovered)
	}

	return result.err
}
