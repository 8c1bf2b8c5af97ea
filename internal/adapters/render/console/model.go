package console

import (
	"errors"
	"io"

	"github.com/bnema/council-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type rosterModel struct {
	status application.RosterStatus
	styles styles
	output string
}

func (m rosterModel) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m rosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderRosterView(m.status, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m rosterModel) View() string {
	return m.output
}

// RenderRoster lays out the roster with its credential status.
func RenderRoster(status application.RosterStatus) (string, error) {
	p := tea.NewProgram(
		rosterModel{status: status, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(rosterModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
