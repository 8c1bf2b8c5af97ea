package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	endpoint   lipgloss.Style
	detail     lipgloss.Style
	answer     lipgloss.Style
	quick      lipgloss.Style
	command    lipgloss.Style
	warning    lipgloss.Style
	evaluation lipgloss.Style
	notice     lipgloss.Style
	saved      lipgloss.Style
	goodbye    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	role       map[string]lipgloss.Style
	tag        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		endpoint:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		answer:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		quick:      lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		evaluation: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		saved:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		goodbye:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		role: map[string]lipgloss.Style{
			"system":    lipgloss.NewStyle().Faint(true),
			"user":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
			"assistant": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		},
		tag: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
