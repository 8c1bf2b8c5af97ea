package console

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/application"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderRosterView(status application.RosterStatus, s styles) string {
	roster := status.Roster
	lines := []string{
		s.title.Render("Council Roster"),
		s.header.Render(fmt.Sprintf("endpoints: %d  personas: %d  moderator: %s  evaluator: %s",
			len(roster.Endpoints), len(roster.Personas), roster.Moderator, roster.Evaluator)),
	}
	if len(roster.Fallback) > 0 {
		lines = append(lines, s.header.Render("quick fallback: "+strings.Join(roster.Fallback, " -> ")))
	}

	if len(status.Endpoints) == 0 {
		lines = append(lines, s.empty.Render("No endpoints configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, endpoint := range status.Endpoints {
		lines = append(lines, s.section.Render(renderEndpoint(endpoint, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEndpoint(status application.EndpointStatus, s styles) string {
	endpoint := status.Endpoint
	title := s.endpoint.Render(endpoint.Name)
	if tags := endpointTags(status); len(tags) > 0 {
		title += " " + s.tag.Render("["+strings.Join(tags, ", ")+"]")
	}

	parts := []string{
		title,
		s.detail.Render(fmt.Sprintf("kind: %s  model: %s", endpoint.Kind, endpoint.Model)),
	}
	if endpoint.BaseURL != "" {
		parts = append(parts, s.detail.Render("base url: "+endpoint.BaseURL))
	}
	if endpoint.Region != "" {
		parts = append(parts, s.detail.Render("region: "+endpoint.Region))
	}
	parts = append(parts, s.detail.Render(fmt.Sprintf("timeout: %s  max tokens: %d", endpoint.Timeout, endpoint.MaxTokens)))
	parts = append(parts, keyLine(status, s))
	if len(status.Personas) > 0 {
		parts = append(parts, s.detail.Render("personas: "+strings.Join(status.Personas, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func endpointTags(status application.EndpointStatus) []string {
	var tags []string
	if status.Moderator {
		tags = append(tags, "moderator")
	}
	if status.Evaluator {
		tags = append(tags, "evaluator")
	}
	if status.Fallback > 0 {
		tags = append(tags, fmt.Sprintf("fallback #%d", status.Fallback))
	}
	if status.Endpoint.Optional {
		tags = append(tags, "optional")
	}
	return tags
}

func keyLine(status application.EndpointStatus, s styles) string {
	switch status.KeySource {
	case "":
		return s.warning.Render(fmt.Sprintf("key: missing (set %s)", status.Endpoint.APIKeyEnv))
	case "none":
		return s.detail.Render("key: not required")
	default:
		return s.detail.Render(fmt.Sprintf("key: %s (%s)", status.KeySource, status.Endpoint.APIKeyEnv))
	}
}

// RenderTranscript formats messages for reading. System messages are shown
// only when includeSystem is set.
func RenderTranscript(messages []domain.Message, includeSystem bool) string {
	s := newStyles()
	var lines []string
	for _, msg := range messages {
		if msg.Role == domain.RoleSystem && !includeSystem {
			continue
		}
		style, ok := s.role[string(msg.Role)]
		if !ok {
			style = s.detail
		}
		lines = append(lines, style.Render(string(msg.Role)+":"), msg.Content, "")
	}
	if len(lines) == 0 {
		return s.empty.Render("Transcript is empty.")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func RenderTranscriptJSON(messages []domain.Message) (string, error) {
	if messages == nil {
		messages = []domain.Message{}
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	return string(data), nil
}
