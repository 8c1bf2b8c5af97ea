package domain

import (
	"strings"
	"time"
)

const commandOutputPrefix = "Command output:\n"

type CommandResult struct {
	Directive Directive
	ExitError string
	Stderr    string
	Stdout    string
	Duration  time.Duration
}

func (r CommandResult) Failed() bool {
	return r.ExitError != ""
}

// Render formats the result the way it is fed back to the models.
func (r CommandResult) Render() string {
	var b strings.Builder
	b.WriteString("Command: ")
	b.WriteString(string(r.Directive))
	b.WriteString("\n")
	if r.ExitError != "" {
		b.WriteString("Error: ")
		b.WriteString(r.ExitError)
		b.WriteString("\n")
	}
	if r.Stderr != "" {
		b.WriteString("stderr:\n")
		b.WriteString(r.Stderr)
		b.WriteString("\n")
	}
	if r.Stdout != "" {
		b.WriteString("stdout:\n")
		b.WriteString(r.Stdout)
		b.WriteString("\n")
	}

	return b.String()
}

func (r CommandResult) Message() Message {
	return AssistantMessage(commandOutputPrefix + r.Render())
}

type BlockedDirective struct {
	Directive Directive
	Rule      string
}

type ExecutionReport struct {
	Results []CommandResult
	Blocked []BlockedDirective
}

// Summary concatenates every rendered result, used as the outcome of a turn
// in the experience log.
func (r ExecutionReport) Summary() string {
	parts := make([]string, 0, len(r.Results)+len(r.Blocked))
	for _, result := range r.Results {
		parts = append(parts, result.Render())
	}
	for _, blocked := range r.Blocked {
		parts = append(parts, "Blocked: "+string(blocked.Directive)+" ("+blocked.Rule+")\n")
	}

	return strings.Join(parts, "\n")
}
