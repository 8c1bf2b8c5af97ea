// Package console renders conversation turns, roster status and transcripts
// for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/council-cli/internal/application"
)

const speaker = "Council"

// Printer writes REPL output. Each method writes complete lines.
type Printer struct {
	w      io.Writer
	styles styles
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: newStyles()}
}

func (p *Printer) Turn(report application.TurnReport) {
	if report.NoAnswer {
		p.println(p.styles.warning.Render("No AI response."))
		return
	}

	p.println(p.styles.answer.Render(fmt.Sprintf("%s: %s", speaker, report.Answer)))

	for _, blocked := range report.Execution.Blocked {
		p.println(p.styles.warning.Render(fmt.Sprintf("Blocked dangerous command: %s (%s)", blocked.Directive, blocked.Rule)))
	}
	for _, result := range report.Execution.Results {
		p.println(p.styles.command.Render(fmt.Sprintf("Executing command: %s", result.Directive)))
		p.print(result.Render())
	}

	if report.Evaluation != "" {
		p.println("")
		p.println(p.styles.evaluation.Render(fmt.Sprintf("[Self-Eval] %s", report.Evaluation)))
	}
}

func (p *Printer) Quick(report application.QuickReport) {
	if report.NoAnswer {
		p.println(p.styles.warning.Render("No AI response."))
		return
	}

	p.println(p.styles.quick.Render(fmt.Sprintf("%s (Quick via %s): %s", speaker, report.Endpoint, report.Answer)))
}

func (p *Printer) Prompt() string {
	return "You: "
}

func (p *Printer) EmptyInput() {
	p.println(p.styles.notice.Render("Please type a command or query."))
}

func (p *Printer) Loaded(count int) {
	p.println(p.styles.notice.Render(fmt.Sprintf("Loaded %d messages from memory.", count)))
}

func (p *Printer) Saved(path string, count int) {
	p.println("")
	p.println(p.styles.saved.Render(fmt.Sprintf("Conversation saved to %s (%d messages).", path, count)))
}

func (p *Printer) Goodbye() {
	p.println(p.styles.goodbye.Render("Exiting the council. Goodbye!"))
}

func (p *Printer) Error(err error) {
	p.println(p.styles.warning.Render(fmt.Sprintf("Error: %v", err)))
}

func (p *Printer) println(line string) {
	_, _ = fmt.Fprintln(p.w, line)
}

func (p *Printer) print(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = io.WriteString(p.w, text)
}
