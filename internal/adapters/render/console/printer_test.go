package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bnema/council-cli/internal/application"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrinterTurnWithExecution(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.Turn(application.TurnReport{
		Answer: "COUNCIL_CMD ls; rm -rf /tmp/x",
		Execution: domain.ExecutionReport{
			Results: []domain.CommandResult{{Directive: "ls", Stdout: "a.txt"}},
			Blocked: []domain.BlockedDirective{{Directive: "rm -rf /tmp/x", Rule: "destructive-fs"}},
		},
		Evaluation: "accuracy 8",
	})

	text := out.String()
	assert.Contains(t, text, "Council: COUNCIL_CMD ls; rm -rf /tmp/x")
	assert.Contains(t, text, "Blocked dangerous command: rm -rf /tmp/x (destructive-fs)")
	assert.Contains(t, text, "Executing command: ls")
	assert.Contains(t, text, "Command: ls\nstdout:\na.txt\n")
	assert.Contains(t, text, "[Self-Eval] accuracy 8")
}

func TestPrinterTurnWithoutAnswer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	NewPrinter(&out).Turn(application.TurnReport{NoAnswer: true})

	assert.Contains(t, out.String(), "No AI response.")
	assert.NotContains(t, out.String(), "Council:")
}

func TestPrinterQuick(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.Quick(application.QuickReport{Answer: "42", Endpoint: "kimi"})
	printer.Quick(application.QuickReport{NoAnswer: true})

	assert.Contains(t, out.String(), "Council (Quick via kimi): 42")
	assert.Contains(t, out.String(), "No AI response.")
}

func TestPrinterLifecycleMessages(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.Loaded(3)
	printer.EmptyInput()
	printer.Error(errors.New("boom"))
	printer.Saved("/home/me/.council/memory.json", 4)
	printer.Goodbye()

	text := out.String()
	assert.Contains(t, text, "Loaded 3 messages from memory.")
	assert.Contains(t, text, "Please type a command or query.")
	assert.Contains(t, text, "Error: boom")
	assert.Contains(t, text, "Conversation saved to /home/me/.council/memory.json (4 messages).")
	assert.Contains(t, text, "Goodbye!")
}
