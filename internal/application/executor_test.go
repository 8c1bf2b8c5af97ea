package application

import (
	"context"
	"testing"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorRunAttemptsEveryDirective(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockCommandRunner(t)
	executor := NewExecutorService(runner, nil, nil)
	transcript := domain.NewTranscript(10, "prompt", nil)

	runner.EXPECT().Run(mockAnyContext(), domain.Directive("echo a")).
		Return(domain.CommandResult{Directive: "echo a", Stdout: "a\n"}).Once()
	runner.EXPECT().Run(mockAnyContext(), domain.Directive("false")).
		Return(domain.CommandResult{Directive: "false", ExitError: "exit status 1"}).Once()
	runner.EXPECT().Run(mockAnyContext(), domain.Directive("echo c")).
		Return(domain.CommandResult{Directive: "echo c", Stdout: "c\n"}).Once()

	report, err := executor.Run(context.Background(), transcript, []domain.Directive{"echo a", "false", "echo c"})
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Empty(t, report.Blocked)
	assert.True(t, report.Results[1].Failed())

	messages := transcript.Messages()
	require.Len(t, messages, 4)
	assert.Equal(t, "Command output:\nCommand: echo a\nstdout:\na\n\n", messages[1].Content)
	assert.Equal(t, "Command output:\nCommand: false\nError: exit status 1\n", messages[2].Content)
	assert.Equal(t, domain.RoleAssistant, messages[3].Role)
}

func TestExecutorRunNeverRunsBlockedDirectives(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockCommandRunner(t)
	executor := NewExecutorService(runner, domain.DefaultBlocklist(), nil)
	transcript := domain.NewTranscript(10, "prompt", nil)

	runner.EXPECT().Run(mockAnyContext(), domain.Directive("ls")).
		Return(domain.CommandResult{Directive: "ls", Stdout: "file\n"}).Once()

	report, err := executor.Run(context.Background(), transcript, []domain.Directive{"rm -rf /tmp/x", "ls", "sudo reboot"})
	require.NoError(t, err)

	assert.Equal(t, []domain.BlockedDirective{
		{Directive: "rm -rf /tmp/x", Rule: "destructive-fs"},
		{Directive: "sudo reboot", Rule: "power"},
	}, report.Blocked)
	assert.Len(t, report.Results, 1)
	assert.Equal(t, 2, transcript.Len())
}

func TestExecutorRunUsesCustomBlocklist(t *testing.T) {
	t.Parallel()

	blocklist, err := domain.NewBlocklist(`\bcurl\b`)
	require.NoError(t, err)

	runner := mocks.NewMockCommandRunner(t)
	executor := NewExecutorService(runner, blocklist, nil)
	transcript := domain.NewTranscript(10, "prompt", nil)

	report, err := executor.Run(context.Background(), transcript, []domain.Directive{"curl example.com"})
	require.NoError(t, err)

	assert.Len(t, report.Blocked, 1)
	assert.Equal(t, 1, transcript.Len())
}
