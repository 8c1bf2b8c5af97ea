package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunCapturesOutput(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Options{})
	runner.run = func(_ context.Context, shell string, command string, stdout, stderr *boundedBuffer) error {
		assert.Equal(t, DefaultShell, shell)
		assert.Equal(t, "ls -la", command)
		_, _ = stdout.Write([]byte("total 0\n"))
		_, _ = stderr.Write([]byte("warning\n"))
		return nil
	}

	result := runner.Run(context.Background(), "ls -la")

	assert.Equal(t, domain.Directive("ls -la"), result.Directive)
	assert.Equal(t, "total 0", result.Stdout)
	assert.Equal(t, "warning", result.Stderr)
	assert.False(t, result.Failed())
}

func TestRunnerRunReportsExitError(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Options{Shell: "/bin/sh"})
	runner.run = func(_ context.Context, _ string, _ string, _ *boundedBuffer, stderr *boundedBuffer) error {
		_, _ = stderr.Write([]byte("no such file\n"))
		return errors.New("exit status 2")
	}

	result := runner.Run(context.Background(), "cat missing")

	assert.True(t, result.Failed())
	assert.Equal(t, "exit status 2", result.ExitError)
	assert.Equal(t, "no such file", result.Stderr)
}

func TestRunnerRunStopsOnOutputLimit(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Options{MaxOutputBytes: 4})
	runner.run = func(ctx context.Context, _ string, _ string, stdout, _ *boundedBuffer) error {
		_, _ = stdout.Write([]byte("abcdefgh"))
		<-ctx.Done()
		return ctx.Err()
	}

	result := runner.Run(context.Background(), "yes")

	assert.Equal(t, "abcd", result.Stdout)
	assert.Equal(t, ErrOutputLimit.Error(), result.ExitError)
}

func TestRunnerRunTimeout(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Options{Timeout: 20 * time.Millisecond})
	runner.run = func(ctx context.Context, _ string, _ string, _, _ *boundedBuffer) error {
		<-ctx.Done()
		return errors.New("signal: killed")
	}

	result := runner.Run(context.Background(), "sleep 10")

	assert.Equal(t, "command timed out after 20ms", result.ExitError)
}

func TestRunnerRunCanceledContext(t *testing.T) {
	t.Parallel()

	runner := NewRunner(Options{})
	runner.run = func(context.Context, string, string, *boundedBuffer, *boundedBuffer) error {
		t.Fatal("run must not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := runner.Run(ctx, "ls")
	assert.Equal(t, context.Canceled.Error(), result.ExitError)
}

func TestRunnerRunsRealShell(t *testing.T) {
	t.Parallel()

	shellPath, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	runner := NewRunner(Options{Shell: shellPath})
	result := runner.Run(context.Background(), "echo out; echo err 1>&2; exit 3")

	assert.Equal(t, "out", result.Stdout)
	assert.Equal(t, "err", result.Stderr)
	require.True(t, result.Failed())
	assert.True(t, strings.Contains(result.ExitError, "exit status 3"))
}

func TestBoundedBufferTruncates(t *testing.T) {
	t.Parallel()

	calls := 0
	buffer := newBoundedBuffer(5, func() { calls++ })

	n, err := buffer.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = buffer.Write([]byte("defg"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	_, _ = buffer.Write([]byte("h"))

	assert.Equal(t, "abcde", buffer.String())
	assert.True(t, buffer.Overflowed())
	assert.Equal(t, 1, calls)
}
