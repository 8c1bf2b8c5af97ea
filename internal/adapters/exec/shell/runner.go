// Package shell runs directives through the operator's shell with bounded
// output capture.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
)

const (
	DefaultShell          = "/bin/bash"
	DefaultMaxOutputBytes = 1 << 20
	waitDelay             = time.Second
)

var (
	ErrOutputLimit = errors.New("maxBuffer exceeded")
	ErrTimeout     = errors.New("command timed out")
)

type Options struct {
	Shell          string
	MaxOutputBytes int
	// Timeout of zero lets commands run until the context is done.
	Timeout time.Duration
}

type runFunc func(ctx context.Context, shell string, command string, stdout, stderr *boundedBuffer) error

type Runner struct {
	opts Options
	run  runFunc
	now  func() time.Time
}

var _ ports.CommandRunner = (*Runner)(nil)

func NewRunner(opts Options) *Runner {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if opts.MaxOutputBytes <= 0 {
		opts.MaxOutputBytes = DefaultMaxOutputBytes
	}

	return &Runner{opts: opts, run: runShellCommand, now: time.Now}
}

func (r *Runner) Run(ctx context.Context, directive domain.Directive) domain.CommandResult {
	result := domain.CommandResult{Directive: directive}
	if err := ctx.Err(); err != nil {
		result.ExitError = err.Error()
		return result
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if r.opts.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, r.opts.Timeout)
		defer cancel()
	}

	stdout := newBoundedBuffer(r.opts.MaxOutputBytes, cancel)
	stderr := newBoundedBuffer(r.opts.MaxOutputBytes, cancel)

	started := r.now()
	err := r.run(runCtx, r.opts.Shell, string(directive), stdout, stderr)
	result.Duration = r.now().Sub(started)

	result.Stdout = trimOutput(stdout.String())
	result.Stderr = trimOutput(stderr.String())

	switch {
	case stdout.Overflowed() || stderr.Overflowed():
		result.ExitError = ErrOutputLimit.Error()
	case err == nil:
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.ExitError = fmt.Sprintf("%s after %s", ErrTimeout, r.opts.Timeout)
	default:
		result.ExitError = err.Error()
	}

	return result
}

func runShellCommand(ctx context.Context, shell string, command string, stdout, stderr *boundedBuffer) error {
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Env = os.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	return cmd.Run()
}

func trimOutput(output string) string {
	return strings.TrimRight(output, "\r\n")
}

// boundedBuffer keeps at most limit bytes and calls onOverflow once when more
// arrive. Extra bytes are accepted and dropped so the writer never sees an
// error before it is stopped.
type boundedBuffer struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	limit      int
	overflowed bool
	onOverflow func()
}

func newBoundedBuffer(limit int, onOverflow func()) *boundedBuffer {
	return &boundedBuffer{limit: limit, onOverflow: onOverflow}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := b.limit - b.buf.Len()
	if len(p) <= remaining {
		return b.buf.Write(p)
	}

	if remaining > 0 {
		b.buf.Write(p[:remaining])
	}
	if !b.overflowed {
		b.overflowed = true
		if b.onOverflow != nil {
			b.onOverflow()
		}
	}

	return len(p), nil
}

func (b *boundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *boundedBuffer) Overflowed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overflowed
}
