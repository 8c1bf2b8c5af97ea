package ports

import (
	"context"

	"github.com/bnema/council-cli/internal/domain"
)

// CommandRunner runs one directive to completion. Failures are reported in
// the result, never as a Go error.
type CommandRunner interface {
	Run(ctx context.Context, directive domain.Directive) domain.CommandResult
}
