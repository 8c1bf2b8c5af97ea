package application

import (
	"context"
	"fmt"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
)

type ExecutorService struct {
	runner    ports.CommandRunner
	blocklist *domain.Blocklist
	logger    *log.Logger
}

func NewExecutorService(runner ports.CommandRunner, blocklist *domain.Blocklist, logger *log.Logger) *ExecutorService {
	if blocklist == nil {
		blocklist = domain.DefaultBlocklist()
	}

	return &ExecutorService{
		runner:    runner,
		blocklist: blocklist,
		logger:    loggerOrDiscard(logger),
	}
}

// Run executes directives one after another. Blocked directives are skipped
// with a warning; every executed directive appends exactly one assistant
// message to the transcript, whether it succeeded or not.
func (s *ExecutorService) Run(ctx context.Context, transcript *domain.Transcript, directives []domain.Directive) (domain.ExecutionReport, error) {
	var report domain.ExecutionReport

	for _, directive := range directives {
		if rule, blocked := s.blocklist.Match(directive); blocked {
			s.logger.Warn("blocked dangerous command", "command", directive, "rule", rule.Name)
			report.Blocked = append(report.Blocked, domain.BlockedDirective{Directive: directive, Rule: rule.Name})
			continue
		}

		s.logger.Info("executing command", "command", directive)
		result := s.runner.Run(ctx, directive)
		if result.Failed() {
			s.logger.Debug("command failed", "command", directive, "err", result.ExitError)
		}

		if err := transcript.Append(result.Message()); err != nil {
			return report, fmt.Errorf("append command output: %w", err)
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}
