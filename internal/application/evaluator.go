package application

import (
	"context"

	"github.com/bnema/council-cli/internal/domain"
)

// EvaluatorService scores a synthesized answer. The verdict is only shown to
// the operator and never enters the transcript.
type EvaluatorService struct {
	router   Querier
	endpoint string
	prompt   string
}

func NewEvaluatorService(router Querier, endpoint string) *EvaluatorService {
	return &EvaluatorService{router: router, endpoint: endpoint, prompt: domain.EvaluationPrompt}
}

func (s *EvaluatorService) Evaluate(ctx context.Context, answer string) (string, bool) {
	if s == nil || s.endpoint == "" {
		return "", false
	}

	return s.router.Query(ctx, s.endpoint, []domain.Message{
		domain.SystemMessage(s.prompt),
		domain.UserMessage(answer),
	})
}
