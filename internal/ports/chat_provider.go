package ports

import (
	"context"

	"github.com/bnema/council-cli/internal/domain"
)

type ChatRequest struct {
	Model     string
	Messages  []domain.Message
	MaxTokens int
}

// ChatProvider sends one chat request to a remote model and returns the text
// of its reply.
type ChatProvider interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
