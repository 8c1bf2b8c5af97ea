package ports

import (
	"context"

	"github.com/bnema/council-cli/internal/domain"
)

type TranscriptRepository interface {
	Load(ctx context.Context) ([]domain.Message, error)
	Save(ctx context.Context, messages []domain.Message) error
}
