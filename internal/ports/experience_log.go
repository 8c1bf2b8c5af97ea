package ports

import (
	"context"

	"github.com/bnema/council-cli/internal/domain"
)

type ExperienceLog interface {
	Append(ctx context.Context, experience domain.Experience) error
	List(ctx context.Context) ([]domain.Experience, error)
}

type SampleSink interface {
	Write(ctx context.Context, sample domain.SupervisedSample) error
}
