package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
)

const critiqueInstruction = "Critique the response and rewrite it to be more accurate and coherent.\nOutput only the improved response."

type SupervisionReport struct {
	Processed int
	Written   int
	Skipped   int
}

// SupervisorService turns recorded experiences into rewritten training
// samples by asking one endpoint to critique each original answer.
type SupervisorService struct {
	experiences  ports.ExperienceLog
	sink         ports.SampleSink
	router       Querier
	endpoint     string
	systemPrompt string
	logger       *log.Logger
}

func NewSupervisorService(experiences ports.ExperienceLog, sink ports.SampleSink, router Querier, endpoint, systemPrompt string, logger *log.Logger) *SupervisorService {
	return &SupervisorService{
		experiences:  experiences,
		sink:         sink,
		router:       router,
		endpoint:     endpoint,
		systemPrompt: systemPrompt,
		logger:       loggerOrDiscard(logger),
	}
}

// Run processes up to limit experiences (all when limit <= 0). An experience
// the endpoint cannot rewrite is skipped.
func (s *SupervisorService) Run(ctx context.Context, limit int) (SupervisionReport, error) {
	experiences, err := s.experiences.List(ctx)
	if err != nil {
		return SupervisionReport{}, fmt.Errorf("list experiences: %w", err)
	}
	if limit > 0 && len(experiences) > limit {
		experiences = experiences[:limit]
	}

	var report SupervisionReport
	for _, experience := range experiences {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Processed++

		improved, ok := s.router.Query(ctx, s.endpoint, []domain.Message{
			domain.SystemMessage(s.systemPrompt),
			domain.UserMessage(critiquePrompt(experience)),
		})
		if !ok {
			s.logger.Warn("skipping experience without rewrite", "id", experience.ID)
			report.Skipped++
			continue
		}

		sample := domain.SupervisedSample{
			Context:  experience.Instruction + "\n" + experience.Result,
			Response: strings.TrimSpace(improved),
		}
		if err := s.sink.Write(ctx, sample); err != nil {
			return report, fmt.Errorf("write supervised sample: %w", err)
		}
		report.Written++
	}

	return report, nil
}

func critiquePrompt(experience domain.Experience) string {
	var b strings.Builder
	b.WriteString("User query:\n")
	b.WriteString(experience.Instruction)
	b.WriteString("\n\nOriginal response:\n")
	b.WriteString(experience.Response)
	b.WriteString("\n\nExecution results:\n")
	b.WriteString(experience.Result)
	b.WriteString("\n\n")
	b.WriteString(critiqueInstruction)

	return b.String()
}
