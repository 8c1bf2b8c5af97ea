package application

import (
	"context"
	"fmt"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/charmbracelet/log"
)

const DefaultDebateRounds = 2

type Contribution struct {
	Round   int
	Persona string
	Reply   string
}

type DebateResult struct {
	Answer string
	OK     bool
	// History is the working debate history the moderator saw.
	History       []domain.Message
	Contributions []Contribution
}

type DebateService struct {
	router    Querier
	personas  []domain.Persona
	moderator domain.Persona
	rounds    int
	logger    *log.Logger
}

func NewDebateService(router Querier, roster domain.Roster, rounds int, logger *log.Logger) *DebateService {
	if rounds <= 0 {
		rounds = DefaultDebateRounds
	}

	return &DebateService{
		router:    router,
		personas:  append([]domain.Persona(nil), roster.Personas...),
		moderator: roster.ModeratorPersona(),
		rounds:    rounds,
		logger:    loggerOrDiscard(logger),
	}
}

// Run drives every round over the persona roster, then asks the moderator to
// synthesize. Personas that fail are skipped; only a moderator failure leaves
// the result without an answer.
func (s *DebateService) Run(ctx context.Context, transcript []domain.Message) DebateResult {
	result := DebateResult{History: append([]domain.Message(nil), transcript...)}

	for round := 1; round <= s.rounds; round++ {
		for _, persona := range s.personas {
			if ctx.Err() != nil {
				s.logger.Warn("debate interrupted", "round", round, "err", ctx.Err())
				return result
			}

			reply, ok := s.router.Query(ctx, persona.EndpointName(), withRoleHint(result.History, persona))
			if !ok {
				continue
			}

			result.History = append(result.History, domain.AssistantMessage(fmt.Sprintf("[%s] %s", persona.Name, reply)))
			result.Contributions = append(result.Contributions, Contribution{Round: round, Persona: persona.Name, Reply: reply})
		}
	}

	if ctx.Err() != nil {
		return result
	}

	answer, ok := s.router.Query(ctx, s.moderator.EndpointName(), withRoleHint(result.History, s.moderator))
	if !ok {
		s.logger.Warn("moderator produced no synthesis", "moderator", s.moderator.Name, "contributions", len(result.Contributions))
		return result
	}

	result.Answer = answer
	result.OK = true

	return result
}

// withRoleHint returns a copy of history with the persona's role appended as a
// trailing system message. The hint is never stored anywhere.
func withRoleHint(history []domain.Message, persona domain.Persona) []domain.Message {
	messages := make([]domain.Message, 0, len(history)+1)
	messages = append(messages, history...)
	if persona.Role != "" {
		messages = append(messages, domain.SystemMessage(persona.Role))
	}

	return messages
}
