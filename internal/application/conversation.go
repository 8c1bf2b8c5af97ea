package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var ErrEmptyInput = errors.New("empty input")

type ConversationDeps struct {
	Store     *TranscriptStore
	Router    Querier
	Debate    *DebateService
	Extractor *domain.Extractor
	Executor  *ExecutorService
	Evaluator *EvaluatorService
	// QuickOrder is the endpoint order for single-shot queries.
	QuickOrder []string
	// Experiences may be nil to disable the experience log.
	Experiences     ports.ExperienceLog
	Clock           ports.Clock
	PersistEachTurn bool
	Logger          *log.Logger
}

type TurnReport struct {
	Input      string
	Answer     string
	NoAnswer   bool
	Debate     DebateResult
	Directives []domain.Directive
	Execution  domain.ExecutionReport
	Evaluation string
}

type QuickReport struct {
	Question string
	Answer   string
	Endpoint string
	NoAnswer bool
}

// ConversationService drives one user turn through debate, directive
// handling and self-evaluation.
type ConversationService struct {
	store           *TranscriptStore
	router          Querier
	debate          *DebateService
	extractor       *domain.Extractor
	executor        *ExecutorService
	evaluator       *EvaluatorService
	quickOrder      []string
	experiences     ports.ExperienceLog
	clock           ports.Clock
	newID           func() string
	persistEachTurn bool
	logger          *log.Logger
}

func NewConversationService(deps ConversationDeps) *ConversationService {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	extractor := deps.Extractor
	if extractor == nil {
		extractor = domain.NewExtractor(domain.DefaultDirectiveMarker)
	}

	return &ConversationService{
		store:           deps.Store,
		router:          deps.Router,
		debate:          deps.Debate,
		extractor:       extractor,
		executor:        deps.Executor,
		evaluator:       deps.Evaluator,
		quickOrder:      append([]string(nil), deps.QuickOrder...),
		experiences:     deps.Experiences,
		clock:           clock,
		newID:           uuid.NewString,
		persistEachTurn: deps.PersistEachTurn,
		logger:          loggerOrDiscard(deps.Logger),
	}
}

func (s *ConversationService) Turn(ctx context.Context, input string) (TurnReport, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return TurnReport{}, ErrEmptyInput
	}

	transcript := s.store.Transcript()
	if err := transcript.Append(domain.UserMessage(input)); err != nil {
		return TurnReport{}, fmt.Errorf("append user message: %w", err)
	}
	transcript.Trim()

	report := TurnReport{Input: input}
	report.Debate = s.debate.Run(ctx, transcript.Messages())
	if !report.Debate.OK {
		report.NoAnswer = true
		s.finishTurn(ctx, transcript)
		return report, nil
	}
	report.Answer = report.Debate.Answer

	report.Directives = s.extractor.Extract(report.Answer)
	if len(report.Directives) > 0 {
		execution, err := s.executor.Run(ctx, transcript, report.Directives)
		report.Execution = execution
		if err != nil {
			return report, fmt.Errorf("run directives: %w", err)
		}
		s.recordExperience(ctx, input, report.Answer, execution)
	} else if err := transcript.Append(domain.AssistantMessage(report.Answer)); err != nil {
		return report, fmt.Errorf("append reply: %w", err)
	}

	if evaluation, ok := s.evaluator.Evaluate(ctx, report.Answer); ok {
		report.Evaluation = evaluation
	}

	s.finishTurn(ctx, transcript)

	return report, nil
}

// Quick asks the fallback endpoints directly, skipping the debate. Nothing is
// appended when no endpoint answers.
func (s *ConversationService) Quick(ctx context.Context, question string) (QuickReport, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return QuickReport{}, ErrEmptyInput
	}

	transcript := s.store.Transcript()
	messages := append(transcript.Messages(), domain.UserMessage(question))

	report := QuickReport{Question: question}
	reply, ok := s.router.QueryFallback(ctx, s.quickOrder, messages)
	if !ok {
		report.NoAnswer = true
		return report, nil
	}
	report.Answer = reply.Text
	report.Endpoint = reply.Endpoint

	if err := transcript.Append(domain.UserMessage(question), domain.AssistantMessage(reply.Text)); err != nil {
		return report, fmt.Errorf("append quick exchange: %w", err)
	}
	s.finishTurn(ctx, transcript)

	return report, nil
}

func (s *ConversationService) finishTurn(ctx context.Context, transcript *domain.Transcript) {
	transcript.Trim()
	if !s.persistEachTurn || ctx.Err() != nil {
		return
	}
	// Persist logs its own failures.
	_ = s.store.Persist(ctx)
}

func (s *ConversationService) recordExperience(ctx context.Context, input, answer string, execution domain.ExecutionReport) {
	if s.experiences == nil {
		return
	}

	experience := domain.Experience{
		ID:          s.newID(),
		Instruction: input,
		Response:    answer,
		Result:      execution.Summary(),
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.experiences.Append(ctx, experience); err != nil {
		s.logger.Warn("failed to record experience", "err", err)
	}
}
