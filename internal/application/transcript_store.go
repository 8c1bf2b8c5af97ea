package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
)

// TranscriptStore owns the live transcript and its durable copy.
type TranscriptStore struct {
	repo         ports.TranscriptRepository
	maxMessages  int
	systemPrompt string
	logger       *log.Logger

	mu         sync.Mutex
	transcript *domain.Transcript
}

func NewTranscriptStore(repo ports.TranscriptRepository, maxMessages int, systemPrompt string, logger *log.Logger) *TranscriptStore {
	return &TranscriptStore{
		repo:         repo,
		maxMessages:  maxMessages,
		systemPrompt: systemPrompt,
		logger:       loggerOrDiscard(logger),
		transcript:   domain.NewTranscript(maxMessages, systemPrompt, nil),
	}
}

// Load replaces the live transcript with the stored one. A missing or
// unreadable file degrades to a fresh transcript holding the system prompt.
func (s *TranscriptStore) Load(ctx context.Context) *domain.Transcript {
	messages, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("error loading transcript, starting fresh", "err", err)
		messages = nil
	}

	transcript := domain.NewTranscript(s.maxMessages, s.systemPrompt, messages)
	transcript.Trim()
	if len(messages) > 0 {
		s.logger.Info("loaded transcript", "messages", transcript.Len())
	}

	s.mu.Lock()
	s.transcript = transcript
	s.mu.Unlock()

	return transcript
}

func (s *TranscriptStore) Transcript() *domain.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transcript
}

// Persist trims and writes the transcript wholesale. Failures are logged and
// returned; callers treat them as non-fatal.
func (s *TranscriptStore) Persist(ctx context.Context) error {
	transcript := s.Transcript()
	transcript.Trim()

	messages := transcript.Messages()
	if err := s.repo.Save(ctx, messages); err != nil {
		s.logger.Error("failed to save transcript", "err", err)
		return fmt.Errorf("save transcript: %w", err)
	}

	s.logger.Debug("transcript saved", "messages", len(messages))

	return nil
}

func (s *TranscriptStore) Reset(ctx context.Context) error {
	s.Transcript().Reset()

	return s.Persist(ctx)
}
