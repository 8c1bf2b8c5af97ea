package domain

import (
	"fmt"
	"sync"
)

const DefaultMaxMessages = 500

// Transcript is the ordered conversation log shared by every component of a
// turn. At most one system message exists and it always sits at index 0.
type Transcript struct {
	mu          sync.Mutex
	messages    []Message
	maxMessages int
}

// NewTranscript builds a transcript from previously stored messages. Stored
// system messages other than the first are dropped, the first is moved to the
// front, and systemPrompt is prepended when no system message survives.
func NewTranscript(maxMessages int, systemPrompt string, messages []Message) *Transcript {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}

	t := &Transcript{maxMessages: maxMessages}
	t.messages = normalizeMessages(systemPrompt, messages)

	return t
}

func normalizeMessages(systemPrompt string, messages []Message) []Message {
	normalized := make([]Message, 0, len(messages)+1)

	var system *Message
	for i := range messages {
		msg := messages[i]
		if !msg.Role.Valid() {
			continue
		}
		if msg.Role == RoleSystem {
			if system == nil {
				system = &msg
			}
			continue
		}
		normalized = append(normalized, msg)
	}

	if system == nil && systemPrompt != "" {
		prompt := SystemMessage(systemPrompt)
		system = &prompt
	}
	if system != nil {
		normalized = append([]Message{*system}, normalized...)
	}

	return normalized
}

func (t *Transcript) MaxMessages() int {
	return t.maxMessages
}

func (t *Transcript) Append(messages ...Message) error {
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			return ErrSystemMessageAppend
		}
		if !msg.Role.Valid() {
			return fmt.Errorf("%w %q", ErrInvalidRole, msg.Role)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.messages = append(t.messages, messages...)

	return nil
}

// Trim drops the oldest non-system messages until the transcript fits its
// bound and returns how many were dropped.
func (t *Transcript) Trim() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	excess := len(t.messages) - t.maxMessages
	if excess <= 0 {
		return 0
	}

	if len(t.messages) > 0 && t.messages[0].Role == RoleSystem {
		kept := make([]Message, 0, t.maxMessages)
		kept = append(kept, t.messages[0])
		kept = append(kept, t.messages[1+excess:]...)
		t.messages = kept
		return excess
	}

	t.messages = append([]Message(nil), t.messages[excess:]...)

	return excess
}

// Reset keeps only the system message.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.messages) > 0 && t.messages[0].Role == RoleSystem {
		t.messages = []Message{t.messages[0]}
		return
	}

	t.messages = nil
}

func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Message(nil), t.messages...)
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.messages)
}

func (t *Transcript) System() (Message, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.messages) == 0 || t.messages[0].Role != RoleSystem {
		return Message{}, false
	}

	return t.messages[0], true
}
