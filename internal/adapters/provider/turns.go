// Package provider holds message shaping shared by the provider clients.
package provider

import (
	"strings"

	"github.com/bnema/council-cli/internal/domain"
)

const continuePrompt = "Respond to the conversation above."

// Turn is one alternating conversation turn for APIs that take the system
// prompt separately and expect strict user/assistant alternation.
type Turn struct {
	Role  domain.Role
	Texts []string
}

// SplitSystem separates system messages (the transcript prompt and any
// trailing role hint) from the conversation turns. Consecutive messages of the
// same role are merged, and a final user turn is added when the conversation
// ends on an assistant turn so the model answers instead of continuing it.
func SplitSystem(messages []domain.Message) (string, []Turn) {
	var system []string
	var turns []Turn

	for _, msg := range messages {
		if msg.Role == domain.RoleSystem {
			system = append(system, msg.Content)
			continue
		}

		role := domain.RoleUser
		if msg.Role == domain.RoleAssistant {
			role = domain.RoleAssistant
		}

		if n := len(turns); n > 0 && turns[n-1].Role == role {
			turns[n-1].Texts = append(turns[n-1].Texts, msg.Content)
			continue
		}
		turns = append(turns, Turn{Role: role, Texts: []string{msg.Content}})
	}

	if len(turns) == 0 || turns[len(turns)-1].Role != domain.RoleUser {
		turns = append(turns, Turn{Role: domain.RoleUser, Texts: []string{continuePrompt}})
	}

	return strings.Join(system, "\n\n"), turns
}

func (t Turn) Text() string {
	return strings.Join(t.Texts, "\n\n")
}
