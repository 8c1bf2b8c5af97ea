package provider

import (
	"testing"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitSystem(t *testing.T) {
	t.Parallel()

	system, turns := SplitSystem([]domain.Message{
		domain.SystemMessage("prompt"),
		domain.UserMessage("question"),
		domain.AssistantMessage("[a] one"),
		domain.AssistantMessage("[b] two"),
		domain.SystemMessage("moderator hint"),
	})

	assert.Equal(t, "prompt\n\nmoderator hint", system)
	assert.Equal(t, []Turn{
		{Role: domain.RoleUser, Texts: []string{"question"}},
		{Role: domain.RoleAssistant, Texts: []string{"[a] one", "[b] two"}},
		{Role: domain.RoleUser, Texts: []string{continuePrompt}},
	}, turns)
	assert.Equal(t, "[a] one\n\n[b] two", turns[1].Text())
}

func TestSplitSystemKeepsTrailingUserTurn(t *testing.T) {
	t.Parallel()

	system, turns := SplitSystem([]domain.Message{domain.UserMessage("a"), domain.UserMessage("b")})

	assert.Empty(t, system)
	assert.Equal(t, []Turn{{Role: domain.RoleUser, Texts: []string{"a", "b"}}}, turns)
}
