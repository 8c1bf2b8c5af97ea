package console

import (
	"testing"
	"time"

	"github.com/bnema/council-cli/internal/application"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRoster(t *testing.T) {
	roster := domain.Roster{
		Endpoints: []domain.Endpoint{
			{Name: "deepseek", Kind: domain.EndpointKindOpenAI, Model: "deepseek/deepseek-chat", BaseURL: "https://openrouter.ai/api/v1", APIKeyEnv: "OPENROUTER_API_KEY", Timeout: 25 * time.Second, MaxTokens: 300},
			{Name: "hf-qwen", Kind: domain.EndpointKindOpenAI, Model: "Qwen/Qwen3", APIKeyEnv: "HF_TOKEN", Optional: true, Timeout: 25 * time.Second, MaxTokens: 300},
			{Name: "aws", Kind: domain.EndpointKindBedrock, Model: "anthropic.claude", Region: "us-east-1", Timeout: 25 * time.Second, MaxTokens: 300},
		},
		Personas:  []domain.Persona{{Name: "deepseek"}},
		Moderator: "deepseek",
		Evaluator: "deepseek",
		Fallback:  []string{"hf-qwen"},
	}

	output, err := RenderRoster(application.RosterStatus{
		Roster: roster,
		Endpoints: []application.EndpointStatus{
			{Endpoint: roster.Endpoints[0], KeySource: "env", Personas: []string{"deepseek"}, Moderator: true, Evaluator: true},
			{Endpoint: roster.Endpoints[1], Fallback: 1},
			{Endpoint: roster.Endpoints[2], KeySource: "none"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Council Roster")
	assert.Contains(t, output, "endpoints: 3")
	assert.Contains(t, output, "quick fallback: hf-qwen")
	assert.Contains(t, output, "[moderator, evaluator]")
	assert.Contains(t, output, "key: env (OPENROUTER_API_KEY)")
	assert.Contains(t, output, "[fallback #1, optional]")
	assert.Contains(t, output, "key: missing (set HF_TOKEN)")
	assert.Contains(t, output, "region: us-east-1")
	assert.Contains(t, output, "key: not required")
	assert.Contains(t, output, "personas: deepseek")
}

func TestRenderRosterWithoutEndpoints(t *testing.T) {
	output, err := RenderRoster(application.RosterStatus{})
	require.NoError(t, err)
	assert.Contains(t, output, "No endpoints configured.")
}

func TestRenderTranscript(t *testing.T) {
	t.Parallel()

	messages := []domain.Message{
		domain.SystemMessage("prompt"),
		domain.UserMessage("hello"),
		domain.AssistantMessage("hi there"),
	}

	output := RenderTranscript(messages, false)
	assert.Contains(t, output, "user:")
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, "hi there")
	assert.NotContains(t, output, "prompt")

	assert.Contains(t, RenderTranscript(messages, true), "prompt")
	assert.Contains(t, RenderTranscript(nil, false), "Transcript is empty.")
}

func TestRenderTranscriptJSON(t *testing.T) {
	t.Parallel()

	output, err := RenderTranscriptJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", output)

	output, err = RenderTranscriptJSON([]domain.Message{domain.UserMessage("hi")})
	require.NoError(t, err)
	assert.Contains(t, output, `"role": "user"`)
}
