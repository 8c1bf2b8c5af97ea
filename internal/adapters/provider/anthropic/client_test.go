package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func TestClientComplete(t *testing.T) {
	t.Parallel()

	var captured capturedRequest
	var apiKey, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("X-Api-Key")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[{"type":"text","text":"synth"},{"type":"text","text":"esis"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":2}}`)
	}))
	t.Cleanup(server.Close)

	client := NewClient(domain.Endpoint{Name: "claude", BaseURL: server.URL}, "secret")
	text, err := client.Complete(context.Background(), ports.ChatRequest{
		Model:     "claude-sonnet",
		MaxTokens: 300,
		Messages: []domain.Message{
			domain.SystemMessage("sys"),
			domain.UserMessage("question"),
			domain.AssistantMessage("[a] one"),
			domain.SystemMessage("hint"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "synthesis", text)
	assert.Equal(t, "/v1/messages", path)
	assert.Equal(t, "secret", apiKey)
	assert.Equal(t, "claude-sonnet", captured.Model)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.System, 1)
	assert.Equal(t, "sys\n\nhint", captured.System[0].Text)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "assistant", captured.Messages[1].Role)
	assert.Equal(t, "[a] one", captured.Messages[1].Content[0].Text)
	assert.Equal(t, "user", captured.Messages[2].Role)
}

func TestClientCompleteServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"authentication_error","message":"bad key"}}`)
	}))
	t.Cleanup(server.Close)

	client := NewClient(domain.Endpoint{BaseURL: server.URL}, "bad")
	_, err := client.Complete(context.Background(), ports.ChatRequest{Model: "m", MaxTokens: 10, Messages: []domain.Message{domain.UserMessage("hi")}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "create message")
}
