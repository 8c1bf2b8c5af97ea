// Package openai talks to any OpenAI-compatible chat completions endpoint:
// OpenAI itself, OpenRouter, the HuggingFace router, Ollama and similar.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultBaseURL = "https://api.openai.com/v1"

var errNoChoices = errors.New("no choices in response")

type Client struct {
	client *openai.Client
}

var _ ports.ChatProvider = (*Client)(nil)

// NewClient builds a client for endpoint. apiKey may be empty for servers
// that do not check it.
func NewClient(endpoint domain.Endpoint, apiKey string, opts ...option.RequestOption) *Client {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	requestOpts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		requestOpts = append(requestOpts, option.WithAPIKey(apiKey))
	}
	requestOpts = append(requestOpts, opts...)

	client := openai.NewClient(requestOpts...)

	return &Client{client: &client}
}

func (c *Client) Complete(ctx context.Context, req ports.ChatRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: convertMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errNoChoices
	}

	return response.Choices[0].Message.Content, nil
}

func convertMessages(messages []domain.Message) []openai.ChatCompletionMessageParamUnion {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleSystem:
			converted = append(converted, openai.SystemMessage(msg.Content))
		case domain.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(msg.Content))
		default:
			converted = append(converted, openai.UserMessage(msg.Content))
		}
	}

	return converted
}
