package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bnema/council-cli/internal/adapters/provider"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
)

type Client struct {
	client *anthropic.Client
}

var _ ports.ChatProvider = (*Client)(nil)

func NewClient(endpoint domain.Endpoint, apiKey string, opts ...option.RequestOption) *Client {
	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if endpoint.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(endpoint.BaseURL))
	}
	requestOpts = append(requestOpts, opts...)

	client := anthropic.NewClient(requestOpts...)

	return &Client{client: &client}
}

func (c *Client) Complete(ctx context.Context, req ports.ChatRequest) (string, error) {
	system, turns := provider.SplitSystem(req.Messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  convertTurns(turns),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	response, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var text string
	for i := range response.Content {
		if response.Content[i].Type == "text" {
			text += response.Content[i].Text
		}
	}

	return text, nil
}

func convertTurns(turns []provider.Turn) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(turn.Texts))
		for _, text := range turn.Texts {
			blocks = append(blocks, anthropic.NewTextBlock(text))
		}

		if turn.Role == domain.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(blocks...))
			continue
		}
		messages = append(messages, anthropic.NewUserMessage(blocks...))
	}

	return messages
}
