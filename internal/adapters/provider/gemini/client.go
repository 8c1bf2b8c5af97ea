package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/adapters/provider"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"google.golang.org/genai"
)

var errNoCandidates = errors.New("no candidates in response")

type Client struct {
	client *genai.Client
}

var _ ports.ChatProvider = (*Client)(nil)

func NewClient(ctx context.Context, endpoint domain.Endpoint, apiKey string) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if endpoint.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: endpoint.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Complete(ctx context.Context, req ports.ChatRequest) (string, error) {
	system, turns := provider.SplitSystem(req.Messages)

	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		var role genai.Role = genai.RoleUser
		if turn.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text(), role))
	}

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	response, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", errNoCandidates
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	return text.String(), nil
}
