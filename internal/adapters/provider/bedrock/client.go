// Package bedrock invokes Anthropic models hosted on AWS Bedrock. Credentials
// come from the standard AWS chain rather than the council secret store.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/bnema/council-cli/internal/adapters/provider"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
)

const (
	DefaultRegion    = "us-east-1"
	anthropicVersion = "bedrock-2023-05-31"
)

type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type Client struct {
	client invoker
}

var _ ports.ChatProvider = (*Client)(nil)

func NewClient(ctx context.Context, endpoint domain.Endpoint) (*Client, error) {
	region := endpoint.Region
	if region == "" {
		region = DefaultRegion
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{client: bedrockruntime.NewFromConfig(awsCfg)}, nil
}

type requestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type requestBody struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []requestMessage `json:"messages"`
}

type responseBody struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Client) Complete(ctx context.Context, req ports.ChatRequest) (string, error) {
	body, err := marshalRequest(req)
	if err != nil {
		return "", err
	}

	response, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(req.Model),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("invoke bedrock model: %w", err)
	}

	var decoded responseBody
	if err := json.Unmarshal(response.Body, &decoded); err != nil {
		return "", fmt.Errorf("decode bedrock response: %w", err)
	}

	var text string
	for i := range decoded.Content {
		if decoded.Content[i].Type == "text" {
			text += decoded.Content[i].Text
		}
	}

	return text, nil
}

func marshalRequest(req ports.ChatRequest) ([]byte, error) {
	system, turns := provider.SplitSystem(req.Messages)

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}

	body := requestBody{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           system,
		Messages:         make([]requestMessage, 0, len(turns)),
	}
	for _, turn := range turns {
		body.Messages = append(body.Messages, requestMessage{Role: string(turn.Role), Content: turn.Text()})
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode bedrock request: %w", err)
	}

	return data, nil
}
