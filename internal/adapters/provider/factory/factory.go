// Package factory builds chat providers from roster endpoints.
package factory

import (
	"context"
	"fmt"

	"github.com/bnema/council-cli/internal/adapters/provider/anthropic"
	"github.com/bnema/council-cli/internal/adapters/provider/bedrock"
	"github.com/bnema/council-cli/internal/adapters/provider/gemini"
	"github.com/bnema/council-cli/internal/adapters/provider/openai"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
)

func New(ctx context.Context, endpoint domain.Endpoint, apiKey string) (ports.ChatProvider, error) {
	switch endpoint.Kind {
	case domain.EndpointKindOpenAI, "":
		return openai.NewClient(endpoint, apiKey), nil
	case domain.EndpointKindAnthropic:
		return anthropic.NewClient(endpoint, apiKey), nil
	case domain.EndpointKindGemini:
		return gemini.NewClient(ctx, endpoint, apiKey)
	case domain.EndpointKindBedrock:
		return bedrock.NewClient(ctx, endpoint)
	default:
		return nil, fmt.Errorf("endpoint %q: unsupported kind %q", endpoint.Name, endpoint.Kind)
	}
}

// Registrar is satisfied by the application router.
type Registrar interface {
	Register(endpoint domain.Endpoint, provider ports.ChatProvider)
}

// RegisterAll builds a provider for every endpoint that has a resolved key, or
// that needs none, and registers it. Endpoints skipped during credential
// resolution are left out.
func RegisterAll(ctx context.Context, registrar Registrar, roster domain.Roster, keys map[string]string) error {
	for _, endpoint := range roster.Endpoints {
		key, ok := keys[endpoint.Name]
		if endpoint.RequiresKey() && !ok {
			continue
		}

		chat, err := New(ctx, endpoint, key)
		if err != nil {
			return fmt.Errorf("build provider for %q: %w", endpoint.Name, err)
		}
		registrar.Register(endpoint, chat)
	}

	return nil
}
