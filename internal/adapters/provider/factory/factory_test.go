package factory

import (
	"context"
	"testing"

	"github.com/bnema/council-cli/internal/adapters/provider/anthropic"
	"github.com/bnema/council-cli/internal/adapters/provider/gemini"
	"github.com/bnema/council-cli/internal/adapters/provider/openai"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint domain.Endpoint
		want     any
	}{
		{name: "default kind", endpoint: domain.Endpoint{Name: "a"}, want: &openai.Client{}},
		{name: "openai", endpoint: domain.Endpoint{Name: "b", Kind: domain.EndpointKindOpenAI}, want: &openai.Client{}},
		{name: "anthropic", endpoint: domain.Endpoint{Name: "c", Kind: domain.EndpointKindAnthropic}, want: &anthropic.Client{}},
		{name: "gemini", endpoint: domain.Endpoint{Name: "d", Kind: domain.EndpointKindGemini}, want: &gemini.Client{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chat, err := New(context.Background(), tt.endpoint, "key")
			require.NoError(t, err)
			assert.IsType(t, tt.want, chat)
		})
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), domain.Endpoint{Name: "x", Kind: "carrier-pigeon"}, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unsupported kind "carrier-pigeon"`)
}

type recordingRegistrar struct {
	names []string
}

func (r *recordingRegistrar) Register(endpoint domain.Endpoint, _ ports.ChatProvider) {
	r.names = append(r.names, endpoint.Name)
}

func TestRegisterAllSkipsEndpointsWithoutKeys(t *testing.T) {
	t.Parallel()

	roster := domain.Roster{Endpoints: []domain.Endpoint{
		{Name: "router", Model: "m", APIKeyEnv: "ROUTER_KEY"},
		{Name: "hf", Model: "m", APIKeyEnv: "HF_TOKEN", Optional: true},
		{Name: "local", Model: "llama3"},
	}}

	registrar := &recordingRegistrar{}
	err := RegisterAll(context.Background(), registrar, roster, map[string]string{"router": "k"})
	require.NoError(t, err)
	assert.Equal(t, []string{"router", "local"}, registrar.names)
}
