package application

import (
	"context"
	"testing"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterServiceStatus(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRosterRepository(t)
	store := mocks.NewMockSecretStore(t)
	credentials := NewCredentialService(repo, store, nil)
	credentials.lookupEnv = envLookup(map[string]string{"ROUTER_KEY": "k"})
	service := NewRosterService(repo, credentials)

	roster := domain.Roster{
		Endpoints: []domain.Endpoint{
			{Name: "router", Model: "m", APIKeyEnv: "ROUTER_KEY"},
			{Name: "claude", Kind: domain.EndpointKindAnthropic, Model: "m", APIKeyEnv: "CLAUDE_KEY"},
			{Name: "local", Model: "llama3"},
		},
		Personas: []domain.Persona{
			{Name: "critic", Endpoint: "router"},
			{Name: "poet", Endpoint: "router"},
			{Name: "claude"},
		},
		Moderator: "claude",
		Evaluator: "local",
		Fallback:  []string{"local", "router"},
	}
	repo.EXPECT().Load(mockAnyContext()).Return(roster, nil).Once()
	store.EXPECT().Get(mockAnyContext(), "council/endpoints/claude/api_key").Return("stored", nil).Once()

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, status.Endpoints, 3)

	router := status.Endpoints[0]
	assert.Equal(t, "env", router.KeySource)
	assert.Equal(t, []string{"critic", "poet"}, router.Personas)
	assert.Equal(t, 2, router.Fallback)

	claude := status.Endpoints[1]
	assert.Equal(t, "secret-store", claude.KeySource)
	assert.True(t, claude.Moderator)
	assert.False(t, claude.Evaluator)

	local := status.Endpoints[2]
	assert.Equal(t, "none", local.KeySource)
	assert.True(t, local.Evaluator)
	assert.Equal(t, 1, local.Fallback)
}

func TestRosterServiceInitSavesEffectiveRoster(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRosterRepository(t)
	service := NewRosterService(repo, nil)

	roster := domain.DefaultRoster()
	repo.EXPECT().Load(mockAnyContext()).Return(roster, nil).Once()
	repo.EXPECT().Save(mockAnyContext(), roster).Return(nil).Once()

	saved, err := service.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, roster, saved)
}

func TestRosterServiceLoadRejectsInvalidRoster(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRosterRepository(t)
	repo.EXPECT().Load(mockAnyContext()).Return(domain.Roster{}, nil).Once()

	_, err := NewRosterService(repo, nil).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid roster")
}
