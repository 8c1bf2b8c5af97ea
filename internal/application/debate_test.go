package application

import (
	"context"
	"testing"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPersonaRoster() domain.Roster {
	return domain.Roster{
		Endpoints: []domain.Endpoint{
			{Name: "p1", Model: "m1"},
			{Name: "p2", Model: "m2"},
			{Name: "mod", Model: "m3"},
		},
		Personas: []domain.Persona{
			{Name: "p1", Role: "logician"},
			{Name: "p2", Role: "summarizer"},
		},
		Moderator: "mod",
	}
}

func TestDebateRunOrdersContributionsByRoundAndPersona(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "p1", "p1 first", "p1 second")
	scriptedEndpoint(t, router, calls, "p2", "p2 first", "p2 second")
	scriptedEndpoint(t, router, calls, "mod", "final answer")

	debate := NewDebateService(router, twoPersonaRoster(), 2, nil)
	transcript := []domain.Message{domain.SystemMessage("prompt"), domain.UserMessage("question")}

	result := debate.Run(context.Background(), transcript)

	require.True(t, result.OK)
	assert.Equal(t, "final answer", result.Answer)
	assert.Equal(t, []string{"p1", "p2", "p1", "p2", "mod"}, calls.endpoints())
	assert.Equal(t, []domain.Message{
		domain.SystemMessage("prompt"),
		domain.UserMessage("question"),
		domain.AssistantMessage("[p1] p1 first"),
		domain.AssistantMessage("[p2] p2 first"),
		domain.AssistantMessage("[p1] p1 second"),
		domain.AssistantMessage("[p2] p2 second"),
	}, result.History)
	assert.Equal(t, []Contribution{
		{Round: 1, Persona: "p1", Reply: "p1 first"},
		{Round: 1, Persona: "p2", Reply: "p2 first"},
		{Round: 2, Persona: "p1", Reply: "p1 second"},
		{Round: 2, Persona: "p2", Reply: "p2 second"},
	}, result.Contributions)
}

func TestDebateRunSendsRoleHintWithoutKeepingIt(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "p1", "one")
	scriptedEndpoint(t, router, calls, "p2", "two")
	scriptedEndpoint(t, router, calls, "mod", "done")

	debate := NewDebateService(router, twoPersonaRoster(), 1, nil)
	result := debate.Run(context.Background(), []domain.Message{domain.UserMessage("q")})
	require.True(t, result.OK)

	first := calls.at(0)
	assert.Equal(t, []domain.Message{domain.UserMessage("q"), domain.SystemMessage("logician")}, first.messages)

	second := calls.at(1)
	assert.Equal(t, []domain.Message{
		domain.UserMessage("q"),
		domain.AssistantMessage("[p1] one"),
		domain.SystemMessage("summarizer"),
	}, second.messages)

	moderator := calls.at(2)
	assert.Equal(t, result.History, moderator.messages)
	for _, msg := range result.History {
		assert.NotEqual(t, domain.RoleSystem, msg.Role)
	}
}

func TestDebateRunToleratesPartialFailure(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "p1", "", "")
	scriptedEndpoint(t, router, calls, "p2", "only me", "still me")
	scriptedEndpoint(t, router, calls, "mod", "answer")

	result := NewDebateService(router, twoPersonaRoster(), 2, nil).Run(context.Background(), nil)

	require.True(t, result.OK)
	assert.Equal(t, []domain.Message{
		domain.AssistantMessage("[p2] only me"),
		domain.AssistantMessage("[p2] still me"),
	}, result.History)
}

func TestDebateRunModeratorFailureYieldsNoAnswer(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "p1", "one")
	scriptedEndpoint(t, router, calls, "p2", "two")
	scriptedEndpoint(t, router, calls, "mod", "")

	result := NewDebateService(router, twoPersonaRoster(), 1, nil).Run(context.Background(), nil)

	assert.False(t, result.OK)
	assert.Empty(t, result.Answer)
	assert.Len(t, result.Contributions, 2)
}

func TestDebateRunModeratorPersonaGetsOwnRoleHint(t *testing.T) {
	t.Parallel()

	roster := domain.Roster{
		Endpoints: []domain.Endpoint{{Name: "solo", Model: "m"}},
		Personas:  []domain.Persona{{Name: "solo", Role: "moderator role"}},
		Moderator: "solo",
	}
	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "solo", "opinion", "synthesis")

	result := NewDebateService(router, roster, 1, nil).Run(context.Background(), []domain.Message{domain.UserMessage("q")})

	require.True(t, result.OK)
	assert.Equal(t, "synthesis", result.Answer)
	assert.Equal(t, []domain.Message{
		domain.UserMessage("q"),
		domain.AssistantMessage("[solo] opinion"),
		domain.SystemMessage("moderator role"),
	}, calls.at(1).messages)
}

func TestDebateRunStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewDebateService(NewRouter(nil), twoPersonaRoster(), 2, nil).Run(ctx, nil)

	assert.False(t, result.OK)
	assert.Empty(t, result.Contributions)
}

func TestNewDebateServiceDefaultsRounds(t *testing.T) {
	t.Parallel()

	debate := NewDebateService(NewRouter(nil), twoPersonaRoster(), 0, nil)
	assert.Equal(t, DefaultDebateRounds, debate.rounds)
}
